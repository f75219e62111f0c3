package helpers

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
	"github.com/sisoputnfrba/tp-paginacion/utils/config"
	"github.com/sisoputnfrba/tp-paginacion/utils/log"
)

// crea un directorio en el path especificado.
func CreateDirectory(dir string) error {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		slog.Error(fmt.Sprintf("Error al crear el directorio %s: %v", dir, err))
		return err
	}

	slog.Debug(fmt.Sprintf("Directorio %s creado o ya existía.", dir))
	return nil
}

// LoadSimulatorConfig arma la configuración del simulador: valores por defecto,
// luego el archivo (si existe) y por último la cantidad de procesos y marcos
// recibidas por parámetro, que siempre tienen prioridad.
func LoadSimulatorConfig(configPath string, processes int, frames int) (models.Config, error) {
	cfg := models.DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := config.LoadConfig(configPath, &cfg); err != nil {
				return cfg, fmt.Errorf("error al leer %s: %w", configPath, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	cfg.Processes = processes
	cfg.Frames = frames
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = models.DefaultHistorySize
	}

	return cfg, cfg.Validate()
}

// InitSimulator carga la configuración e inicializa el logger. Cualquier error es
// fatal para el arranque.
func InitSimulator(configPath string, processes int, frames int) (models.Config, error) {
	cfg, err := LoadSimulatorConfig(configPath, processes, frames)
	if err != nil {
		return cfg, err
	}

	if err := log.InitLogger(cfg.LogPath, cfg.LogLevel); err != nil {
		return cfg, err
	}

	models.SimulatorConfig = &cfg
	slog.Debug(fmt.Sprintf("Procesos: %d - Marcos: %d", cfg.Processes, cfg.Frames))
	return cfg, nil
}

func GetDumpName(pid int) string {
	timestamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("%d-%s.dmp", pid, timestamp)
}

func GetFramesDumpName() string {
	timestamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("marcos-%s.dmp", timestamp)
}
