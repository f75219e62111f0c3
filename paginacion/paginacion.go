package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/handlers"
	"github.com/sisoputnfrba/tp-paginacion/paginacion/helpers"
	"github.com/sisoputnfrba/tp-paginacion/paginacion/services"
	"github.com/sisoputnfrba/tp-paginacion/utils/web/server"
)

const (
	ConfigPath = "paginacion/configs/paginacion.json"
)

func main() {
	if len(os.Args) < 3 {
		slog.Error("Faltan los parametros necesarios [cantidad_procesos] y [cantidad_marcos]")
		fmt.Fprintf(os.Stderr, "Uso: %s <procesos> <marcos> [archivo_configuracion]\n", os.Args[0])
		os.Exit(1)
	}

	processes, err := strconv.Atoi(os.Args[1])
	if err != nil {
		slog.Error(fmt.Sprintf("Error al convertir la cantidad de procesos: %v", err))
		os.Exit(1)
	}
	frames, err := strconv.Atoi(os.Args[2])
	if err != nil {
		slog.Error(fmt.Sprintf("Error al convertir la cantidad de marcos: %v", err))
		os.Exit(1)
	}

	configPath := ConfigPath
	if len(os.Args) > 3 {
		configPath = os.Args[3]
	}

	cfg, err := helpers.InitSimulator(configPath, processes, frames)
	if err != nil {
		slog.Error("No se puede iniciar el simulador", "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	simulator, err := services.NewSimulator(cfg, services.NewRandomGenerator(seed))
	if err != nil {
		slog.Error("No se puede iniciar el simulador", "error", err)
		os.Exit(1)
	}

	if cfg.SwapFilePath != "" {
		swap, err := services.OpenSwapFile(cfg.SwapFilePath, cfg.Processes)
		if err != nil {
			slog.Error("Error al inicializar el área de swap", "error", err)
			os.Exit(1)
		}
		defer swap.Close()
		simulator.AttachSwap(swap)
	}

	if cfg.Port > 0 {
		go func() {
			if err := server.InitServer(cfg.Port, handlers.NewMux(simulator, cfg)); err != nil {
				slog.Error(fmt.Sprintf("error initializing server: %v", err))
			}
		}()
		slog.Info("Servidor de inspección escuchando", "puerto", cfg.Port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Simulador listo", "procesos", cfg.Processes, "marcos", cfg.Frames, "semilla", seed)

	if err := simulator.RunSteps(ctx, cfg.Steps); err != nil {
		slog.Error("Violación de invariante, se detiene la simulación", "error", err)
		os.Exit(1)
	}

	if err := simulator.CheckInvariants(); err != nil {
		slog.Error("Estado final inconsistente", "error", err)
		os.Exit(1)
	}

	report := simulator.Metrics()
	for pid, m := range report.Processes {
		slog.Info(fmt.Sprintf("## PID: %d - Accesos: %d - Fallos: %d - Desalojos: %d", pid, m.Accesses, m.PageFaults, m.Evictions))
	}
}
