package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadConfig lee el archivo JSON de configuración sobre la estructura recibida. Los
// campos que no aparecen en el archivo conservan el valor que ya tenían, así que
// se pueden cargar valores por defecto antes de llamarla.
//
// Parámetros:
//   - filePath: ubicacion donde se encuentra el archivo de configuracion
//   - config: puntero a cualquier tipo de estructura
//
// Ejemplo:
//
//	func main() {
//		cfg := models.DefaultConfig()
//		if err := config.LoadConfig("./paginacion.json", &cfg); err != nil {
//			slog.Error("error al configurar", "error", err)
//		}
//	}
func LoadConfig(filePath string, config interface{}) error {
	if err := setupConfig(filePath, config); err != nil {
		return fmt.Errorf("error al configurar el archivo %s: %w", filePath, err)
	}
	return nil
}

func setupConfig(filePath string, config interface{}) error {
	configFile, err := os.Open(filePath)
	if err != nil {
		return err
	}

	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	jsonParser.DisallowUnknownFields()

	if err := jsonParser.Decode(config); err != nil {
		return err
	}

	return nil
}
