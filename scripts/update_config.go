package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Para su uso se debe posicionar en la carpeta scripts
// > go run update_config.go frames 8 access_delay 0
// > go run update_config.go log_level "DEBUG" port 8011

const configDir = "../paginacion/configs"

func main() {
	// Verificar que se pasen argumentos en pares: clave1 valor1 clave2 valor2 ...
	if len(os.Args) < 3 || len(os.Args)%2 != 1 {
		fmt.Println("Uso: update_config <clave_1> <valor_1> [<clave_2> <valor_2> ...]")
		fmt.Println("Ejemplo: update_config frames 8 access_delay 0")
		return
	}

	updates := parseUpdates(os.Args[1:])

	fmt.Println("Valores a actualizar:")
	keys := make([]string, 0, len(updates))
	for k := range updates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %v\n", k, updates[k])
	}

	err := filepath.Walk(configDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Printf("  Error al acceder %s: %v\n", path, err)
			return nil
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		modified, err := updateConfigFile(path, updates)
		if err != nil {
			fmt.Printf("  %v\n", err)
			return nil
		}
		if modified {
			fmt.Printf("  El archivo %s ha sido actualizado correctamente.\n", path)
		} else {
			fmt.Printf("  No se encontraron claves a actualizar en %s.\n", path)
		}
		return nil
	})
	if err != nil {
		fmt.Printf("Error al buscar archivos en la carpeta %s: %v\n", configDir, err)
	}

	fmt.Println("\nProceso de actualización de configuraciones finalizado.")
}

// parseUpdates arma el mapa clave -> valor. Cada valor se interpreta como JSON
// (números, booleanos) y si no lo es queda como string.
func parseUpdates(args []string) map[string]interface{} {
	updates := make(map[string]interface{})
	for i := 0; i+1 < len(args); i += 2 {
		var parsedValue interface{}
		if err := json.Unmarshal([]byte(args[i+1]), &parsedValue); err != nil {
			parsedValue = args[i+1]
		}
		updates[args[i]] = parsedValue
	}
	return updates
}

// updateConfigFile reemplaza en el archivo solo las claves que ya existen.
// Devuelve true si el archivo se reescribió.
func updateConfigFile(path string, updates map[string]interface{}) (bool, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("error al leer el archivo %s: %w", path, err)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(fileContent, &data); err != nil {
		return false, fmt.Errorf("error al parsear JSON en el archivo %s: %w", path, err)
	}

	modified := false
	for updateKey, updateValue := range updates {
		if _, ok := data[updateKey]; ok {
			data[updateKey] = updateValue
			modified = true
		}
	}
	if !modified {
		return false, nil
	}

	newJSON, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, fmt.Errorf("error al serializar JSON en el archivo %s: %w", path, err)
	}
	if err := os.WriteFile(path, newJSON, 0644); err != nil {
		return false, fmt.Errorf("error al escribir el archivo %s: %w", path, err)
	}
	return true, nil
}
