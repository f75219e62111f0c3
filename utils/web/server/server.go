package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

// InitServer levanta el servidor de inspección sobre el mux recibido (nil usa el
// DefaultServeMux). Bloquea hasta que el servidor termina y retorna el error.
//
// Parámetros:
//   - port: puerto donde se iniciará el servidor
//   - handler: mux con los endpoints registrados
//
// Ejemplo:
//
//	func main() {
//		go func() {
//			if err := server.InitServer(cfg.Port, mux); err != nil {
//				slog.Error("error initializing server", "error", err)
//			}
//		}()
//	}
func InitServer(port int, handler http.Handler) error {
	addr := ":" + strconv.Itoa(port)

	err := http.ListenAndServe(addr, handler)
	if err != nil {
		slog.Error("Error al escuchar en el puerto "+addr, "error", err)
	}
	return err
}

// SendJsonResponse retorna la respuesta del servidor en formato JSON
//
// Parámetros:
//   - writer: el http.ResponseWriter con el que se escribe la respuesta HTTP
//   - data: cualquier estructura de datos que querés enviar al cliente, se convierte automáticamente a JSON.
func SendJsonResponse(writer http.ResponseWriter, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(writer, "Error al convertir datos a JSON", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(response)
}
