package handlers

import (
	"net/http"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
	webHandlers "github.com/sisoputnfrba/tp-paginacion/utils/web/handlers"
)

// NewMux registra los endpoints de inspección del simulador.
func NewMux(engine Engine, cfg models.Config) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", webHandlers.HandshakeHandler("Bienvenido al simulador de paginación"))
	mux.HandleFunc("GET /paginacion", webHandlers.HandshakeHandler("Simulador en funcionamiento 🚀"))
	mux.HandleFunc("GET /paginacion/config", ConfigHandler(cfg))
	mux.HandleFunc("GET /paginacion/tablas", TablesHandler(engine))
	mux.HandleFunc("GET /paginacion/metricas", MetricsHandler(engine))
	mux.HandleFunc("GET /paginacion/historial", HistoryHandler(engine))
	mux.HandleFunc("POST /paginacion/acceso", AccessHandler(engine))
	mux.HandleFunc("POST /paginacion/dump", DumpHandler(engine, cfg.DumpPath))

	return mux
}
