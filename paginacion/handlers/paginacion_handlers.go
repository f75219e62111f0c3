package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
	"github.com/sisoputnfrba/tp-paginacion/utils/web/server"
)

// Engine es lo que los handlers necesitan del simulador.
type Engine interface {
	Access(pid int, addr models.LogicalAddress) (models.StepRecord, error)
	Tables() []models.PageTableView
	Metrics() models.MetricsReport
	History(pid int) []models.StepRecord
	DumpProcess(dir string, pid int) (string, error)
	DumpFrames(dir string) (string, error)
}

type AccessRequest struct {
	PID     int `json:"pid"`
	Address int `json:"address"`
}

type DumpRequest struct {
	PID *int `json:"pid"`
}

type DumpResponse struct {
	File string `json:"file"`
}

func ConfigHandler(cfg models.Config) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		server.SendJsonResponse(w, cfg)
	}
}

func TablesHandler(engine Engine) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		server.SendJsonResponse(w, engine.Tables())
	}
}

func MetricsHandler(engine Engine) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		server.SendJsonResponse(w, engine.Metrics())
	}
}

// HistoryHandler devuelve los últimos accesos; acepta ?pid=n para filtrar.
func HistoryHandler(engine Engine) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		pid := -1
		if pidStr := r.URL.Query().Get("pid"); pidStr != "" {
			parsed, err := strconv.Atoi(pidStr)
			if err != nil || parsed < 0 {
				http.Error(w, "pid inválido", http.StatusBadRequest)
				return
			}
			pid = parsed
		}
		server.SendJsonResponse(w, engine.History(pid))
	}
}

// AccessHandler simula una escritura puntual de un proceso sobre una dirección lógica.
func AccessHandler(engine Engine) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AccessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Invalid request", "error", err)
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if req.Address < 0 || req.Address >= models.AddressSpace {
			http.Error(w, "dirección lógica fuera del espacio del proceso", http.StatusBadRequest)
			return
		}

		record, err := engine.Access(req.PID, models.LogicalAddress(req.Address))
		if errors.Is(err, models.ErrInvalidProcess) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("Error simulando acceso", "pid", req.PID, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		server.SendJsonResponse(w, record)
	}
}

// DumpHandler vuelca la imagen de un proceso o, sin pid, el contenido de todos los marcos.
func DumpHandler(engine Engine, dumpPath string) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DumpRequest
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				slog.Error("Invalid request", "error", err)
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		var file string
		var err error
		if req.PID != nil {
			file, err = engine.DumpProcess(dumpPath, *req.PID)
		} else {
			file, err = engine.DumpFrames(dumpPath)
		}

		if errors.Is(err, models.ErrInvalidProcess) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		server.SendJsonResponse(w, DumpResponse{File: file})
	}
}
