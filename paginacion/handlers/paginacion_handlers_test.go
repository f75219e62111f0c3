package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
	"github.com/sisoputnfrba/tp-paginacion/paginacion/services"
)

func newTestServer(t *testing.T) (*httptest.Server, *services.Simulator) {
	t.Helper()

	cfg := models.DefaultConfig()
	cfg.Processes = 2
	cfg.Frames = 2
	cfg.AccessDelay = 0
	cfg.DumpPath = t.TempDir()

	simulator, err := services.NewSimulator(cfg, services.NewSequenceGenerator([][]models.LogicalAddress{
		{models.NewLogicalAddress(1, 0)},
		{models.NewLogicalAddress(2, 0)},
	}))
	if err != nil {
		t.Fatalf("Expected no error creating the simulator, got: %v", err)
	}

	server := httptest.NewServer(NewMux(simulator, cfg))
	t.Cleanup(server.Close)
	return server, simulator
}

func postJson(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("Failed to marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandshake(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/paginacion")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestAccessHandler(t *testing.T) {
	server, simulator := newTestServer(t)

	resp := postJson(t, server.URL+"/paginacion/acceso", AccessRequest{PID: 1, Address: 0x0C5})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var record models.StepRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if record.PID != 1 || record.Page != 3 || !record.Fault || record.Physical != "0x0005" {
		t.Errorf("Unexpected record %+v", record)
	}
	if simulator.Metrics().Processes[1].Accesses != 1 {
		t.Error("Expected the access to be recorded")
	}
}

func TestAccessHandler_Errors(t *testing.T) {
	server, _ := newTestServer(t)

	tests := []struct {
		name     string
		body     any
		expected int
	}{
		{"unknown process", AccessRequest{PID: 7, Address: 0}, http.StatusNotFound},
		{"address out of range", AccessRequest{PID: 0, Address: models.AddressSpace}, http.StatusBadRequest},
		{"negative address", AccessRequest{PID: 0, Address: -2}, http.StatusBadRequest},
		{"invalid body", "no es un acceso", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJson(t, server.URL+"/paginacion/acceso", tt.body)
			if resp.StatusCode != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, resp.StatusCode)
			}
		})
	}
}

func TestTablesAndMetricsHandlers(t *testing.T) {
	server, simulator := newTestServer(t)
	for i := 0; i < 4; i++ {
		if _, err := simulator.Step(); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}

	resp, err := http.Get(server.URL + "/paginacion/tablas")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var views []models.PageTableView
	if err := json.NewDecoder(resp.Body).Decode(&views); err != nil {
		t.Fatalf("Failed to decode tables: %v", err)
	}
	if len(views) != 2 || !views[0].Entries[1].Present || !views[1].Entries[2].Present {
		t.Errorf("Expected page 1 of PID 0 and page 2 of PID 1 present, got %+v", views)
	}

	resp, err = http.Get(server.URL + "/paginacion/metricas")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var report models.MetricsReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("Failed to decode metrics: %v", err)
	}
	if report.Clock != 4 || report.Resident != 2 || report.Frames != 2 {
		t.Errorf("Unexpected report %+v", report)
	}
	if report.Processes[0].Hits != 1 || report.Processes[0].PageFaults != 1 {
		t.Errorf("Expected 1 hit and 1 fault for PID 0, got %+v", report.Processes[0])
	}
}

func TestHistoryHandler(t *testing.T) {
	server, simulator := newTestServer(t)
	for i := 0; i < 3; i++ {
		if _, err := simulator.Step(); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}

	resp, err := http.Get(server.URL + "/paginacion/historial?pid=0")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var records []models.StepRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		t.Fatalf("Failed to decode history: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records of PID 0, got %d", len(records))
	}

	bad, err := http.Get(server.URL + "/paginacion/historial?pid=abc")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer bad.Body.Close()
	if bad.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", bad.StatusCode)
	}
}

func TestDumpHandler(t *testing.T) {
	server, simulator := newTestServer(t)
	if _, err := simulator.Step(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	pid := 0
	resp := postJson(t, server.URL+"/paginacion/dump", DumpRequest{PID: &pid})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	var dump DumpResponse
	if err := json.NewDecoder(resp.Body).Decode(&dump); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	image, err := os.ReadFile(dump.File)
	if err != nil {
		t.Fatalf("Failed to read dump: %v", err)
	}
	if len(image) != models.AddressSpace || image[models.PageSize] != 1 {
		t.Errorf("Expected process image with 1 at page 1, got %d bytes", len(image))
	}

	frames, err := http.Post(server.URL+"/paginacion/dump", "application/json", nil)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer frames.Body.Close()
	if err := json.NewDecoder(frames.Body).Decode(&dump); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	image, _ = os.ReadFile(dump.File)
	if len(image) != 2*models.PageSize {
		t.Errorf("Expected %d bytes of frames, got %d", 2*models.PageSize, len(image))
	}

	missing := 5
	resp = postJson(t, server.URL+"/paginacion/dump", DumpRequest{PID: &missing})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
