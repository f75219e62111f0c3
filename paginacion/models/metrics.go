package models

// Metrics acumula estadísticas de paginación de un proceso.
type Metrics struct {
	Accesses   int `json:"accesses"`
	Hits       int `json:"hits"`
	PageFaults int `json:"page_faults"`
	Evictions  int `json:"evictions"` // páginas propias desalojadas
	Steals     int `json:"steals"`    // fallos propios resueltos desalojando a otro proceso
}

type MetricsReport struct {
	Clock       int       `json:"clock"`
	EpochResets int       `json:"epoch_resets"`
	Resident    int       `json:"resident"`
	Frames      int       `json:"frames"`
	Processes   []Metrics `json:"processes"`
}
