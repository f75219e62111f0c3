package models

// Eviction describe la página que se desalojó para liberar un marco.
type Eviction struct {
	PID   int `json:"pid"`
	Page  int `json:"page"`
	Frame int `json:"frame"`
	Stamp int `json:"stamp"`
}

// Translation es el resultado de traducir una dirección lógica.
type Translation struct {
	Physical   PhysicalAddress
	Fault      bool
	Eviction   *Eviction
	Entry      PageTableEntry
	EpochReset bool
}

// StepRecord es el registro de diagnóstico de un acceso simulado.
type StepRecord struct {
	Step     int       `json:"step"`
	PID      int       `json:"pid"`
	Clock    int       `json:"clock"`
	Logical  string    `json:"logical"`
	Page     int       `json:"page"`
	Fault    bool      `json:"fault"`
	Physical string    `json:"physical"`
	Frame    int       `json:"frame"`
	Entry    string    `json:"entry"`
	Before   byte      `json:"before"`
	After    byte      `json:"after"`
	Eviction *Eviction `json:"eviction,omitempty"`
}
