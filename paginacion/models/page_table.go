package models

// PageTable es la tabla de un proceso: una entrada por página, indexada por número de página.
type PageTable [TableSize]PageTableEntry

// NewPageTables crea las tablas vacías de n procesos.
func NewPageTables(n int) []PageTable {
	return make([]PageTable, n)
}

// Resident cuenta las entradas presentes de la tabla.
func (table *PageTable) Resident() int {
	count := 0
	for _, entry := range table {
		if entry.Present() {
			count++
		}
	}
	return count
}

// PageTableView es la forma en que se expone una tabla en diagnósticos y dumps.
type PageTableView struct {
	PID     int         `json:"pid"`
	Entries []EntryView `json:"entries"`
}

type EntryView struct {
	Page int    `json:"page"`
	Raw  string `json:"raw"`
	EntryFields
}
