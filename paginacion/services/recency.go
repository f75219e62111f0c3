package services

import (
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

// UpdateRecency marca la página accedida con el valor actual del reloj. Cuando el
// reloj llega a MaxStamp empieza una época nueva: se limpian todas las marcas,
// el reloj vuelve a cero y la página accedida queda con marca 1.
// Devuelve true si hubo cambio de época. No avanza el reloj; eso lo hace el driver.
func UpdateRecency(tables []models.PageTable, pid int, page int, clock *models.Clock) bool {
	entry := &tables[pid][page]

	if clock.Now() < models.MaxStamp {
		*entry = entry.WithStamp(clock.Now())
		return false
	}

	ResetStamps(tables)
	clock.Reset()
	*entry = entry.WithStamp(entry.Stamp() + 1)

	slog.Debug("Nueva época de recencia", "pid", pid, "pagina", page)
	return true
}

// ResetStamps pone en cero la marca de recencia de todas las entradas de todas las tablas.
func ResetStamps(tables []models.PageTable) {
	for pid := range tables {
		for page := range tables[pid] {
			tables[pid][page] = tables[pid][page].WithStamp(0)
		}
	}
}
