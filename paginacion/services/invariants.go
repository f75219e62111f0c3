package services

import (
	"fmt"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

// CheckTables verifica que ningún marco tenga más de un dueño, que no haya más
// páginas residentes que marcos y que los bits reservados estén en cero.
func CheckTables(tables []models.PageTable, frames int) error {
	owners := make(map[int]string)
	resident := 0

	for pid := range tables {
		for page, entry := range tables[pid] {
			if entry.Reserved() != 0 {
				return fmt.Errorf("PID %d página %d: bits reservados en uso (0x%04x)", pid, page, entry.Raw())
			}
			if !entry.Present() {
				continue
			}
			resident++
			if entry.Frame() >= frames {
				return fmt.Errorf("PID %d página %d: marco %d fuera de rango", pid, page, entry.Frame())
			}
			owner := fmt.Sprintf("PID %d página %d", pid, page)
			if previous, taken := owners[entry.Frame()]; taken {
				return fmt.Errorf("marco %d compartido por %s y %s", entry.Frame(), previous, owner)
			}
			owners[entry.Frame()] = owner
		}
	}

	if resident > frames {
		return fmt.Errorf("%d páginas residentes con sólo %d marcos", resident, frames)
	}
	return nil
}

func (s *Simulator) CheckInvariants() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CheckTables(s.tables, s.frames.Frames())
}
