package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

// FrameAllocator busca marcos libres y, cuando no quedan, desaloja la página
// residente con la marca de recencia más baja entre todos los procesos.
type FrameAllocator struct {
	tables []models.PageTable
	frames *FrameStore
	store  *BackingStore
}

func NewFrameAllocator(tables []models.PageTable, frames *FrameStore, store *BackingStore) *FrameAllocator {
	return &FrameAllocator{tables: tables, frames: frames, store: store}
}

// FindFreeFrame devuelve el primer marco que ninguna entrada presente referencia.
func (a *FrameAllocator) FindFreeFrame() (int, bool) {
	for frame := 0; frame < a.frames.Frames(); frame++ {
		if !a.owned(frame) {
			return frame, true
		}
	}
	return -1, false
}

func (a *FrameAllocator) owned(frame int) bool {
	for pid := range a.tables {
		for _, entry := range a.tables[pid] {
			if entry.Present() && entry.Frame() == frame {
				return true
			}
		}
	}
	return false
}

// EvictOldest desaloja la página presente con menor marca. Ante empate gana la
// primera encontrada recorriendo proceso y luego página.
func (a *FrameAllocator) EvictOldest() (models.Eviction, error) {
	lowest := models.MaxStamp + 1
	victim := models.Eviction{PID: -1}

	for pid := range a.tables {
		for page, entry := range a.tables[pid] {
			if entry.Present() && entry.Stamp() < lowest {
				lowest = entry.Stamp()
				victim = models.Eviction{PID: pid, Page: page, Frame: entry.Frame(), Stamp: entry.Stamp()}
			}
		}
	}

	if victim.PID == -1 {
		return victim, models.ErrAllocatorExhaustion
	}

	CopyOut(a.frames.FrameSlice(victim.Frame), a.store.PageSlice(victim.PID, victim.Page))
	entry := &a.tables[victim.PID][victim.Page]
	*entry = entry.WithPresent(false)

	// el almacenamiento en memoria ya tiene la página; el swap es solo un espejo
	if err := a.store.Sync(victim.PID, victim.Page); err != nil {
		slog.Error("Error reflejando la página en SWAP", "pid", victim.PID, "pagina", victim.Page, "error", err)
	}

	slog.Info(fmt.Sprintf("## PID: %d - Página %d desalojada del marco %d", victim.PID, victim.Page, victim.Frame),
		"marca", victim.Stamp)
	return victim, nil
}

// Allocate consigue un marco: primero uno libre y, si no hay, uno desalojado.
func (a *FrameAllocator) Allocate() (int, *models.Eviction, error) {
	if frame, ok := a.FindFreeFrame(); ok {
		slog.Debug("Marco libre encontrado", "marco", frame)
		return frame, nil, nil
	}

	victim, err := a.EvictOldest()
	if err != nil {
		return -1, nil, err
	}
	return victim.Frame, &victim, nil
}
