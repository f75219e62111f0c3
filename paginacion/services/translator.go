package services

import (
	"fmt"
	"log/slog"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

// Translator traduce direcciones lógicas a físicas. Ante un fallo de página pide
// un marco al FrameAllocator y carga la página desde el almacenamiento de respaldo.
type Translator struct {
	tables    []models.PageTable
	allocator *FrameAllocator
	frames    *FrameStore
	store     *BackingStore
	clock     *models.Clock
}

func NewTranslator(tables []models.PageTable, allocator *FrameAllocator, frames *FrameStore, store *BackingStore, clock *models.Clock) *Translator {
	return &Translator{
		tables:    tables,
		allocator: allocator,
		frames:    frames,
		store:     store,
		clock:     clock,
	}
}

// Lookup devuelve la dirección física si la página está presente.
func (t *Translator) Lookup(pid int, addr models.LogicalAddress) (models.PhysicalAddress, bool) {
	page, offset := models.DecodeLogical(addr)
	entry := t.tables[pid][page]
	if !entry.Present() {
		return 0, false
	}
	return models.EncodePhysical(entry.Frame(), offset), true
}

// Translate resuelve la dirección (cargando la página si hace falta) y actualiza la
// marca de recencia de la entrada accedida.
func (t *Translator) Translate(pid int, addr models.LogicalAddress) (models.Translation, error) {
	if pid < 0 || pid >= len(t.tables) {
		return models.Translation{}, fmt.Errorf("%w: %d", models.ErrInvalidProcess, pid)
	}

	page, offset := models.DecodeLogical(addr)
	result := models.Translation{}

	physical, hit := t.Lookup(pid, addr)
	if !hit {
		slog.Info(fmt.Sprintf("## PID: %d - Fallo de página - Página: %d", pid, page))

		frame, eviction, err := t.allocator.Allocate()
		if err != nil {
			return result, fmt.Errorf("fallo de página del proceso %d en la página %d: %w", pid, page, err)
		}

		CopyIn(t.store.PageSlice(pid, page), t.frames.FrameSlice(frame))

		entry := &t.tables[pid][page]
		*entry = entry.WithFrame(frame).WithPresent(true)

		physical = models.EncodePhysical(frame, offset)
		result.Fault = true
		result.Eviction = eviction
	}

	result.EpochReset = UpdateRecency(t.tables, pid, page, t.clock)
	result.Physical = physical
	result.Entry = t.tables[pid][page]
	return result, nil
}
