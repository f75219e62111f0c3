package services

import (
	"fmt"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

// BackingStore es el disco simulado: AddressSpace bytes por proceso. Es la copia
// autoritativa de toda página que no esté presente en un marco.
type BackingStore struct {
	disk [][]byte
	swap *SwapFile
}

func NewBackingStore(processes int) *BackingStore {
	disk := make([][]byte, processes)
	for i := range disk {
		disk[i] = make([]byte, models.AddressSpace)
	}
	return &BackingStore{disk: disk}
}

// AttachSwap hace que cada escritura de vuelta se refleje también en el archivo de swap.
func (b *BackingStore) AttachSwap(swap *SwapFile) {
	b.swap = swap
}

func (b *BackingStore) Processes() int {
	return len(b.disk)
}

// PageSlice devuelve los PageSize bytes de la página de un proceso.
func (b *BackingStore) PageSlice(pid int, page int) []byte {
	start := page * models.PageSize
	return b.disk[pid][start : start+models.PageSize]
}

// Sync vuelca al swap la página indicada, si hay un archivo de swap asociado.
func (b *BackingStore) Sync(pid int, page int) error {
	if b.swap == nil {
		return nil
	}
	if err := b.swap.WritePage(pid, page, b.PageSlice(pid, page)); err != nil {
		return fmt.Errorf("no se pudo sincronizar la página %d del proceso %d: %w", page, pid, err)
	}
	return nil
}

// FrameStore es la memoria física compartida: PageSize bytes por marco.
type FrameStore struct {
	memory []byte
	frames int
}

func NewFrameStore(frames int) *FrameStore {
	return &FrameStore{
		memory: make([]byte, frames*models.PageSize),
		frames: frames,
	}
}

func (f *FrameStore) Frames() int {
	return f.frames
}

// FrameSlice devuelve los PageSize bytes del marco indicado.
func (f *FrameStore) FrameSlice(frame int) []byte {
	start := frame * models.PageSize
	return f.memory[start : start+models.PageSize]
}

func (f *FrameStore) Read(addr models.PhysicalAddress) byte {
	return f.FrameSlice(addr.Frame())[addr.Offset()]
}

// Increment simula una escritura sumando uno al byte de la dirección física.
func (f *FrameStore) Increment(addr models.PhysicalAddress) (before byte, after byte) {
	frame := f.FrameSlice(addr.Frame())
	before = frame[addr.Offset()]
	frame[addr.Offset()]++
	return before, frame[addr.Offset()]
}

// CopyIn carga una página del almacenamiento en un marco.
func CopyIn(store []byte, frame []byte) {
	copy(frame[:models.PageSize], store[:models.PageSize])
}

// CopyOut escribe un marco de vuelta en el almacenamiento y deja el marco en cero.
func CopyOut(frame []byte, store []byte) {
	copy(store[:models.PageSize], frame[:models.PageSize])
	clear(frame[:models.PageSize])
}
