package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

// SwapFile refleja el almacenamiento de respaldo en disco. Cada proceso ocupa
// AddressSpace bytes a partir de pid*AddressSpace y cada página queda en su
// desplazamiento natural dentro de ese bloque.
type SwapFile struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// OpenSwapFile crea (o trunca) el archivo de swap con lugar para todos los procesos.
func OpenSwapFile(path string, processes int) (*SwapFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear directorio para swap: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error al crear archivo SWAP: %w", err)
	}

	if err := file.Truncate(int64(processes * models.AddressSpace)); err != nil {
		file.Close()
		return nil, fmt.Errorf("error al dimensionar archivo SWAP: %w", err)
	}

	slog.Debug("Archivo SWAP creado", "archivo", path, "procesos", processes)
	return &SwapFile{path: path, file: file}, nil
}

func swapOffset(pid int, page int) int64 {
	return int64(pid*models.AddressSpace + page*models.PageSize)
}

func (s *SwapFile) WritePage(pid int, page int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset := swapOffset(pid, page)
	if _, err := s.file.WriteAt(data[:models.PageSize], offset); err != nil {
		return fmt.Errorf("error al escribir en SWAP (offset %d): %w", offset, err)
	}
	return nil
}

func (s *SwapFile) ReadPage(pid int, page int, dst []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	offset := swapOffset(pid, page)
	if _, err := s.file.ReadAt(dst[:models.PageSize], offset); err != nil {
		return fmt.Errorf("error al leer de SWAP (offset %d): %w", offset, err)
	}
	return nil
}

func (s *SwapFile) Path() string {
	return s.path
}

func (s *SwapFile) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
