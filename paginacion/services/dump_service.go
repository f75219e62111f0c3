package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/helpers"
	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

// DumpProcess escribe en dir la imagen completa (AddressSpace bytes) del espacio
// lógico de un proceso: las páginas presentes se toman del marco y el resto del
// almacenamiento de respaldo. Devuelve la ruta del archivo creado.
func (s *Simulator) DumpProcess(dir string, pid int) (string, error) {
	slog.Info(fmt.Sprintf("## PID: %d - Memory Dump solicitado", pid))

	s.mu.RLock()
	if pid < 0 || pid >= len(s.tables) {
		s.mu.RUnlock()
		return "", fmt.Errorf("%w: %d", models.ErrInvalidProcess, pid)
	}
	image := make([]byte, 0, models.AddressSpace)
	for page, entry := range s.tables[pid] {
		if entry.Present() {
			image = append(image, s.frames.FrameSlice(entry.Frame())...)
		} else {
			image = append(image, s.store.PageSlice(pid, page)...)
		}
	}
	s.mu.RUnlock()

	return writeDump(dir, helpers.GetDumpName(pid), image)
}

// DumpFrames escribe en dir el contenido crudo de todos los marcos.
func (s *Simulator) DumpFrames(dir string) (string, error) {
	s.mu.RLock()
	image := make([]byte, 0, s.frames.Frames()*models.PageSize)
	for frame := 0; frame < s.frames.Frames(); frame++ {
		image = append(image, s.frames.FrameSlice(frame)...)
	}
	s.mu.RUnlock()

	return writeDump(dir, helpers.GetFramesDumpName(), image)
}

func writeDump(dir string, name string, data []byte) (string, error) {
	if err := helpers.CreateDirectory(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		slog.Error(fmt.Sprintf("error al crear archivo de dump: %v", err))
		return "", fmt.Errorf("fallo al escribir datos al archivo de dump: %w", err)
	}

	slog.Info("Memory Dump completado", "archivo", path, "bytes", len(data))
	return path, nil
}
