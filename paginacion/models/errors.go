package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProcessCount = errors.New("la cantidad de procesos debe ser mayor a cero")
	ErrInvalidFrameCount   = fmt.Errorf("la cantidad de marcos debe estar entre 1 y %d", MaxFrames)
	ErrInvalidProcess      = errors.New("proceso inexistente")
	// ErrAllocatorExhaustion indica que no se pudo conseguir ningún marco. Con M >= 1
	// es inalcanzable, así que si aparece se trata como violación de invariante.
	ErrAllocatorExhaustion = errors.New("no hay marcos libres ni páginas residentes para desalojar")
)

// ConfigurationError se devuelve cuando la configuración de arranque es inválida.
type ConfigurationError struct {
	Field string
	Value int
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuración inválida: %s=%d: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
