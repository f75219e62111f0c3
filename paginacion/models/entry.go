package models

// Distribución de bits de una entrada de la tabla de páginas:
//
//	15..12  marco
//	11..6   reservados (siempre en cero)
//	5       bit de presencia
//	4..0    marca de recencia (0-31)
const (
	frameShift   = 12
	frameMask    = 0xF
	presentBit   = 1 << 5
	stampMask    = 0x1F
	reservedMask = 0x0FC0

	// MaxStamp es el mayor valor que entra en la marca de recencia.
	MaxStamp = stampMask
)

// PageTableEntry es la entrada empaquetada de 16 bits. El valor crudo sólo sale
// del tipo a través de Raw, para diagnósticos.
type PageTableEntry uint16

// EntryFields es la vista desempaquetada de una entrada.
type EntryFields struct {
	Frame   int  `json:"frame"`
	Present bool `json:"present"`
	Stamp   int  `json:"stamp"`
}

// PackEntry arma una entrada a partir de sus campos. Los valores se enmascaran al
// ancho de cada campo.
func PackEntry(frame int, present bool, stamp int) PageTableEntry {
	entry := PageTableEntry((frame & frameMask) << frameShift)
	if present {
		entry |= presentBit
	}
	return entry | PageTableEntry(stamp&stampMask)
}

func (e PageTableEntry) Unpack() EntryFields {
	return EntryFields{Frame: e.Frame(), Present: e.Present(), Stamp: e.Stamp()}
}

func (e PageTableEntry) Frame() int {
	return int(e>>frameShift) & frameMask
}

func (e PageTableEntry) Present() bool {
	return e&presentBit != 0
}

func (e PageTableEntry) Stamp() int {
	return int(e) & stampMask
}

func (e PageTableEntry) Reserved() int {
	return int(e & reservedMask)
}

func (e PageTableEntry) Raw() uint16 {
	return uint16(e)
}

func (e PageTableEntry) WithFrame(frame int) PageTableEntry {
	return e&^(frameMask<<frameShift) | PageTableEntry((frame&frameMask)<<frameShift)
}

func (e PageTableEntry) WithPresent(present bool) PageTableEntry {
	if present {
		return e | presentBit
	}
	return e &^ presentBit
}

func (e PageTableEntry) WithStamp(stamp int) PageTableEntry {
	return e&^stampMask | PageTableEntry(stamp&stampMask)
}
