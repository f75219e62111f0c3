package models

const (
	PageSize     = 64                   // bytes por página y por marco
	OffsetBits   = 6                    // bits de desplazamiento
	TableSize    = 16                   // páginas por proceso
	AddressSpace = TableSize * PageSize // 1024 bytes por proceso
	MaxFrames    = 1 << 4               // el marco ocupa 4 bits en la entrada
)

const (
	offsetMask  = PageSize - 1
	pageMask    = TableSize - 1
	addressMask = AddressSpace - 1
)

// LogicalAddress es una dirección de 10 bits vista por un proceso: página en los
// bits 9-6 y desplazamiento en los bits 5-0.
type LogicalAddress uint16

// PhysicalAddress es una dirección de 10 bits sobre la memoria de marcos: marco en
// los bits 9-6 y el mismo desplazamiento que la dirección lógica que la originó.
type PhysicalAddress uint16

// DecodeLogical separa una dirección lógica en página y desplazamiento.
func DecodeLogical(addr LogicalAddress) (page int, offset int) {
	return int(addr>>OffsetBits) & pageMask, int(addr) & offsetMask
}

// EncodePhysical arma la dirección física a partir de un marco y un desplazamiento.
func EncodePhysical(frame int, offset int) PhysicalAddress {
	return PhysicalAddress((frame&pageMask)<<OffsetBits | offset&offsetMask)
}

// NewLogicalAddress arma la dirección lógica de una página y un desplazamiento.
func NewLogicalAddress(page int, offset int) LogicalAddress {
	return LogicalAddress((page&pageMask)<<OffsetBits | offset&offsetMask)
}

func (addr LogicalAddress) Page() int {
	page, _ := DecodeLogical(addr)
	return page
}

func (addr LogicalAddress) Offset() int {
	_, offset := DecodeLogical(addr)
	return offset
}

func (addr PhysicalAddress) Frame() int {
	return int(addr>>OffsetBits) & pageMask
}

func (addr PhysicalAddress) Offset() int {
	return int(addr) & offsetMask
}

// MaskLogical recorta cualquier entero al rango de 10 bits de una dirección lógica.
func MaskLogical(value int) LogicalAddress {
	return LogicalAddress(value & addressMask)
}
