package services

import (
	"math/rand"
	"sync"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

// AddressGenerator produce la próxima dirección lógica que accede un proceso.
type AddressGenerator interface {
	Next(pid int) models.LogicalAddress
}

// RandomGenerator genera direcciones lógicas pares al azar dentro del espacio del proceso.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *RandomGenerator) Next(pid int) models.LogicalAddress {
	g.mu.Lock()
	defer g.mu.Unlock()
	return models.MaskLogical(g.rnd.Intn(models.AddressSpace) &^ 1)
}

// SequenceGenerator repite de forma cíclica una traza fija por proceso. Un proceso
// sin traza accede siempre a la dirección 0.
type SequenceGenerator struct {
	mu     sync.Mutex
	traces [][]models.LogicalAddress
	next   []int
}

func NewSequenceGenerator(traces [][]models.LogicalAddress) *SequenceGenerator {
	return &SequenceGenerator{traces: traces, next: make([]int, len(traces))}
}

func (g *SequenceGenerator) Next(pid int) models.LogicalAddress {
	g.mu.Lock()
	defer g.mu.Unlock()

	if pid >= len(g.traces) || len(g.traces[pid]) == 0 {
		return 0
	}
	addr := g.traces[pid][g.next[pid]]
	g.next[pid] = (g.next[pid] + 1) % len(g.traces[pid])
	return addr
}
