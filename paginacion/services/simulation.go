package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
	"github.com/sisoputnfrba/tp-paginacion/utils/list"
)

// Simulator es el driver de la simulación: reparte los accesos entre los procesos
// en round robin, traduce, escribe el byte accedido y avanza el reloj global.
// Todo paso y toda consulta pasan por mu, así que buscar/desalojar/marcar presente
// es una única sección crítica aunque el servidor de inspección lea en paralelo.
type Simulator struct {
	mu sync.RWMutex

	tables     []models.PageTable
	frames     *FrameStore
	store      *BackingStore
	allocator  *FrameAllocator
	translator *Translator
	clock      models.Clock
	generator  AddressGenerator

	delay       time.Duration
	historySize int
	history     *list.ArrayList[models.StepRecord]
	metrics     []models.Metrics
	epochResets int
	steps       int
	next        int

	observer func(models.StepRecord)
}

// NewSimulator valida la configuración y arma todas las estructuras de una sola vez.
// Si la configuración es inválida no se inicializa nada.
func NewSimulator(cfg models.Config, generator AddressGenerator) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		tables:      models.NewPageTables(cfg.Processes),
		frames:      NewFrameStore(cfg.Frames),
		store:       NewBackingStore(cfg.Processes),
		generator:   generator,
		delay:       time.Duration(cfg.AccessDelay) * time.Millisecond,
		historySize: cfg.HistorySize,
		history:     &list.ArrayList[models.StepRecord]{},
		metrics:     make([]models.Metrics, cfg.Processes),
	}
	s.allocator = NewFrameAllocator(s.tables, s.frames, s.store)
	s.translator = NewTranslator(s.tables, s.allocator, s.frames, s.store, &s.clock)

	slog.Debug("Simulador inicializado", "procesos", cfg.Processes, "marcos", cfg.Frames,
		"memoria_bytes", cfg.Frames*models.PageSize, "disco_bytes", cfg.Processes*models.AddressSpace)
	return s, nil
}

// AttachSwap refleja cada escritura de vuelta en el archivo de swap.
func (s *Simulator) AttachSwap(swap *SwapFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.AttachSwap(swap)
}

// SetObserver registra una función que recibe cada registro de diagnóstico.
func (s *Simulator) SetObserver(observer func(models.StepRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = observer
}

func (s *Simulator) Processes() int {
	return len(s.tables)
}

func (s *Simulator) Frames() int {
	return s.frames.Frames()
}

// Step ejecuta el turno del próximo proceso del round robin.
func (s *Simulator) Step() (models.StepRecord, error) {
	s.mu.Lock()
	pid := s.next
	s.next = (s.next + 1) % len(s.tables)
	addr := s.generator.Next(pid)
	record, err := s.access(pid, addr)
	observer := s.observer
	s.mu.Unlock()

	if err == nil && observer != nil {
		observer(record)
	}
	return record, err
}

// Access simula una escritura de pid sobre addr fuera del round robin.
func (s *Simulator) Access(pid int, addr models.LogicalAddress) (models.StepRecord, error) {
	s.mu.Lock()
	record, err := s.access(pid, addr)
	observer := s.observer
	s.mu.Unlock()

	if err == nil && observer != nil {
		observer(record)
	}
	return record, err
}

func (s *Simulator) access(pid int, addr models.LogicalAddress) (models.StepRecord, error) {
	now := s.clock.Now()
	page := addr.Page()

	slog.Info(fmt.Sprintf("## PID: %d - t: %d - Dirección lógica: 0x%04x (Página: %d)", pid, now, uint16(addr), page))

	translation, err := s.translator.Translate(pid, addr)
	if err != nil {
		slog.Error("Error traduciendo dirección", "pid", pid, "logica", uint16(addr), "error", err)
		return models.StepRecord{}, err
	}

	before, after := s.frames.Increment(translation.Physical)

	s.recordMetrics(pid, translation)

	record := models.StepRecord{
		Step:     s.steps,
		PID:      pid,
		Clock:    now,
		Logical:  fmt.Sprintf("0x%04x", uint16(addr)),
		Page:     page,
		Fault:    translation.Fault,
		Physical: fmt.Sprintf("0x%04x", uint16(translation.Physical)),
		Frame:    translation.Physical.Frame(),
		Entry:    fmt.Sprintf("0x%04x", translation.Entry.Raw()),
		Before:   before,
		After:    after,
		Eviction: translation.Eviction,
	}

	slog.Info(fmt.Sprintf("## PID: %d - Dirección física: 0x%04x (Marco: %d) - Entrada: 0x%04x - Dato: %d -> %d",
		pid, uint16(translation.Physical), translation.Physical.Frame(), translation.Entry.Raw(), before, after))

	s.clock.Advance()
	s.steps++
	s.history.AddBounded(record, s.historySize)
	return record, nil
}

func (s *Simulator) recordMetrics(pid int, translation models.Translation) {
	m := &s.metrics[pid]
	m.Accesses++
	if translation.Fault {
		m.PageFaults++
	} else {
		m.Hits++
	}
	if ev := translation.Eviction; ev != nil {
		s.metrics[ev.PID].Evictions++
		if ev.PID != pid {
			m.Steals++
		}
	}
	if translation.EpochReset {
		s.epochResets++
	}
}

// RunSteps ejecuta n turnos respetando el retardo configurado entre accesos. Con
// n <= 0 corre hasta que se cancele ctx. La cancelación se revisa entre turnos y
// no es un error.
func (s *Simulator) RunSteps(ctx context.Context, n int) error {
	for done := 0; n <= 0 || done < n; done++ {
		if ctx.Err() != nil {
			slog.Info("Simulación detenida", "pasos", done)
			return nil
		}

		if _, err := s.Step(); err != nil {
			return err
		}

		if s.delay > 0 && (n <= 0 || done+1 < n) {
			select {
			case <-ctx.Done():
			case <-time.After(s.delay):
			}
		}
	}
	return nil
}

// Run corre la simulación hasta que se cancele ctx.
func (s *Simulator) Run(ctx context.Context) error {
	return s.RunSteps(ctx, 0)
}

func (s *Simulator) Clock() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.Now()
}

// Entry devuelve una copia de la entrada de una página.
func (s *Simulator) Entry(pid int, page int) (models.PageTableEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pid < 0 || pid >= len(s.tables) {
		return 0, fmt.Errorf("%w: %d", models.ErrInvalidProcess, pid)
	}
	return s.tables[pid][page&(models.TableSize-1)], nil
}

// Tables devuelve una vista de todas las tablas de páginas.
func (s *Simulator) Tables() []models.PageTableView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]models.PageTableView, len(s.tables))
	for pid, table := range s.tables {
		views[pid] = models.PageTableView{PID: pid, Entries: make([]models.EntryView, 0, models.TableSize)}
		for page, entry := range table {
			views[pid].Entries = append(views[pid].Entries, models.EntryView{
				Page:        page,
				Raw:         fmt.Sprintf("0x%04x", entry.Raw()),
				EntryFields: entry.Unpack(),
			})
		}
	}
	return views
}

func (s *Simulator) Metrics() models.MetricsReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resident := 0
	for pid := range s.tables {
		resident += s.tables[pid].Resident()
	}

	processes := make([]models.Metrics, len(s.metrics))
	copy(processes, s.metrics)

	return models.MetricsReport{
		Clock:       s.clock.Now(),
		EpochResets: s.epochResets,
		Resident:    resident,
		Frames:      s.frames.Frames(),
		Processes:   processes,
	}
}

// History devuelve los últimos registros; con pid >= 0 filtra por proceso.
func (s *Simulator) History(pid int) []models.StepRecord {
	if pid < 0 {
		return s.history.GetAll()
	}
	return s.history.FindAll(func(r models.StepRecord) bool {
		return r.PID == pid
	}).GetAll()
}
