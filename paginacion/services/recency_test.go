package services

import (
	"testing"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

func TestUpdateRecency_StampsCurrentClock(t *testing.T) {
	tables := models.NewPageTables(1)
	tables[0][2] = models.PackEntry(4, true, 0)

	var clock models.Clock
	clock.Set(17)

	if UpdateRecency(tables, 0, 2, &clock) {
		t.Error("Expected no epoch reset before the clock reaches the limit")
	}
	if tables[0][2].Stamp() != 17 {
		t.Errorf("Expected stamp 17, got %d", tables[0][2].Stamp())
	}
	if clock.Now() != 17 {
		t.Errorf("Expected clock untouched, got %d", clock.Now())
	}
}

func TestUpdateRecency_EpochReset(t *testing.T) {
	tables := models.NewPageTables(2)
	tables[0][0] = models.PackEntry(0, true, 20)
	tables[0][5] = models.PackEntry(1, true, 30)
	tables[1][3] = models.PackEntry(2, true, 11)
	tables[1][8] = models.PackEntry(3, false, 25)

	var clock models.Clock
	clock.Set(models.MaxStamp)

	if !UpdateRecency(tables, 1, 3, &clock) {
		t.Fatal("Expected an epoch reset")
	}
	if clock.Now() != 0 {
		t.Errorf("Expected clock reset to 0, got %d", clock.Now())
	}

	for pid := range tables {
		for page, entry := range tables[pid] {
			if pid == 1 && page == 3 {
				continue
			}
			if entry.Stamp() != 0 {
				t.Errorf("Expected PID %d page %d stamp 0, got %d", pid, page, entry.Stamp())
			}
		}
	}

	touched := tables[1][3]
	if touched != models.PackEntry(2, true, 1) {
		t.Errorf("Expected touched entry 0x%04x, got 0x%04x", models.PackEntry(2, true, 1).Raw(), touched.Raw())
	}
	if !tables[0][5].Present() || tables[0][5].Frame() != 1 {
		t.Error("Expected epoch reset to keep presence and frame bits")
	}
}
