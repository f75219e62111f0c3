package services

import (
	"bytes"
	"testing"

	"github.com/sisoputnfrba/tp-paginacion/paginacion/models"
)

func fill(data []byte, seed byte) {
	for i := range data {
		data[i] = seed + byte(i)
	}
}

func TestBackingStorePageSlice(t *testing.T) {
	store := NewBackingStore(2)

	store.PageSlice(1, 2)[0] = 7

	if store.disk[1][2*models.PageSize] != 7 {
		t.Errorf("Expected byte at offset %d of process 1 to be 7, got %d", 2*models.PageSize, store.disk[1][2*models.PageSize])
	}
	if len(store.PageSlice(0, models.TableSize-1)) != models.PageSize {
		t.Errorf("Expected last page to have %d bytes", models.PageSize)
	}
}

func TestFrameStoreFrameSlice(t *testing.T) {
	frames := NewFrameStore(3)

	frames.FrameSlice(2)[5] = 9

	if frames.memory[2*models.PageSize+5] != 9 {
		t.Errorf("Expected byte 9 inside frame 2, got %d", frames.memory[2*models.PageSize+5])
	}
	if frames.Read(models.EncodePhysical(2, 5)) != 9 {
		t.Errorf("Expected Read to return 9")
	}
}

func TestFrameStoreIncrement(t *testing.T) {
	frames := NewFrameStore(1)
	addr := models.EncodePhysical(0, 10)
	frames.FrameSlice(0)[10] = 255

	before, after := frames.Increment(addr)
	if before != 255 || after != 0 {
		t.Errorf("Expected 255 -> 0, got %d -> %d", before, after)
	}
}

func TestCopyOutCopyInRoundTrip(t *testing.T) {
	frames := NewFrameStore(1)
	store := NewBackingStore(1)

	original := make([]byte, models.PageSize)
	fill(original, 3)
	copy(frames.FrameSlice(0), original)

	CopyOut(frames.FrameSlice(0), store.PageSlice(0, 4))

	if !bytes.Equal(frames.FrameSlice(0), make([]byte, models.PageSize)) {
		t.Errorf("Expected frame to be zeroed after CopyOut")
	}
	if !bytes.Equal(store.PageSlice(0, 4), original) {
		t.Errorf("Expected backing store to hold the frame contents")
	}

	CopyIn(store.PageSlice(0, 4), frames.FrameSlice(0))

	if !bytes.Equal(frames.FrameSlice(0), original) {
		t.Errorf("Expected CopyIn to restore the original page")
	}
}
