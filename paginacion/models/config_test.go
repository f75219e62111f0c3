package models

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Processes = 2
	cfg.Frames = MaxFrames

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	cfg.Frames = MaxFrames + 1
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidFrameCount) {
		t.Errorf("Expected ErrInvalidFrameCount, got: %v", err)
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "frames" || cfgErr.Value != MaxFrames+1 {
		t.Errorf("Expected ConfigurationError on frames, got: %v", err)
	}

	cfg.Frames = 1
	cfg.Processes = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidProcessCount) {
		t.Errorf("Expected ErrInvalidProcessCount, got: %v", err)
	}
}

func TestClockAdvance(t *testing.T) {
	var clock Clock

	for i := 0; i < MaxStamp; i++ {
		clock.Advance()
	}
	if clock.Now() != MaxStamp {
		t.Errorf("Expected %d, got %d", MaxStamp, clock.Now())
	}

	clock.Advance()
	if clock.Now() != 0 {
		t.Errorf("Expected clock to wrap to 0, got %d", clock.Now())
	}

	clock.Set(40)
	if clock.Now() != 40&MaxStamp {
		t.Errorf("Expected %d, got %d", 40&MaxStamp, clock.Now())
	}

	clock.Reset()
	if clock.Now() != 0 {
		t.Errorf("Expected 0 after reset, got %d", clock.Now())
	}
}
