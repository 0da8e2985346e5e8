package scan

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSimulatorProducesPlausiblePair(t *testing.T) {
	sim := &Simulator{Delay: time.Millisecond}

	result, err := sim.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if !strings.HasPrefix(result.SerialNumber, "SN-QR") {
		t.Errorf("unexpected serial %q", result.SerialNumber)
	}
	found := false
	for _, m := range models {
		if result.ModelNumber == m {
			found = true
		}
	}
	if !found {
		t.Errorf("model %q not in pool", result.ModelNumber)
	}
}

func TestSimulatorHonorsCancellation(t *testing.T) {
	sim := &Simulator{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := sim.Scan(ctx)
	if err == nil {
		t.Fatal("expected context error")
	}
	if time.Since(start) > time.Second {
		t.Error("cancelled scan did not return promptly")
	}
}
