// Package scan provides the QR scan input source for the transfer and
// intake forms. The only implementation is a simulator standing in for a
// camera: it produces a plausible serial/model pair after a fixed delay.
package scan

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Result is a decoded laptop QR payload.
type Result struct {
	SerialNumber string `json:"serial_number"`
	ModelNumber  string `json:"model_number"`
}

// Scanner produces one scan result per call.
type Scanner interface {
	Scan(ctx context.Context) (Result, error)
}

// DefaultDelay approximates how long a camera scan takes.
const DefaultDelay = 1500 * time.Millisecond

// models is the pool of model numbers the simulator draws from.
var models = []string{"XPS 13", "Latitude 7420", "MacBook Pro 14", "ThinkPad P1"}

// Simulator is a mock Scanner. The zero value uses DefaultDelay.
type Simulator struct {
	Delay time.Duration
}

// Scan waits out the simulated scan delay and returns a random
// serial/model pair. It returns early if the context is cancelled.
func (s *Simulator) Scan(ctx context.Context) (Result, error) {
	delay := s.Delay
	if delay == 0 {
		delay = DefaultDelay
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	return Result{
		SerialNumber: fmt.Sprintf("SN-QR%04d", 1000+rand.IntN(9000)),
		ModelNumber:  models[rand.IntN(len(models))],
	}, nil
}
