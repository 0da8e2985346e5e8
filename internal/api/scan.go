package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/scan"
)

// ScanHandler exposes the scan source to the forms.
type ScanHandler struct {
	Scanner scan.Scanner
}

// Simulate handles POST /api/scan. The call blocks for the simulated
// scan duration, mirroring a real camera read.
func (h *ScanHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	result, err := h.Scanner.Scan(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away mid-scan; nothing to answer.
			return
		}
		jsonError(w, http.StatusInternalServerError, "scan failed")
		return
	}
	jsonResponse(w, http.StatusOK, result)
}
