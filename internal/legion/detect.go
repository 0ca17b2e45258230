package legion

import (
	"context"
	"fmt"
	"strings"

	"github.com/danieljhkim/planswitch/internal/runner"
)

// Detector decides whether this machine is a Lenovo Legion.
type Detector interface {
	// Detect returns false with a non-nil error when the inventory query
	// could not be completed.
	Detect(ctx context.Context) (bool, error)
}

// Inventory command lines.
const (
	ManufacturerCmd = "wmic computersystem get manufacturer"
	ModelCmd        = "wmic computersystem get model"
)

// WMICDetector queries the hardware inventory with wmic: the manufacturer
// must mention "lenovo" and the model must mention "legion".
type WMICDetector struct {
	runner runner.Runner
}

// NewWMICDetector creates a WMICDetector.
func NewWMICDetector(r runner.Runner) *WMICDetector {
	return &WMICDetector{runner: r}
}

// Detect runs the two-step inventory query.
func (d *WMICDetector) Detect(ctx context.Context) (bool, error) {
	manufacturer, err := d.query(ctx, "manufacturer")
	if err != nil {
		return false, err
	}
	if !strings.Contains(manufacturer, "lenovo") {
		return false, nil
	}

	model, err := d.query(ctx, "model")
	if err != nil {
		return false, err
	}
	return strings.Contains(model, "legion"), nil
}

func (d *WMICDetector) query(ctx context.Context, field string) (string, error) {
	out, err := d.runner.Output(ctx, "wmic", "computersystem", "get", field)
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", field, err)
	}
	return normalize(out), nil
}

// normalize lower-cases inventory output. wmic writes UTF-16LE when its
// output is redirected, so NUL bytes are dropped before matching ASCII.
func normalize(out []byte) string {
	b := make([]byte, 0, len(out))
	for _, c := range out {
		if c != 0 {
			b = append(b, c)
		}
	}
	return strings.ToLower(strings.ToValidUTF8(string(b), ""))
}
