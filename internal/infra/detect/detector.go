// Package detect houses the weight detector behind the photo upload path.
package detect

import (
	"fmt"
	"io"
	"math/rand/v2"

	"weightwise/config"
	"weightwise/internal/domain/service"

	"github.com/pkg/errors"
)

// Default detection range in pounds, used when not configured.
const (
	defaultMinWeight = 100.0
	defaultMaxWeight = 250.0
)

// mockDetector stands in for a real computer-vision detector. It drains the
// photo and returns a uniformly random weight in the configured range.
type mockDetector struct {
	minWeight float64
	maxWeight float64
}

// NewMockDetector is the constructor for mockDetector.
func NewMockDetector(cfg *config.Config) (service.WeightDetector, error) {
	minWeight, maxWeight := defaultMinWeight, defaultMaxWeight
	if cfg.Detector != nil {
		if cfg.Detector.MinWeight > 0 {
			minWeight = cfg.Detector.MinWeight
		}
		if cfg.Detector.MaxWeight > 0 {
			maxWeight = cfg.Detector.MaxWeight
		}
	}

	if maxWeight < minWeight {
		return nil, errors.Errorf("invalid detector range: %.1f > %.1f", minWeight, maxWeight)
	}

	return &mockDetector{minWeight: minWeight, maxWeight: maxWeight}, nil
}

// DetectWeight reads the photo and returns a random weight with one decimal.
func (d *mockDetector) DetectWeight(photo io.Reader) (string, error) {
	// A real detector would decode the image; the mock just consumes it so
	// the upload path is exercised end to end.
	if _, err := io.Copy(io.Discard, photo); err != nil {
		return "", errors.Wrap(err, "failed to read photo")
	}

	weight := d.minWeight + rand.Float64()*(d.maxWeight-d.minWeight)

	return fmt.Sprintf("%.1f", weight), nil
}
