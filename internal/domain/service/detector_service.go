package service

import "io"

// WeightDetector extracts a weight reading from an uploaded scale photo.
//
// The only implementation is a mock that ignores the image and returns a
// random plausible value; the interface exists so a real detector can be
// dropped in without touching the upload path.
type WeightDetector interface {
	// DetectWeight returns the detected weight formatted to one decimal
	// place, e.g. "176.4".
	DetectWeight(photo io.Reader) (string, error)
}
