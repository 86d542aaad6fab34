package detect

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"weightwise/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMockDetector_RejectsInvertedRange(t *testing.T) {
	_, err := NewMockDetector(&config.Config{
		Detector: &config.DetectorConfig{MinWeight: 250, MaxWeight: 100},
	})
	assert.Error(t, err)
}

func TestMockDetector_DetectWeight(t *testing.T) {
	detector, err := NewMockDetector(&config.Config{
		Detector: &config.DetectorConfig{MinWeight: 100, MaxWeight: 250},
	})
	require.NoError(t, err)

	oneDecimal := regexp.MustCompile(`^\d+\.\d$`)

	for range 50 {
		weight, err := detector.DetectWeight(strings.NewReader("fake photo"))
		require.NoError(t, err)

		assert.Regexp(t, oneDecimal, weight)

		value, err := strconv.ParseFloat(weight, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, value, 100.0)
		assert.LessOrEqual(t, value, 250.0)
	}
}

func TestMockDetector_DefaultRange(t *testing.T) {
	detector, err := NewMockDetector(&config.Config{})
	require.NoError(t, err)

	weight, err := detector.DetectWeight(strings.NewReader("fake photo"))
	require.NoError(t, err)

	value, err := strconv.ParseFloat(weight, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, value, defaultMinWeight)
	assert.LessOrEqual(t, value, defaultMaxWeight)
}
