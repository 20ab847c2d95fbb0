package advice

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateHbA1c(t *testing.T) {
	assert.InDelta(t, 1.627, EstimateHbA1c(0), 0.001)
	assert.InDelta(t, 6.035, EstimateHbA1c(126.5), 0.001)
	assert.Equal(t, "6.03", FormatHbA1c(EstimateHbA1c(126.5)))
	assert.Equal(t, "1.63", FormatHbA1c(EstimateHbA1c(0)))
}

func TestEstimateHbA1c_Monotonic(t *testing.T) {
	prev := math.Inf(-1)
	for avg := 0.0; avg <= 500; avg += 0.5 {
		got := EstimateHbA1c(avg)
		if got <= prev {
			t.Fatalf("EstimateHbA1c(%v) = %v, not greater than previous %v", avg, got, prev)
		}
		prev = got
	}
}

func TestClassifyHbA1c(t *testing.T) {
	tests := []struct {
		estimate float64
		expected Severity
	}{
		{0, SeverityNormal},
		{5.69, SeverityNormal},
		{5.7, SeverityPrediabetes},
		{6.0, SeverityPrediabetes},
		{6.49, SeverityPrediabetes},
		{6.5, SeverityDiabetes},
		{12, SeverityDiabetes},
	}

	for _, tt := range tests {
		result := ClassifyHbA1c(tt.estimate)
		if result != tt.expected {
			t.Errorf("ClassifyHbA1c(%v) = %s, want %s", tt.estimate, result, tt.expected)
		}
	}
}

func TestNewHbA1cEstimate(t *testing.T) {
	est := NewHbA1cEstimate(126.5)

	assert.InDelta(t, 6.035, est.Percent, 0.001)
	assert.Equal(t, "6.03", est.Display)
	assert.Equal(t, SeverityPrediabetes, est.Severity)
	assert.Equal(t, est, NewHbA1cEstimate(126.5))
}
