package advice

import "fmt"

// Linear regression constants for average glucose (mg/dL) to HbA1c (%).
const (
	hba1cOffset  = 46.7
	hba1cDivisor = 28.7
)

// HbA1c severity thresholds in percent.
const (
	HbA1cPrediabetesFrom = 5.7
	HbA1cDiabetesFrom    = 6.5
)

// EstimateHbA1c estimates HbA1c from an average glucose value in mg/dL.
// The result keeps full precision; use FormatHbA1c for display.
func EstimateHbA1c(avgGlucose float64) float64 {
	return (avgGlucose + hba1cOffset) / hba1cDivisor
}

// ClassifyHbA1c returns the severity band for an HbA1c percentage.
func ClassifyHbA1c(estimate float64) Severity {
	if estimate < HbA1cPrediabetesFrom {
		return SeverityNormal
	}
	if estimate < HbA1cDiabetesFrom {
		return SeverityPrediabetes
	}
	return SeverityDiabetes
}

// FormatHbA1c renders an estimate with two decimals.
func FormatHbA1c(estimate float64) string {
	return fmt.Sprintf("%.2f", estimate)
}

// NewHbA1cEstimate computes, formats and classifies in one call.
func NewHbA1cEstimate(avgGlucose float64) HbA1cEstimate {
	pct := EstimateHbA1c(avgGlucose)
	return HbA1cEstimate{
		Percent:  pct,
		Display:  FormatHbA1c(pct),
		Severity: ClassifyHbA1c(pct),
	}
}
