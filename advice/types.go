package advice

import "strings"

// MeasurementContext tells when a glucose reading was taken.
type MeasurementContext string

const (
	ContextFasting      MeasurementContext = "fasting"
	ContextPostprandial MeasurementContext = "postprandial"
	ContextUnknown      MeasurementContext = "unknown"
)

// Form labels as shown in the context dropdown.
const (
	FastingLabel      = "Fasting"
	PostprandialLabel = "Postprandial (after meal)"
)

// ParseMeasurementContext maps a form or API value to a context.
// Unrecognized values yield ContextUnknown rather than an error.
func ParseMeasurementContext(s string) MeasurementContext {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fasting":
		return ContextFasting
	case "postprandial", "postprandial (after meal)", "after meal":
		return ContextPostprandial
	default:
		return ContextUnknown
	}
}

// Label returns the dropdown label for the context.
func (c MeasurementContext) Label() string {
	switch c {
	case ContextFasting:
		return FastingLabel
	case ContextPostprandial:
		return PostprandialLabel
	default:
		return string(c)
	}
}

// GlucoseBand is the classification band a reading falls into.
type GlucoseBand string

const (
	BandLow         GlucoseBand = "low"
	BandNormal      GlucoseBand = "normal"
	BandPrediabetes GlucoseBand = "prediabetes"
	BandHigh        GlucoseBand = "high"
	BandInvalid     GlucoseBand = "invalid"
)

// AdviceMessage is one of a fixed set of health advice strings.
type AdviceMessage string

const (
	AdviceFastingLow         AdviceMessage = "Low blood glucose (hypoglycemia). Please consult your doctor."
	AdviceFastingNormal      AdviceMessage = "Normal fasting glucose level. Maintain a healthy lifestyle."
	AdviceFastingPrediabetes AdviceMessage = "Prediabetes range. Consider improving diet and exercise."
	AdviceFastingHigh        AdviceMessage = "High blood glucose (diabetes). Please consult a healthcare provider."

	AdvicePostprandialNormal      AdviceMessage = "Normal postprandial glucose level."
	AdvicePostprandialPrediabetes AdviceMessage = "Prediabetes range. Watch your diet and consider exercise."
	AdvicePostprandialHigh        AdviceMessage = "High blood glucose (diabetes). Please consult your doctor."

	AdviceInvalidContext AdviceMessage = "Invalid time of day."
)

// GlucoseReading is a single reading paired with its measurement context.
type GlucoseReading struct {
	Value   float64            `json:"glucose"` // mg/dL
	Context MeasurementContext `json:"context"`
}

// Severity is the HbA1c classification outcome.
type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityPrediabetes Severity = "prediabetes"
	SeverityDiabetes    Severity = "diabetes"
)

// HbA1cEstimate is an estimated HbA1c percentage with its severity band.
type HbA1cEstimate struct {
	Percent  float64  `json:"hba1c"`
	Display  string   `json:"display"`
	Severity Severity `json:"severity"`
}
