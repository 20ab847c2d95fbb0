package advice

// Fasting thresholds in mg/dL. Anything above FastingPrediabetesMax is high.
const (
	FastingNormalFrom      = 70
	FastingPrediabetesFrom = 100
	FastingPrediabetesMax  = 125
)

// Postprandial thresholds in mg/dL.
const (
	PostprandialPrediabetesFrom = 140
	PostprandialHighFrom        = 200
)

// ClassifyGlucoseBand returns the band for a reading taken in the given context.
func ClassifyGlucoseBand(glucose float64, ctx MeasurementContext) GlucoseBand {
	switch ctx {
	case ContextFasting:
		if glucose < FastingNormalFrom {
			return BandLow
		}
		if glucose < FastingPrediabetesFrom {
			return BandNormal
		}
		if glucose <= FastingPrediabetesMax {
			return BandPrediabetes
		}
		return BandHigh
	case ContextPostprandial:
		if glucose < PostprandialPrediabetesFrom {
			return BandNormal
		}
		if glucose < PostprandialHighFrom {
			return BandPrediabetes
		}
		return BandHigh
	default:
		return BandInvalid
	}
}

var fastingAdvice = map[GlucoseBand]AdviceMessage{
	BandLow:         AdviceFastingLow,
	BandNormal:      AdviceFastingNormal,
	BandPrediabetes: AdviceFastingPrediabetes,
	BandHigh:        AdviceFastingHigh,
}

var postprandialAdvice = map[GlucoseBand]AdviceMessage{
	BandNormal:      AdvicePostprandialNormal,
	BandPrediabetes: AdvicePostprandialPrediabetes,
	BandHigh:        AdvicePostprandialHigh,
}

// ClassifyGlucose maps a reading and its context to a health advice message.
// An unknown context yields AdviceInvalidContext. Input is not validated.
func ClassifyGlucose(glucose float64, ctx MeasurementContext) AdviceMessage {
	band := ClassifyGlucoseBand(glucose, ctx)
	switch ctx {
	case ContextFasting:
		return fastingAdvice[band]
	case ContextPostprandial:
		return postprandialAdvice[band]
	default:
		return AdviceInvalidContext
	}
}

// Classify is ClassifyGlucose for a GlucoseReading.
func (r GlucoseReading) Classify() AdviceMessage {
	return ClassifyGlucose(r.Value, r.Context)
}
