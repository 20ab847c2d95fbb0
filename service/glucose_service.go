package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"glucose-advisor/advice"
	"glucose-advisor/config"
	"glucose-advisor/dao/redis"
	"glucose-advisor/metrics"
	"glucose-advisor/models"
)

// ErrInvalidGlucose is returned for negative, non-finite or implausibly
// large glucose values.
var ErrInvalidGlucose = errors.New("invalid glucose value")

// ValidateGlucose rejects values the classifier and estimator must not see.
func ValidateGlucose(v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%w: must be a finite number", ErrInvalidGlucose)
	case v < 0:
		return fmt.Errorf("%w: must not be negative", ErrInvalidGlucose)
	case v > config.MAX_GLUCOSE_MGDL:
		return fmt.Errorf("%w: must not exceed %d mg/dL", ErrInvalidGlucose, config.MAX_GLUCOSE_MGDL)
	}
	return nil
}

// Evaluation is the classifier outcome for one reading.
type Evaluation struct {
	Reading advice.GlucoseReading
	Message advice.AdviceMessage
	Band    advice.GlucoseBand
}

// GlucoseService validates input, runs the classifier and estimator, and
// keeps the per-session chart history.
type GlucoseService struct {
	readingsDao *redis.RedisReadingsDAO
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewGlucoseService constructs a GlucoseService.
func NewGlucoseService(readingsDao *redis.RedisReadingsDAO, m *metrics.Metrics) *GlucoseService {
	return &GlucoseService{
		readingsDao: readingsDao,
		metrics:     m,
		now:         time.Now,
	}
}

// EvaluateReading classifies a reading. When sessionID is set the reading is
// also appended to that session's history; history errors are only logged.
func (gs *GlucoseService) EvaluateReading(sessionID string, reading advice.GlucoseReading) (*Evaluation, error) {
	if err := ValidateGlucose(reading.Value); err != nil {
		gs.metrics.RejectedTotal.WithLabelValues("glucose").Inc()
		return nil, err
	}

	eval := &Evaluation{
		Reading: reading,
		Message: advice.ClassifyGlucose(reading.Value, reading.Context),
		Band:    advice.ClassifyGlucoseBand(reading.Value, reading.Context),
	}
	gs.metrics.AdviceTotal.WithLabelValues(string(reading.Context), string(eval.Band)).Inc()

	if sessionID != "" {
		entry := models.ReadingEntry{
			Value:   reading.Value,
			Context: string(reading.Context),
			Advice:  string(eval.Message),
			TakenAt: gs.now().UTC(),
		}
		if err := gs.readingsDao.AppendReading(sessionID, entry); err != nil {
			log.Printf("[GlucoseService] Failed to record reading for session %s: %v", sessionID, err)
		}
	}
	return eval, nil
}

// EstimateHbA1c validates the average glucose and returns the estimate.
func (gs *GlucoseService) EstimateHbA1c(avgGlucose float64) (*advice.HbA1cEstimate, error) {
	if err := ValidateGlucose(avgGlucose); err != nil {
		gs.metrics.RejectedTotal.WithLabelValues("avg_glucose").Inc()
		return nil, err
	}

	est := advice.NewHbA1cEstimate(avgGlucose)
	gs.metrics.HbA1cTotal.WithLabelValues(string(est.Severity)).Inc()
	return &est, nil
}

// RecentReadings returns the session's chart history, oldest first. A
// storage failure yields an empty history.
func (gs *GlucoseService) RecentReadings(sessionID string) []models.ReadingEntry {
	if sessionID == "" {
		return nil
	}
	readings, err := gs.readingsDao.GetReadings(sessionID)
	if err != nil {
		log.Printf("[GlucoseService] Failed to load readings for session %s: %v", sessionID, err)
		return nil
	}
	return readings
}

// RecentValues is RecentReadings reduced to the plotted values.
func (gs *GlucoseService) RecentValues(sessionID string) []float64 {
	readings := gs.RecentReadings(sessionID)
	values := make([]float64, len(readings))
	for i, r := range readings {
		values[i] = r.Value
	}
	return values
}

// ClearReadings drops the session's history.
func (gs *GlucoseService) ClearReadings(sessionID string) error {
	return gs.readingsDao.ClearReadings(sessionID)
}

// StorageHealthy reports whether the history store is reachable.
func (gs *GlucoseService) StorageHealthy() error {
	return gs.readingsDao.Ping()
}
