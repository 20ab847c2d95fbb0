package handlers

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"glucose-advisor/advice"
	"glucose-advisor/models"
	services "glucose-advisor/service"
	"glucose-advisor/util"
)

const (
	GLUCOSE_FORM_ARG     = "glucose"
	CONTEXT_FORM_ARG     = "context"
	AVG_GLUCOSE_FORM_ARG = "avg_glucose"
	AVG_QUERY_ARG        = "avg"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// PageData feeds the form template.
type PageData struct {
	Glucose     string
	Context     string
	AvgGlucose  string
	Contexts    []string
	Advice      string
	HbA1c       *advice.HbA1cEstimate
	Errors      []string
	Fact        string
	HasReadings bool
}

type GlucoseHandler struct {
	glucoseService *services.GlucoseService
	factsService   *services.FactsService
}

func NewGlucoseHandler(glucoseService *services.GlucoseService, factsService *services.FactsService) *GlucoseHandler {
	return &GlucoseHandler{glucoseService: glucoseService, factsService: factsService}
}

// Index handles GET / and renders an empty form.
func (h *GlucoseHandler) Index(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r, true)
	data := h.newPageData()
	data.HasReadings = len(h.glucoseService.RecentReadings(sid)) > 0
	h.render(w, http.StatusOK, data)
}

// Submit handles POST / from the form. Zero or blank inputs are skipped, the
// way the form only evaluates fields the user actually filled in.
func (h *GlucoseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r, true)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	data := h.newPageData()
	data.Glucose = r.PostForm.Get(GLUCOSE_FORM_ARG)
	data.AvgGlucose = r.PostForm.Get(AVG_GLUCOSE_FORM_ARG)
	if c := r.PostForm.Get(CONTEXT_FORM_ARG); c != "" {
		data.Context = c
	}

	if glucose, ok := h.parseFormValue(data.Glucose, "glucose level", &data); ok && glucose != 0 {
		reading := advice.GlucoseReading{Value: glucose, Context: advice.ParseMeasurementContext(data.Context)}
		eval, err := h.glucoseService.EvaluateReading(sid, reading)
		if err != nil {
			data.Errors = append(data.Errors, "Blood glucose level: "+err.Error())
		} else {
			data.Advice = string(eval.Message)
		}
	}

	if avg, ok := h.parseFormValue(data.AvgGlucose, "average glucose level", &data); ok && avg != 0 {
		est, err := h.glucoseService.EstimateHbA1c(avg)
		if err != nil {
			data.Errors = append(data.Errors, "Average blood glucose level: "+err.Error())
		} else {
			data.HbA1c = est
		}
	}

	data.HasReadings = len(h.glucoseService.RecentReadings(sid)) > 0

	status := http.StatusOK
	if len(data.Errors) > 0 {
		status = http.StatusBadRequest
	}
	h.render(w, status, data)
}

// PostAdvice handles POST /v1/advice with a JSON body.
func (h *GlucoseHandler) PostAdvice(w http.ResponseWriter, r *http.Request) {
	var req models.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	sid := sessionID(w, r, false)
	reading := advice.GlucoseReading{Value: req.Glucose, Context: advice.ParseMeasurementContext(req.Context)}
	eval, err := h.glucoseService.EvaluateReading(sid, reading)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AdviceResponse{
		Message: string(eval.Message),
		Band:    string(eval.Band),
		Context: string(eval.Reading.Context),
	})
}

// GetHbA1c handles GET /v1/hba1c?avg={average glucose(float)}.
func (h *GlucoseHandler) GetHbA1c(w http.ResponseWriter, r *http.Request) {
	avg, err := strconv.ParseFloat(r.URL.Query().Get(AVG_QUERY_ARG), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid argument " + AVG_QUERY_ARG})
		return
	}

	est, err := h.glucoseService.EstimateHbA1c(avg)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.HbA1cResponse{
		AverageGlucose: avg,
		HbA1c:          est.Percent,
		Display:        est.Display,
		Severity:       string(est.Severity),
	})
}

// GetReadingsChart handles GET /v1/readings/chart.
func (h *GlucoseHandler) GetReadingsChart(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r, false)
	values := h.glucoseService.RecentValues(sid)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotReadings(w, values); err != nil {
		log.Println("[GlucoseHandler] Error rendering chart:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// GetReadings handles GET /v1/readings.
func (h *GlucoseHandler) GetReadings(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r, false)
	readings := h.glucoseService.RecentReadings(sid)
	if readings == nil {
		readings = []models.ReadingEntry{}
	}
	writeJSON(w, http.StatusOK, readings)
}

// DeleteReadings handles DELETE /v1/readings.
func (h *GlucoseHandler) DeleteReadings(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r, false)
	if sid == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.glucoseService.ClearReadings(sid); err != nil {
		log.Println("[GlucoseHandler] Error clearing readings:", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetRandomFact handles GET /v1/facts/random.
func (h *GlucoseHandler) GetRandomFact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.FactResponse{Fact: h.factsService.RandomFact()})
}

// Ping handles GET /ping. The service stays up without Redis, so an
// unreachable store is reported in the body, not the status code.
func (h *GlucoseHandler) Ping(w http.ResponseWriter, r *http.Request) {
	redisStatus := "ok"
	if err := h.glucoseService.StorageHealthy(); err != nil {
		log.Println("[GlucoseHandler] Redis health check failed:", err)
		redisStatus = "down"
	}
	writeJSON(w, http.StatusOK, models.PingResponse{Status: "pong", Redis: redisStatus})
}

func (h *GlucoseHandler) newPageData() PageData {
	return PageData{
		Context:  advice.FastingLabel,
		Contexts: []string{advice.FastingLabel, advice.PostprandialLabel},
		Fact:     h.factsService.RandomFact(),
	}
}

// parseFormValue treats a blank field as absent.
func (h *GlucoseHandler) parseFormValue(raw, field string, data *PageData) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		data.Errors = append(data.Errors, "Invalid "+field+": "+raw)
		return 0, false
	}
	return v, true
}

func (h *GlucoseHandler) render(w http.ResponseWriter, status int, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, data); err != nil {
		log.Println("[GlucoseHandler] Error rendering page:", err)
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrInvalidGlucose) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	log.Println("[GlucoseHandler] Unexpected error:", err)
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("[GlucoseHandler] Error encoding response:", err)
	}
}
