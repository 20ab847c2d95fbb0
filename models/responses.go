package models

// AdviceRequest is the JSON body of POST /v1/advice.
type AdviceRequest struct {
	Glucose float64 `json:"glucose"`
	Context string  `json:"context"`
}

// AdviceResponse carries the classifier's verdict.
type AdviceResponse struct {
	Message string `json:"message"`
	Band    string `json:"band"`
	Context string `json:"context"`
}

// HbA1cResponse carries the estimator's verdict.
type HbA1cResponse struct {
	AverageGlucose float64 `json:"average_glucose"`
	HbA1c          float64 `json:"hba1c"`
	Display        string  `json:"display"`
	Severity       string  `json:"severity"`
}

// FactResponse wraps a random fact.
type FactResponse struct {
	Fact string `json:"fact"`
}

// PingResponse is the health check body. Redis is "ok" or "down".
type PingResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}

// ErrorResponse is returned with 4xx/5xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}
