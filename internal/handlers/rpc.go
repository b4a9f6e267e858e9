package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/metrics"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

// Error codes carried in ErrorResponse.Code
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeBadRequest          = "BAD_REQUEST"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

const codeOK = "OK"

// Procedure names, also used as metric labels
const (
	ProcedureTweetsAll    = "tweets.all"
	ProcedureTweetsOne    = "tweets.one"
	ProcedureTweetsCreate = "tweets.create"
	ProcedureTweetsDelete = "tweets.delete"
)

const internalServerErrorMessage = "Internal server error"

// ErrorResponse is the body of every failed procedure call
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Machine-readable code
	// example: BAD_REQUEST
	Code string `json:"code"`

	// Human-readable message
	// example: No such tweet with ID 2f0c5a8e-6d8e-4a36-9e0e-1b5d0f7b7c11
	Error string `json:"error"`

	// Per-field validation failures
	Issues []validation.Violation `json:"issues,omitempty"`
}

var errInvalidBody = &validation.ValidationError{Violations: []validation.Violation{{
	Field:   "body",
	Rule:    "json",
	Message: "Invalid JSON body",
}}}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Error: message})
}

func writeValidationError(w http.ResponseWriter, verr *validation.ValidationError) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Code:   CodeValidationError,
		Error:  verr.Error(),
		Issues: verr.Violations,
	})
}

func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, CodeInternalServerError, internalServerErrorMessage)
}

// observe records the outcome of a procedure call.
func observe(procedure, code string) {
	metrics.RPCProceduresTotal.WithLabelValues(procedure, code).Inc()
}
