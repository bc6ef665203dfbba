package net

import (
	"net/http"

	perr "wordtrends/internal/platform/errors"
)

// Wire is the envelope shared by the HTTP API and the CLI's json output
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func ok(status int, data any, reqID string) (int, Wire) {
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) { return ok(http.StatusOK, data, reqID) }

// NoContent builds a 204 envelope
func NoContent(reqID string) (int, Wire) { return ok(http.StatusNoContent, nil, reqID) }

// Error builds an error envelope; nil err is a 200 with no data
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status, w := perr.HTTP(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Reason:     w.Code.String(),
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  reqID,
	}
}
