package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/nicheapis/apisuite/pkg/errors"
	"github.com/nicheapis/apisuite/pkg/serializer"
)

// Error codes returned in the ErrorResponse envelope, shared with the
// suite-wide error contract in pkg/errors.
const (
	ErrCodeRateLimitExceeded = string(apierrors.ErrCodeRateLimitExceeded)
	ErrCodeInternalError     = string(apierrors.ErrCodeInternal)
	ErrCodeNotFound          = string(apierrors.ErrCodeNotFound)
	ErrCodeMethodNotAllowed  = string(apierrors.ErrCodeMethodNotAllowed)
)

// WriteError writes a structured error response, reusing the request ID
// from the request context when present.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}
