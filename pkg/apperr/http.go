package apperr

import (
	"errors"
	"net/http"
)

// Status maps err to the HTTP status a controller should answer with.
func Status(err error) int {
	switch KindOf(err) {
	case KindInvalid:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Body is the JSON error payload. Internal causes are never exposed.
func Body(err error) map[string]any {
	var ae *Error
	if !errors.As(err, &ae) || ae.Kind == KindInternal {
		return map[string]any{"error": internalMessage}
	}
	out := map[string]any{"error": ae.Message}
	if len(ae.Fields) > 0 {
		out["fields"] = ae.Fields
	}
	return out
}
