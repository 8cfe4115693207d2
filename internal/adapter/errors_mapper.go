package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-client/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.Body()),
		kind:       statusKind(resp.StatusCode()),
	}
}

func statusKind(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

// errorMessage pulls "message" out of a JSON error body. Anything else
// yields an empty string so callers fall back to their own text.
func errorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var envelope models.MessageResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	return strings.TrimSpace(envelope.Message)
}
