package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/threadboard/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Otherwise it maps the status to
// a sentinel error, using the FAILED reason from the body when there is one.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reason := failureReason(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, reason)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, reason)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, reason)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, reason)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, reason)
	default:
		if reason == "" {
			reason = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), reason)
	}
}

func failureReason(body []byte) string {
	var status models.StatusResponse
	if err := json.Unmarshal(body, &status); err == nil && status.Status == models.StatusFailed {
		return status.Reason
	}
	return strings.TrimSpace(string(body))
}
