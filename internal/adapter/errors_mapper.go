package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-post-board/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrInvalidData,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	if target, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", target, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

// errorDetail extracts the message of a {"detail": "..."} body, falling
// back to the raw body.
func errorDetail(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Detail != "" {
		return er.Detail
	}
	return strings.TrimSpace(string(body))
}
