package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/MKhiriev/go-rest-kit/models"
	"github.com/go-resty/resty/v2"
)

// envelope mirrors models.Envelope with the payload left undecoded.
type envelope struct {
	Status int             `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

// unwrap decodes the envelope of resp. A failure envelope becomes a fault;
// otherwise the payload is returned for the caller to decode.
func unwrap(resp *resty.Response) (json.RawMessage, error) {
	status := resp.StatusCode()
	body := bytes.TrimSpace(resp.Body())

	if len(body) == 0 {
		if isSuccess(status) {
			return nil, nil
		}
		return nil, statusFault(status, "")
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if !isSuccess(status) {
			return nil, statusFault(status, strings.TrimSpace(string(body)))
		}
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}

	if env.Status != 0 {
		return nil, envelopeFault(env)
	}
	if !isSuccess(status) {
		return nil, statusFault(status, env.Error)
	}
	return env.Data, nil
}

// decode unwraps resp into out. A null or absent payload leaves out as is.
func decode(resp *resty.Response, out any) error {
	data, err := unwrap(resp)
	if err != nil {
		return err
	}
	if out == nil || isNull(data) {
		return nil
	}
	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

// statusFault keeps the exact status even when no kind matches it.
func statusFault(status int, message string) *fault.Fault {
	if message == "" {
		message = http.StatusText(status)
	}
	f := fault.New(fault.KindOf(status), message)
	f.Status = status
	return f
}

func envelopeFault(env envelope) *fault.Fault {
	f := statusFault(env.Status, env.Error)

	if env.Status == http.StatusUnprocessableEntity {
		var fields []models.FieldError
		if err := json.Unmarshal(env.Data, &fields); err == nil {
			f.Fields = fields
		}
	}
	return f
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func isNull(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}
