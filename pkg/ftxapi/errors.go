package ftxapi

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrAPIKeyRequired    = errors.New("api key is required")
	ErrAPISecretRequired = errors.New("api secret is required")
)

// APIError is a failure reported by the exchange inside the response
// envelope, e.g. "Invalid parameter" or "Not enough balances".
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError is returned when the response body is not the expected JSON
// envelope, usually a gateway error page or a rate limit reply.
type TransportError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *TransportError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256]
	}

	return fmt.Sprintf("unexpected response status %s: %s", e.Status, body)
}
