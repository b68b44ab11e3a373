package infosystem

import (
	"context"
	"errors"
	"time"

	"github.com/desertthunder/infosys/internal/shared"
)

// Status classifies how a request ended.
type Status string

const (
	StatusDone                Status = "done"
	StatusInvalidRequest      Status = "invalid_request"
	StatusIdentityUnavailable Status = "identity_unavailable"
	StatusAuthUnavailable     Status = "auth_unavailable"
	StatusTransportError      Status = "transport_error"
	StatusParseError          Status = "parse_error"
	StatusCanceled            Status = "canceled"
	StatusFailed              Status = "failed"
)

// Operation names.
const (
	OpResolve = "resolve"
	OpSend    = "send"
)

// Outcome is the structured result of one resolve or send call.
type Outcome struct {
	RequestID string
	Kind      Kind
	Op        string
	Status    Status
	Err       error
	Duration  time.Duration
}

// Done reports whether the request fully succeeded.
func (o Outcome) Done() bool { return o.Status == StatusDone }

// Classify maps an error returned by the pipeline onto a [Status].
func Classify(err error) Status {
	switch {
	case err == nil:
		return StatusDone
	case errors.Is(err, shared.ErrInvalidRequest), errors.Is(err, shared.ErrUnknownKind):
		return StatusInvalidRequest
	case errors.Is(err, shared.ErrIdentityUnavailable):
		return StatusIdentityUnavailable
	case errors.Is(err, shared.ErrAuthUnavailable):
		return StatusAuthUnavailable
	case errors.Is(err, shared.ErrParse):
		return StatusParseError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	case errors.Is(err, shared.ErrTransport):
		return StatusTransportError
	default:
		return StatusFailed
	}
}
