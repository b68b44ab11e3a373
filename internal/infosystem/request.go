package infosystem

import (
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/shared"
)

// Kind is the request kind. See the services.Kind* constants.
type Kind = services.Kind

// Request is a single resolve or send operation. It is consumed exactly once.
type Request struct {
	ID      string
	Kind    Kind
	Params  services.Params
	Payload []byte
}

// NewRequest creates a resolve request with a fresh correlation ID.
func NewRequest(kind Kind, params services.Params) Request {
	return Request{
		ID:     shared.GenerateID(),
		Kind:   kind,
		Params: params.Clone(),
	}
}

// NewSendRequest creates a send request carrying a pre-serialized JSON payload.
func NewSendRequest(kind Kind, payload []byte) Request {
	return Request{
		ID:      shared.GenerateID(),
		Kind:    kind,
		Payload: append([]byte(nil), payload...),
	}
}
