package infosystem

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/desertthunder/infosys/internal/shared"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{name: "nil", err: nil, want: StatusDone},
		{name: "invalid request", err: fmt.Errorf("%w: no id", shared.ErrInvalidRequest), want: StatusInvalidRequest},
		{name: "unknown kind", err: shared.ErrUnknownKind, want: StatusInvalidRequest},
		{name: "identity", err: shared.ErrIdentityUnavailable, want: StatusIdentityUnavailable},
		{name: "auth", err: fmt.Errorf("%w: %w", shared.ErrAuthUnavailable, shared.ErrTokenExpired), want: StatusAuthUnavailable},
		{name: "parse", err: fmt.Errorf("GET x: %w", shared.ErrParse), want: StatusParseError},
		{name: "transport", err: fmt.Errorf("%w: %w", shared.ErrTransport, shared.ErrAPIRequest), want: StatusTransportError},
		{name: "canceled", err: fmt.Errorf("%w: %w", shared.ErrTransport, context.Canceled), want: StatusCanceled},
		{name: "other", err: errors.New("boom"), want: StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOutcome_Done(t *testing.T) {
	if !(Outcome{Status: StatusDone}).Done() {
		t.Error("done outcome should report Done")
	}
	if (Outcome{Status: StatusTransportError}).Done() {
		t.Error("failed outcome should not report Done")
	}
}
