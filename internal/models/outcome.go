package models

import (
	"errors"
	"time"
)

// OutcomeRecord is a persisted request outcome.
type OutcomeRecord struct {
	id         string
	sequence   int64
	requestID  string
	kind       string
	status     string
	errMessage string
	duration   time.Duration
	createdAt  time.Time
}

// NewOutcomeRecord creates a new outcome record.
func NewOutcomeRecord(id, requestID, kind, status string) *OutcomeRecord {
	return &OutcomeRecord{
		id:        id,
		requestID: requestID,
		kind:      kind,
		status:    status,
		createdAt: time.Now(),
	}
}

func (o *OutcomeRecord) ID() string                  { return o.id }
func (o *OutcomeRecord) Sequence() int64             { return o.sequence }
func (o *OutcomeRecord) RequestID() string           { return o.requestID }
func (o *OutcomeRecord) Kind() string                { return o.kind }
func (o *OutcomeRecord) Status() string              { return o.status }
func (o *OutcomeRecord) Error() string               { return o.errMessage }
func (o *OutcomeRecord) Duration() time.Duration     { return o.duration }
func (o *OutcomeRecord) CreatedAt() time.Time        { return o.createdAt }
func (o *OutcomeRecord) SetID(id string)             { o.id = id }
func (o *OutcomeRecord) SetSequence(seq int64)       { o.sequence = seq }
func (o *OutcomeRecord) SetError(msg string)         { o.errMessage = msg }
func (o *OutcomeRecord) SetDuration(d time.Duration) { o.duration = d }
func (o *OutcomeRecord) SetCreatedAt(t time.Time)    { o.createdAt = t }

// Succeeded reports whether the recorded request completed.
func (o *OutcomeRecord) Succeeded() bool { return o.status == "done" }

// Validate checks required fields.
func (o *OutcomeRecord) Validate() error {
	if o.requestID == "" {
		return errors.New("outcome request id is required")
	}
	if o.kind == "" {
		return errors.New("outcome kind is required")
	}
	if o.status == "" {
		return errors.New("outcome status is required")
	}
	return nil
}
