package infosystem

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/infosys/internal/metrics"
	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/shared"
	"github.com/desertthunder/infosys/internal/tasks"
)

// Transport performs blocking HTTP calls and returns the response body.
type Transport interface {
	Get(ctx context.Context, url string) ([]byte, error)
	Post(ctx context.Context, url string, header http.Header, body []byte) ([]byte, error)
}

// Executor runs submitted tasks in the background.
type Executor interface {
	Submit(priority tasks.Priority, t tasks.Task) error
}

// Sink receives the ids of completed requests. It is called exactly once per
// request, with an empty slice when the request failed.
type Sink interface {
	ReportCompleted(ids []string)
}

// OutcomeRecorder receives a structured outcome for every finished request.
type OutcomeRecorder interface {
	RecordOutcome(o Outcome)
}

// TokenProvider returns a valid access token or an error.
type TokenProvider interface {
	EnsureAccessToken(ctx context.Context) (string, error)
}

// AccountStore reads and writes per-account string fields.
type AccountStore interface {
	GetAccountField(key string) (string, error)
	SetAccountField(key, value string) error
}

// Options configures an [Engine]. Transport, Executor and Sink are required.
type Options struct {
	BaseURL   string
	Transport Transport
	Executor  Executor
	Sink      Sink
	Accounts  AccountStore
	Tokens    TokenProvider
	Identity  IdentityStore
	Recorder  OutcomeRecorder
	Logger    *log.Logger
}

// Engine resolves metadata requests against the Hatchet API and sends user activity back to it.
//
// Every call returns once its work is queued. Results arrive through the [Sink],
// fill targets registered with [Engine.ResolveInto], and [Engine.TakeResponse].
type Engine struct {
	baseURL   string
	transport Transport
	executor  Executor
	sink      Sink
	accounts  AccountStore
	tokens    TokenProvider
	identity  IdentityStore
	recorder  OutcomeRecorder
	logger    *log.Logger

	targets   *Store[models.FillTarget]
	responses *Store[*Response]
}

// NewEngine creates an Engine from opts.
func NewEngine(opts Options) (*Engine, error) {
	switch {
	case opts.Transport == nil:
		return nil, fmt.Errorf("%w: transport", shared.ErrMissingArgument)
	case opts.Executor == nil:
		return nil, fmt.Errorf("%w: executor", shared.ErrMissingArgument)
	case opts.Sink == nil:
		return nil, fmt.Errorf("%w: sink", shared.ErrMissingArgument)
	}

	if opts.Identity == nil {
		opts.Identity = NewIdentityCache()
	}
	if opts.Logger == nil {
		opts.Logger = shared.DiscardLogger()
	}

	return &Engine{
		baseURL:   opts.BaseURL,
		transport: opts.Transport,
		executor:  opts.Executor,
		sink:      opts.Sink,
		accounts:  opts.Accounts,
		tokens:    opts.Tokens,
		identity:  opts.Identity,
		recorder:  opts.Recorder,
		logger:    shared.WithLogger(opts.Logger, "component", "infosystem"),
		targets:   NewStore[models.FillTarget](),
		responses: NewStore[*Response](),
	}, nil
}

// Identity returns the engine's identity store.
func (e *Engine) Identity() IdentityStore { return e.identity }

// Resolve queues a resolve request. On success the response is held until
// [Engine.TakeResponse] collects it.
func (e *Engine) Resolve(req Request) error {
	return e.submit(req, OpResolve, e.priority(req.Kind), e.runResolve)
}

// ResolveInto queues a resolve request whose result is merged into target.
// The target is released when the request finishes, whether or not it succeeded,
// and the response is not retained: the filled target is the result.
func (e *Engine) ResolveInto(req Request, target models.FillTarget) error {
	if target == nil {
		return fmt.Errorf("%w: fill target", shared.ErrMissingArgument)
	}
	e.targets.Put(req.ID, target)
	if err := e.Resolve(req); err != nil {
		e.targets.Take(req.ID)
		return err
	}
	return nil
}

// Send queues a send request. The payload is posted only when an access token is available.
func (e *Engine) Send(req Request) error {
	return e.submit(req, OpSend, tasks.PriorityLow, e.runSend)
}

// TakeResponse removes and returns the completed response for id.
func (e *Engine) TakeResponse(id string) (*Response, bool) {
	return e.responses.Take(id)
}

// PendingTargets returns the number of fill targets still waiting on a request.
func (e *Engine) PendingTargets() int { return e.targets.Len() }

func (e *Engine) priority(kind Kind) tasks.Priority {
	if spec, ok := lookupKind(kind); ok {
		return spec.priority
	}
	return tasks.PriorityLow
}

func (e *Engine) submit(req Request, op string, priority tasks.Priority, run func(context.Context, Request) error) error {
	start := time.Now()
	err := e.executor.Submit(priority, func(ctx context.Context) {
		e.finish(req, op, start, e.guard(ctx, req, run))
	})
	if err != nil {
		e.finish(req, op, start, err)
		return err
	}
	return nil
}

// guard turns a panic in run into an error so the request is still reported
// and its fill target released.
func (e *Engine) guard(ctx context.Context, req Request, run func(context.Context, Request) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.targets.Take(req.ID)
			err = fmt.Errorf("%s panicked: %v", req.Kind, r)
		}
	}()
	return run(ctx, req)
}

func (e *Engine) runResolve(ctx context.Context, req Request) error {
	resp, err := e.resolve(ctx, req)
	target, hasTarget := e.targets.Take(req.ID)
	if err != nil {
		return err
	}

	if hasTarget {
		e.fill(req, target, resp)
		return nil
	}
	e.responses.Put(req.ID, resp)
	return nil
}

func (e *Engine) resolve(ctx context.Context, req Request) (*Response, error) {
	spec, ok := lookupKind(req.Kind)
	if !ok || spec.fetch == nil {
		return nil, fmt.Errorf("%w: %s is not a resolve kind", shared.ErrInvalidRequest, req.Kind)
	}

	self, err := e.resolveIdentity(ctx)
	if err != nil {
		e.logger.Warn("user identity lookup failed", "request_id", req.ID, "error", err)
	}
	if spec.identity && self == "" {
		return nil, fmt.Errorf("%w: %s needs the signed-in user", shared.ErrIdentityUnavailable, req.Kind)
	}

	c := &call{
		ctx:       ctx,
		req:       req,
		self:      self,
		baseURL:   e.baseURL,
		transport: e.transport,
		logger:    shared.WithLogger(e.logger, "request_id", req.ID),
	}
	resp, err := spec.fetch(c)
	if err != nil {
		return nil, err
	}

	resp.RequestID = req.ID
	resp.Kind = req.Kind
	if spec.convert != nil {
		spec.convert(resp)
	}
	return resp, nil
}

func (e *Engine) fill(req Request, target models.FillTarget, resp *Response) {
	spec, _ := lookupKind(req.Kind)
	if spec.fill == nil {
		e.logger.Debug("kind has no fill step", "request_id", req.ID, "kind", req.Kind)
		return
	}
	if err := spec.fill(req.Kind, target, resp); err != nil {
		e.logger.Warn("skipped fill", "request_id", req.ID, "error", err)
	}
}

func (e *Engine) runSend(ctx context.Context, req Request) error {
	spec, ok := lookupKind(req.Kind)
	if !ok || !spec.send {
		return fmt.Errorf("%w: %s is not a send kind", shared.ErrInvalidRequest, req.Kind)
	}
	if e.tokens == nil {
		return fmt.Errorf("%w: no token provider", shared.ErrAuthUnavailable)
	}

	token, err := e.tokens.EnsureAccessToken(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrAuthUnavailable) {
			err = fmt.Errorf("%w: %w", shared.ErrAuthUnavailable, err)
		}
		return err
	}

	url, err := services.BuildQuery(e.baseURL, req.Kind, nil)
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Set("Authorization", token)
	if _, err := e.transport.Post(ctx, url, header, req.Payload); err != nil {
		return fmt.Errorf("POST %s: %w", url, err)
	}
	return nil
}

// finish logs and reports a finished request.
func (e *Engine) finish(req Request, op string, start time.Time, err error) {
	elapsed := time.Since(start)
	status := Classify(err)
	l := shared.WithLogger(e.logger, "request_id", req.ID, "kind", req.Kind, "op", op)

	switch status {
	case StatusDone:
		l.Debug("request finished", "elapsed", elapsed)
	case StatusInvalidRequest:
		l.Error("request rejected", "error", err)
	default:
		l.Warn("request failed", "status", status, "error", err)
	}

	metrics.RecordRequest(op, req.Kind.String(), string(status), elapsed)
	if e.recorder != nil {
		e.recorder.RecordOutcome(Outcome{
			RequestID: req.ID,
			Kind:      req.Kind,
			Op:        op,
			Status:    status,
			Err:       err,
			Duration:  elapsed,
		})
	}

	ids := []string{}
	if status == StatusDone {
		ids = append(ids, req.ID)
	}
	e.sink.ReportCompleted(ids)
}
