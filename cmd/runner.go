package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"

	"github.com/desertthunder/infosys/internal/infosystem"
	"github.com/desertthunder/infosys/internal/repositories"
	"github.com/desertthunder/infosys/internal/services"
	"github.com/desertthunder/infosys/internal/shared"
	"github.com/desertthunder/infosys/internal/tasks"
)

// tokenEnv seeds the token store when set.
const tokenEnv = "INFOSYS_ACCESS_TOKEN"

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Config.Hatchet.Timeout()}
	}

	return &Runner{
		config:     opts.Config,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, resolveCommand, sendCommand, outcomesCommand, statsCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// session wires the engine to the local database for a single command.
type session struct {
	db       *sql.DB
	pool     *tasks.Pool
	engine   *infosystem.Engine
	sink     *completionSink
	outcomes *outcomeTap
	accounts *repositories.AccountRepository
	tokens   *repositories.TokenRepository
	history  *repositories.OutcomeRepository
}

// openDB opens the configured database with migrations applied.
func (r *Runner) openDB() (*sql.DB, error) {
	db, err := shared.OpenMigrated(r.config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// open builds a ready engine. The caller must Close the session.
func (r *Runner) open(ctx context.Context) (*session, error) {
	db, err := r.openDB()
	if err != nil {
		return nil, err
	}

	s := &session{
		db:       db,
		sink:     newCompletionSink(),
		accounts: repositories.NewAccountRepository(db),
		tokens:   repositories.NewTokenRepository(db),
		history:  repositories.NewOutcomeRepository(db),
	}
	s.outcomes = &outcomeTap{next: repositories.NewOutcomeRecorderAdapter(s.history, r.logger)}

	if err := r.seed(s); err != nil {
		db.Close()
		return nil, err
	}

	client := services.NewClient(r.config.Hatchet,
		services.WithHTTPClient(r.httpClient),
		services.WithClientLogger(r.logger),
	)
	s.pool = tasks.NewPool(ctx, tasks.PoolOpts{
		Workers:   r.config.Engine.Workers,
		QueueSize: r.config.Engine.QueueSize,
		Logger:    r.logger,
	})

	s.engine, err = infosystem.NewEngine(infosystem.Options{
		BaseURL:   client.BaseURL(),
		Transport: client,
		Executor:  s.pool,
		Sink:      s.sink,
		Accounts:  s.accounts,
		Tokens:    services.NewOAuthTokenProvider(s.tokens, r.logger),
		Recorder:  s.outcomes,
		Logger:    r.logger,
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// seed copies the configured user name and the token from the environment into the database.
func (r *Runner) seed(s *session) error {
	if name := r.config.Account.Username; name != "" {
		current, err := s.accounts.GetAccountField(infosystem.AccountFieldUserName)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if current != name {
			if err := s.accounts.SetAccountField(infosystem.AccountFieldUserName, name); err != nil {
				return err
			}
			if err := s.accounts.DeleteAccountField(infosystem.AccountFieldUserID); err != nil {
				return err
			}
		}
	}

	if token := os.Getenv(tokenEnv); token != "" {
		if err := s.tokens.SaveToken(services.TokenProviderName, &oauth2.Token{AccessToken: token}); err != nil {
			return err
		}
		r.logger.Debug("seeded access token from environment", "env", tokenEnv)
	}
	return nil
}

// Close stops the pool and closes the database.
func (s *session) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
	s.db.Close()
}

// await waits for the completion report of a single submitted request.
func (s *session) await(ctx context.Context, req infosystem.Request, timeout time.Duration) (infosystem.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case <-s.sink.ch:
	case <-ctx.Done():
		return infosystem.Outcome{}, fmt.Errorf("%w: waiting for %s: %v", shared.ErrServiceUnavailable, req.Kind, ctx.Err())
	}

	o, ok := s.outcomes.get(req.ID)
	if !ok {
		return infosystem.Outcome{}, fmt.Errorf("no outcome recorded for request %s", req.ID)
	}
	if !o.Done() {
		return o, fmt.Errorf("%s %s: %s: %w", o.Op, o.Kind, o.Status, o.Err)
	}
	return o, nil
}

// completionSink forwards completion reports to a channel.
type completionSink struct {
	ch chan []string
}

func newCompletionSink() *completionSink {
	return &completionSink{ch: make(chan []string, 16)}
}

func (s *completionSink) ReportCompleted(ids []string) { s.ch <- ids }

// outcomeTap remembers outcomes by request id before handing them to the outcome log.
type outcomeTap struct {
	mu   sync.Mutex
	seen map[string]infosystem.Outcome
	next infosystem.OutcomeRecorder
}

func (t *outcomeTap) RecordOutcome(o infosystem.Outcome) {
	t.mu.Lock()
	if t.seen == nil {
		t.seen = make(map[string]infosystem.Outcome)
	}
	t.seen[o.RequestID] = o
	t.mu.Unlock()

	if t.next != nil {
		t.next.RecordOutcome(o)
	}
}

func (t *outcomeTap) get(id string) (infosystem.Outcome, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	o, ok := t.seen[id]
	return o, ok
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
