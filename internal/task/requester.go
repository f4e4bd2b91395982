package task

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/harunnryd/gippity/internal/aifunc"
	"github.com/harunnryd/gippity/internal/console"
	gippityErrors "github.com/harunnryd/gippity/internal/errors"
	"github.com/harunnryd/gippity/internal/llm/contract"
	"github.com/harunnryd/gippity/internal/logger"
	"github.com/harunnryd/gippity/internal/prompt"

	"github.com/cenkalti/backoff/v4"
)

// MaxRetries is the number of additional attempts after a failed LLM call.
const MaxRetries = 1

type LLM interface {
	Call(ctx context.Context, messages []contract.Message) (string, error)
}

type Reporter interface {
	PrintAgentMessage(category console.Category, agent, statement string)
}

// FatalHandler receives the error that ends a task. The default exits the process.
type FatalHandler func(err error)

type Requester struct {
	llm      LLM
	reporter Reporter
	fatal    FatalHandler
}

type Option func(*Requester)

func WithReporter(reporter Reporter) Option {
	return func(r *Requester) {
		if reporter != nil {
			r.reporter = reporter
		}
	}
}

func WithFatalHandler(handler FatalHandler) Option {
	return func(r *Requester) {
		if handler != nil {
			r.fatal = handler
		}
	}
}

func NewRequester(llm LLM, opts ...Option) *Requester {
	r := &Requester{
		llm:      llm,
		reporter: console.NewPrinter(os.Stdout),
		fatal:    ExitOnFatal,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ExitOnFatal logs err and terminates the process with status 1.
func ExitOnFatal(err error) {
	slog.Error("Task failed", "category", gippityErrors.Category(err), "error", err)
	os.Exit(1)
}

// RequestTask asks the LLM to act as fn applied to msgContext and returns its raw reply.
// A second consecutive failure is handed to the fatal handler; if the handler
// returns, RequestTask returns "".
func (r *Requester) RequestTask(ctx context.Context, msgContext, agent, operation string, fn aifunc.Function) string {
	ctx, _ = logger.EnsureTraceID(ctx)

	content, err := r.Execute(ctx, msgContext, agent, operation, fn)
	if err != nil {
		r.abort(ctx, err)
		return ""
	}
	return content
}

// Execute is RequestTask without the fatal gate.
func (r *Requester) Execute(ctx context.Context, msgContext, agent, operation string, fn aifunc.Function) (string, error) {
	ctx, traceID := logger.EnsureTraceID(ctx)

	messages := []contract.Message{prompt.Extend(fn, msgContext)}

	r.reporter.PrintAgentMessage(console.AICall, agent, operation)

	attempt := 0
	policy := backoff.WithContext(backoff.WithMaxRetries(&backoff.ZeroBackOff{}, MaxRetries), ctx)

	content, err := backoff.RetryNotifyWithData(func() (string, error) {
		attempt++
		return r.llm.Call(ctx, messages)
	}, policy, func(err error, _ time.Duration) {
		slog.Warn("LLM call failed, retrying",
			"agent", agent,
			"operation", operation,
			"attempt", attempt,
			"category", gippityErrors.Category(err),
			"error", err,
			"trace_id", traceID)
	})
	if err != nil {
		return "", fmt.Errorf("%s: %s after %d attempt(s): %w: %w", agent, operation, attempt, gippityErrors.ErrRetryExhausted, err)
	}

	slog.Debug("LLM task completed", "agent", agent, "operation", operation, "attempts", attempt, "trace_id", traceID)
	return content, nil
}

func (r *Requester) abort(ctx context.Context, err error) {
	slog.Error("Aborting task",
		"category", gippityErrors.Category(err),
		"error", err,
		"trace_id", logger.GetTraceID(ctx))
	r.fatal(err)
}
