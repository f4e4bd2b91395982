package task

import (
	"context"
	"encoding/json"

	"github.com/harunnryd/gippity/internal/aifunc"
	gippityErrors "github.com/harunnryd/gippity/internal/errors"
	"github.com/harunnryd/gippity/internal/logger"
)

// Decode parses the whole of raw as JSON into T. There is no partial recovery.
func Decode[T any](raw string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero T
		return zero, gippityErrors.InvalidModelOutput(err, "failed to decode LLM response")
	}
	return out, nil
}

// RequestDecoded runs RequestTask and decodes the reply into T. Retry exhaustion
// and decode failure each end in the fatal handler, which is called at most once.
// The decode step is never retried.
func RequestDecoded[T any](ctx context.Context, r *Requester, msgContext, agent, operation string, fn aifunc.Function) T {
	ctx, _ = logger.EnsureTraceID(ctx)

	out, err := ExecuteDecoded[T](ctx, r, msgContext, agent, operation, fn)
	if err != nil {
		r.abort(ctx, err)
		var zero T
		return zero
	}
	return out
}

// ExecuteDecoded is RequestDecoded without the fatal gate.
func ExecuteDecoded[T any](ctx context.Context, r *Requester, msgContext, agent, operation string, fn aifunc.Function) (T, error) {
	raw, err := r.Execute(ctx, msgContext, agent, operation, fn)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](raw)
}
