package reputation

import (
	"context"
	"errors"
	"log/slog"
)

// Lookuper is the lookup capability the resolver depends on. *Client
// satisfies it; tests substitute their own.
type Lookuper interface {
	Lookup(ctx context.Context, hash string) (Result, error)
}

// Resolver maps a content hash to a verdict with fail-soft semantics:
// any lookup failure resolves to VerdictUnknown instead of an error, so a
// broken or rate-limited endpoint degrades verdict quality but never aborts
// a file or the scan.
type Resolver struct {
	lookuper Lookuper
	logger   *slog.Logger
}

// NewResolver creates a resolver over the given lookup capability.
func NewResolver(lookuper Lookuper, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		lookuper: lookuper,
		logger:   logger.With("component", "reputation.resolver"),
	}
}

// Resolve returns the verdict for a content hash. It never returns an
// error: lookup failures and unknown hashes both resolve to VerdictUnknown.
func (r *Resolver) Resolve(ctx context.Context, hash string) Result {
	result, err := r.lookuper.Lookup(ctx, hash)
	if err == nil {
		return result
	}

	if errors.Is(err, ErrHashNotFound) {
		r.logger.Debug("hash not found in reputation service", "hash", hash)
	} else {
		r.logger.Warn("reputation lookup failed, resolving to unknown",
			"hash", hash,
			"error", err,
		)
	}

	return Result{Verdict: VerdictUnknown}
}
