// Package search drives the generate → simplify → check loop until a network
// passes the quality limits or the attempt budget runs out.
//
// Each worker owns its RNG (seed + worker index) and the trees it builds, so
// nothing is shared between attempts except the budget counter and the
// outcome. With one worker the search is fully deterministic for a seed.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rlcnet/builder"
	"github.com/katalvlaran/rlcnet/network"
	"github.com/katalvlaran/rlcnet/quality"
	"github.com/katalvlaran/rlcnet/simplify"
)

// DefaultMaxAttempts is the budget used when Request.MaxAttempts is 0.
const DefaultMaxAttempts = 10000

var (
	// ErrBudgetExhausted means no attempt passed the limits. The bounds are
	// most likely unsatisfiable for the requested parts.
	ErrBudgetExhausted = errors.New("search: attempt budget exhausted")

	// ErrInvalidRequest reports a request that cannot start a search.
	ErrInvalidRequest = errors.New("search: invalid request")

	errFound = errors.New("search: found")
)

// Request describes one search.
type Request struct {
	Parts  builder.Parts
	Limits quality.Limits

	// MinValue and MaxValue bound nominal values, [MinValue, MaxValue).
	// Both zero selects the builder defaults.
	MinValue, MaxValue int

	// MaxAttempts caps the attempts over all workers; 0 means DefaultMaxAttempts.
	MaxAttempts int
	// Workers is the number of concurrent attempts; values below 1 mean 1.
	Workers int
	// Seed is the base seed; worker i uses Seed+i.
	Seed int64
}

// Result is an accepted network.
type Result struct {
	Network  *network.Network
	Attempts int
	Metrics  quality.Metrics
}

// Option configures a search.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("search: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

func (r Request) validate() error {
	if r.MaxAttempts < 0 {
		return fmt.Errorf("Find: max attempts %d < 0: %w", r.MaxAttempts, ErrInvalidRequest)
	}
	if r.MinValue < 0 || r.MaxValue < r.MinValue {
		return fmt.Errorf("Find: value range [%d,%d): %w", r.MinValue, r.MaxValue, ErrInvalidRequest)
	}
	if r.Limits.MaxComponentsPerCircuit < 1 || r.Limits.MaxUselessResistors < 0 {
		return fmt.Errorf("Find: limits %+v: %w", r.Limits, ErrInvalidRequest)
	}

	return nil
}

// Find runs attempts until one network passes req.Limits.
// Context cancellation is checked between attempts.
//
// Errors:
//   - ErrInvalidRequest for a malformed request.
//   - builder errors (e.g. builder.ErrTooFewParts), wrapped.
//   - ErrBudgetExhausted with the attempt count and last rejection.
//   - ctx.Err() when cancelled first.
func Find(ctx context.Context, req Request, opts ...Option) (*Result, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	budget := req.MaxAttempts
	if budget == 0 {
		budget = DefaultMaxAttempts
	}
	workers := req.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > budget {
		workers = budget
	}

	s := &state{req: req, budget: int64(budget), log: o.logger}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			return s.work(gctx, w)
		})
	}
	err := g.Wait()

	switch {
	case errors.Is(err, errFound):
		s.log.Info("network accepted",
			slog.Int("attempts", s.result.Attempts),
			slog.String("shape", s.result.Network.String()),
			slog.String("metrics", s.result.Metrics.String()))
		return s.result, nil
	case err != nil:
		return nil, err
	case ctx.Err() != nil:
		return nil, ctx.Err()
	}

	return nil, fmt.Errorf("Find: %d attempts, last rejection: %v: %w", budget, s.lastReject(), ErrBudgetExhausted)
}

// state is shared by the workers of one Find call.
type state struct {
	req    Request
	budget int64
	log    *slog.Logger

	next atomic.Int64

	mu     sync.Mutex
	result *Result
	reject error
}

func (s *state) work(ctx context.Context, worker int) error {
	bopts := []builder.BuilderOption{
		builder.WithRand(rand.New(rand.NewSource(s.req.Seed + int64(worker)))),
		builder.WithMaxGroup(s.req.Limits.MaxComponentsPerCircuit),
	}
	if s.req.MinValue != 0 || s.req.MaxValue != 0 {
		bopts = append(bopts, builder.WithValueRange(s.req.MinValue, s.req.MaxValue))
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		attempt := s.next.Add(1)
		if attempt > s.budget {
			return nil
		}

		n, err := builder.Generate(s.req.Parts, bopts...)
		if err != nil {
			return fmt.Errorf("Find: %w", err)
		}
		n = simplify.Simplify(n)

		m, err := quality.CheckMetrics(quality.Measure(n), s.req.Limits)
		if err != nil {
			s.log.Debug("network rejected",
				slog.Int64("attempt", attempt),
				slog.Int("worker", worker),
				slog.String("reason", err.Error()))
			s.mu.Lock()
			s.reject = err
			s.mu.Unlock()
			continue
		}

		s.mu.Lock()
		if s.result == nil {
			s.result = &Result{Network: n, Attempts: int(attempt), Metrics: m}
		}
		s.mu.Unlock()
		return errFound
	}
}

func (s *state) lastReject() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reject
}
