// Package barrett implements a fixed-modulus Barrett reducer: given a
// modulus m computed once, Remainder(x) replaces the repeated hardware
// division a general mod operation would need with a multiply against a
// precomputed reciprocal, valid only for 0 <= x < m^2 (§4.5). This is
// not a general modular-reduction API; callers outside that domain
// should use SignedInt.Mod instead.
package barrett

import (
	"context"

	"github.com/agbru/magia/internal/bigint"
	apperrors "github.com/agbru/magia/internal/errors"
	"github.com/agbru/magia/internal/magia"
	"github.com/agbru/magia/internal/metrics"
	"github.com/agbru/magia/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// Option configures optional instrumentation on a Reducer.
type Option func(*Reducer)

// WithTracer attaches an OpenTelemetry tracer; construction is wrapped
// in a span recording the modulus's bit length, and each Remainder call
// opens a span of its own.
func WithTracer(tr *telemetry.Tracer) Option {
	return func(r *Reducer) { r.tracer = tr }
}

// WithMetrics attaches a Prometheus collector; construction increments
// its Barrett-reducer counter and each Remainder call records the
// dividend's limb count.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Reducer) { r.metrics = c }
}

// Reducer is a Barrett reduction context for a single fixed modulus.
type Reducer struct {
	m   magia.Magia // the modulus
	mu  magia.Magia // floor(b^(2k) / m) with b = 2^32 and k the limb count of m
	k   int         // limb count of m (the reduction's working precision)
	ctx context.Context

	tracer  *telemetry.Tracer
	metrics *metrics.Collector
}

// New builds a Reducer for modulus m, computed once and reused across
// calls to Remainder. Precondition: m > 1 (§4.5, §7).
func New(m bigint.SignedInt, opts ...Option) (*Reducer, error) {
	return NewWithContext(context.Background(), m, opts...)
}

// NewWithContext is New with an explicit context, used to thread a
// tracing span through construction.
func NewWithContext(ctx context.Context, m bigint.SignedInt, opts ...Option) (*Reducer, error) {
	if m.Cmp(bigint.FromInt64(1)) <= 0 {
		return nil, apperrors.NewBarrettPreconditionError("modulus must be greater than one")
	}
	r := &Reducer{m: m.Magnitude().Clone()}
	for _, opt := range opts {
		opt(r)
	}

	k := len(r.m)
	if r.tracer != nil {
		var span trace.Span
		ctx, span = r.tracer.StartBarrettBuild(ctx, magia.BitLen(r.m))
		defer span.End()
	}

	// mu = floor(b^(2k) / m), the reciprocal at limb-base precision,
	// computed with a single Knuth-D division rather than iteratively.
	numerator := magia.WithSetBit(nil, 2*k*32)
	mu, _ := magia.DivMod(numerator, r.m)
	r.mu = mu
	r.k = k
	r.ctx = ctx
	r.metrics.ObserveBarrettBuild()
	return r, nil
}

// Remainder computes x mod m for 0 <= x < m^2 using the classical
// Barrett estimate q_hat = floor((x >> (k-1)) * mu >> (k+1)), followed
// by at most two correcting subtractions of m — the r = r1 - r2 formula
// (r1 = x mod b^(k+1), r2 = q_hat*m mod b^(k+1)) is the historically
// error-prone step; it is implemented directly here rather than
// approximated, since an off-by-one in the correction silently produces
// a remainder in [0, 3m) instead of [0, m).
func (r *Reducer) Remainder(x bigint.SignedInt) (bigint.SignedInt, error) {
	xAbs := x.Magnitude()
	if r.tracer != nil {
		var span trace.Span
		_, span = r.tracer.StartRemainder(r.ctx, magia.BitLen(xAbs))
		defer span.End()
	}
	r.metrics.ObserveOperationLimbs("barrett.remainder", len(xAbs))
	if x.Sign() < 0 {
		return bigint.Zero, apperrors.NewBarrettPreconditionError("x must be non-negative")
	}
	mSquared := magia.Mul(r.m, r.m)
	if magia.Cmp(xAbs, mSquared) >= 0 {
		return bigint.Zero, apperrors.NewBarrettPreconditionError("x must be less than m^2")
	}

	k := r.k
	qHat := estimateQuotient(xAbs, r.mu, k)

	r1 := truncateToLimbs(xAbs, k+1)
	r2 := truncateToLimbs(magia.Mul(qHat, r.m), k+1)

	var rem magia.Magia
	if magia.Cmp(r1, r2) >= 0 {
		rem = magia.Sub(r1, r2)
	} else {
		// r1 - r2 went negative modulo b^(k+1); add back one wraparound
		// unit before subtracting.
		wrap := magia.WithSetBit(nil, (k+1)*32)
		rem = magia.Sub(magia.Add(r1, wrap), r2)
	}

	for magia.Cmp(rem, r.m) >= 0 {
		rem = magia.Sub(rem, r.m)
	}
	return bigint.FromMagnitude(false, rem), nil
}

// estimateQuotient computes floor((x >> (32*(k-1))) * mu >> (32*(k+1))).
func estimateQuotient(x, mu magia.Magia, k int) magia.Magia {
	shifted := magia.ShiftRight(x, 32*(k-1))
	product := magia.Mul(shifted, mu)
	return magia.ShiftRight(product, 32*(k+1))
}

// truncateToLimbs returns x mod b^n, i.e. its low n limbs.
func truncateToLimbs(x magia.Magia, n int) magia.Magia {
	if len(x) <= n {
		return x.Clone()
	}
	return magia.Norm(x[:n].Clone())
}
