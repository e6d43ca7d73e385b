// Package accumulator implements a mutable arbitrary-precision integer
// optimized for streaming aggregation: repeated add/subtract/multiply
// against a single value without allocating a fresh SignedInt per step.
// The design mirrors the teacher's bump-pointer calculation arena — reuse
// the existing backing array whenever it's large enough, grow in
// rounded-up chunks when it isn't, and never shrink even after the value
// collapses back toward zero.
package accumulator

import (
	"context"

	"github.com/agbru/magia/internal/bigint"
	"github.com/agbru/magia/internal/logging"
	"github.com/agbru/magia/internal/magia"
	"github.com/agbru/magia/internal/metrics"
	"github.com/agbru/magia/internal/sign"
	"github.com/agbru/magia/internal/telemetry"
)

// growRoundTo is the limb-count granularity the accumulator's backing
// array is rounded up to on reallocation, keeping the number of
// reallocations logarithmic in the value's eventual size without
// over-allocating small accumulators by much.
const growRoundTo = 4

// Option configures optional instrumentation on an Accumulator.
type Option func(*Accumulator)

// WithLogger attaches a structured logger; growth events are logged at
// debug level.
func WithLogger(l logging.Logger) Option {
	return func(a *Accumulator) { a.logger = l }
}

// WithMetrics attaches a Prometheus collector; growth events are
// recorded as buffer_growths_total/buffer_grow_bytes observations.
func WithMetrics(c *metrics.Collector) Option {
	return func(a *Accumulator) { a.metrics = c }
}

// WithTracer attaches an OpenTelemetry tracer; each buffer reallocation
// is wrapped in a span recording the old and new limb counts.
func WithTracer(tr *telemetry.Tracer) Option {
	return func(a *Accumulator) { a.tracer = tr }
}

// Accumulator holds a mutable sign-magnitude value. It is not safe for
// concurrent use; callers needing concurrent aggregation should shard
// across multiple Accumulators and combine the results (§5, no locking
// is attempted internally).
type Accumulator struct {
	neg sign.Mask
	buf magia.Magia // len(buf) is the active length; cap(buf) never shrinks

	// scratch backs MulInPlace's multi-limb path and AddSquareOf, so
	// repeated multiplications and squarings don't allocate once their
	// working size has been reached once.
	scratch magia.Magia

	logger  logging.Logger
	metrics *metrics.Collector
	tracer  *telemetry.Tracer
}

// New returns a zero-valued Accumulator with the given options applied.
func New(opts ...Option) *Accumulator {
	a := &Accumulator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetZero resets the accumulator to zero without releasing its backing
// buffer.
func (a *Accumulator) SetZero() {
	a.neg = sign.NonNegative
	a.buf = a.buf[:0]
}

// Set copies v's value into the accumulator, reusing the backing buffer
// when it already has enough capacity.
func (a *Accumulator) Set(v bigint.SignedInt) {
	abs := v.Magnitude()
	a.ensureLen(len(abs))
	copy(a.buf, abs)
	a.buf = magia.Norm(a.buf)
	if v.Sign() < 0 {
		a.neg = sign.Negative
	} else {
		a.neg = sign.NonNegative
	}
}

// ToSignedInt returns the accumulator's current value as an immutable
// SignedInt, sharing no state with the accumulator's backing buffer.
func (a *Accumulator) ToSignedInt() bigint.SignedInt {
	return bigint.FromMagnitude(a.neg.IsNegative(), magia.Norm(a.buf).Clone())
}

// grow ensures the backing buffer has capacity for at least n limbs,
// logging/instrumenting only the reallocating path. It leaves the
// active length (len(a.buf)) unchanged when no reallocation is needed;
// callers that need the active length extended use ensureLen instead.
func (a *Accumulator) grow(n int) {
	if n <= cap(a.buf) {
		return
	}
	oldCap := cap(a.buf)
	a.buf = magia.GrowRounded(a.buf, n, growRoundTo)
	newCap := cap(a.buf)
	if a.tracer != nil {
		_, span := a.tracer.StartAccumulatorGrow(context.Background(), oldCap, newCap)
		span.End()
	}
	if a.logger != nil {
		a.logger.Debug("accumulator buffer grown",
			logging.Int("old_limbs", oldCap),
			logging.Int("new_limbs", newCap))
	}
	if a.metrics != nil {
		a.metrics.ObserveBufferGrowth(newCap * 4)
	}
}

// ensureLen grows the backing buffer if necessary and sets its active
// length to exactly n, zero-filling any newly exposed limbs. This is
// the primitive every in-place mutator uses instead of allocating a
// fresh buffer, since Grow's own zero-fill only runs on the
// reallocating path — a buffer whose capacity was already sufficient
// still needs its exposed region cleared of whatever value previously
// lived there.
func (a *Accumulator) ensureLen(n int) {
	old := len(a.buf)
	a.grow(n)
	a.buf = a.buf[:n]
	for i := old; i < n; i++ {
		a.buf[i] = 0
	}
}

// mutateAdd implements the accumulator's in-place +=/-= dispatch
// (§4.3): adopt the operand when self is zero, add magnitudes when
// signs agree, or subtract the smaller magnitude from the larger and
// take the larger's sign when they disagree.
func (a *Accumulator) mutateAdd(opSign sign.Mask, opAbs magia.Magia) {
	if len(a.buf) == 0 {
		a.ensureLen(len(opAbs))
		copy(a.buf, opAbs)
		a.buf = magia.Norm(a.buf)
		a.neg = opSign
		return
	}

	if a.neg == opSign {
		n := len(a.buf)
		if len(opAbs) > n {
			n = len(opAbs)
		}
		a.ensureLen(n + 1)
		carry := magia.MutateAdd(a.buf[:n], opAbs)
		a.buf[n] = carry
		a.buf = magia.Norm(a.buf)
		return
	}

	if magia.Cmp(a.buf, opAbs) >= 0 {
		magia.MutateSub(a.buf, opAbs)
		a.buf = magia.Norm(a.buf)
		if len(a.buf) == 0 {
			a.neg = sign.NonNegative
		}
		return
	}

	// Self's magnitude is smaller: zero-pad up to the operand's length
	// and subtract self out of the operand in place.
	a.ensureLen(len(opAbs))
	magia.MutateReverseSub(a.buf, opAbs)
	a.buf = magia.Norm(a.buf)
	a.neg = opSign
}

// AddInPlace adds v to the accumulator's current value.
func (a *Accumulator) AddInPlace(v bigint.SignedInt) {
	a.mutateAdd(sign.Of(v.Sign() < 0), v.Magnitude())
}

// SubInPlace subtracts v from the accumulator's current value.
func (a *Accumulator) SubInPlace(v bigint.SignedInt) {
	a.AddInPlace(v.Neg())
}

// MulInPlace multiplies the accumulator's current value by v in place.
// A single-limb multiplier is folded through the buffer directly;
// anything wider is multiplied into the scratch buffer and swapped in,
// so no per-call allocation survives past the first time a given size
// is reached.
func (a *Accumulator) MulInPlace(v bigint.SignedInt) {
	if len(a.buf) == 0 {
		return
	}
	if v.IsZero() {
		a.SetZero()
		return
	}
	vAbs := v.Magnitude()
	a.neg = a.neg.Xor(sign.Of(v.Sign() < 0))

	if len(vAbs) == 1 {
		n := len(a.buf)
		a.ensureLen(n + 1)
		carry := magia.MutateMulScalar(a.buf[:n], vAbs[0])
		a.buf[n] = carry
		a.buf = magia.Norm(a.buf)
		return
	}

	total := len(a.buf) + len(vAbs)
	a.scratch = magia.GrowRounded(a.scratch, total, growRoundTo)
	n := magia.MulInto(a.scratch[:total], a.buf, vAbs)
	a.buf, a.scratch = a.scratch[:n], a.buf
}

// AddSquareOf adds v*v to the accumulator, squaring v into the scratch
// buffer first rather than materializing v.Mul(v) through the generic
// multiply path (§4.3's dedicated squaring dispatch). v is always an
// independent SignedInt snapshot (ToSignedInt clones its buffer), so
// there is no backing-array aliasing between v and the accumulator to
// guard against here.
func (a *Accumulator) AddSquareOf(v bigint.SignedInt) {
	vAbs := v.Magnitude()
	if len(vAbs) == 0 {
		return
	}
	need := 2*len(vAbs) + 1
	a.scratch = magia.GrowRounded(a.scratch, need, growRoundTo)
	n := magia.SqrInto(a.scratch[:need], vAbs)
	a.mutateAdd(sign.NonNegative, a.scratch[:n])
}

// AddAbsValueOf adds |v| to the accumulator, useful for streaming
// aggregations that only care about magnitude (e.g. total error mass).
func (a *Accumulator) AddAbsValueOf(v bigint.SignedInt) {
	a.mutateAdd(sign.NonNegative, v.Magnitude())
}

// Len returns the number of limbs currently active in the accumulator's
// value (its normalized length, not the backing capacity).
func (a *Accumulator) Len() int { return len(magia.Norm(a.buf)) }

// Cap returns the accumulator's current backing capacity in limbs,
// exposed for tests asserting the never-shrinks growth policy.
func (a *Accumulator) Cap() int { return cap(a.buf) }
