// SPDX-License-Identifier: MIT

// Package lorentz: functional configuration for system-aware arithmetic.
// This file defines:
//   - SystemPolicy and its documented default,
//   - Option / Options (functional options with unexported state),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Vector.Add/Sub/Dot never consult options; they are always raw.
//   - Sum/Diff/Inner (arith.go) consume ...Option and default to the raw policy,
//     so swapping v.Add(o) for Sum(v, o) changes nothing until a policy is chosen.

package lorentz

// SystemPolicy decides how binary operations treat operands whose
// coordinate systems differ.
type SystemPolicy int

const (
	// PolicyRaw combines the stored numbers as-is (Add/Sub/Dot behavior).
	PolicyRaw SystemPolicy = iota
	// PolicyStrict rejects mismatched systems with ErrMismatchedSystem.
	PolicyStrict
	// PolicyConvert converts the right operand into the left operand's system.
	PolicyConvert
)

// DefaultSystemPolicy is the policy used when no Option is supplied.
const DefaultSystemPolicy = PolicyRaw

// String implements fmt.Stringer.
func (p SystemPolicy) String() string {
	switch p {
	case PolicyRaw:
		return "raw"
	case PolicyStrict:
		return "strict"
	case PolicyConvert:
		return "convert"
	default:
		return "unknown"
	}
}

// Option mutates internal options. Safe to apply repeatedly; last one wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	policy SystemPolicy // DefaultSystemPolicy
}

// Policy returns the resolved system policy.
func (o Options) Policy() SystemPolicy {
	return o.policy
}

// WithRawSystems selects PolicyRaw (the default).
func WithRawSystems() Option {
	return func(o *Options) { o.policy = PolicyRaw }
}

// WithStrictSystems selects PolicyStrict: operands must share a system.
func WithStrictSystems() Option {
	return func(o *Options) { o.policy = PolicyStrict }
}

// WithAutoConvert selects PolicyConvert: the right operand is converted into
// the left operand's system before combining.
func WithAutoConvert() Option {
	return func(o *Options) { o.policy = PolicyConvert }
}

// gatherOptions resolves opts over the documented defaults.
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{policy: DefaultSystemPolicy}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
