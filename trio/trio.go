// Package trio holds ordered triples of stdin/stdout/stderr stand-ins and
// the bulk operations used to drive them through a capture session.
package trio

import (
	"errors"
	"fmt"
	"io"
)

// ErrMemberCount is returned when a trio is built from anything but three streams.
var ErrMemberCount = errors.New("trio: exactly three streams required")

// An Op is applied to a single member, reporting success and a possible failure.
type Op func(member any) (bool, error)

// A Trio is an immutable ordered triple of stream-like members with the
// fixed roles stdin, stdout and stderr. Members may be arbitrary stand-ins,
// capability checks are the business of TextTrio.
type Trio struct {
	members [3]any
}

// New returns a Trio built from members, failing unless exactly three are given.
func New(members ...any) (Trio, error) {
	if len(members) != 3 {
		return Trio{}, fmt.Errorf("%w, got %d", ErrMemberCount, len(members))
	}

	return Of(members[0], members[1], members[2]), nil
}

// Of returns a Trio of the given stdin, stdout and stderr stand-ins.
func Of(in, out, errOut any) Trio {
	return Trio{
		members: [3]any{in, out, errOut},
	}
}

// In returns the stdin member.
func (t Trio) In() any {
	return t.members[0]
}

// Out returns the stdout member.
func (t Trio) Out() any {
	return t.members[1]
}

// Err returns the stderr member.
func (t Trio) Err() any {
	return t.members[2]
}

// Apply returns a lazy Results iterator over op applied to each member
// in stdin, stdout, stderr order. Each call returns a fresh iterator.
func (t Trio) Apply(op Op) *Results {
	return &Results{
		members: t.members,
		op:      op,
	}
}

// ApplySuppressing behaves like Apply, except that member failures matching
// target produce no result for that member instead of stopping the iteration.
// Other failures still stop it.
func (t Trio) ApplySuppressing(target error, op Op) *Results {
	return &Results{
		members:  t.members,
		op:       op,
		suppress: target,
	}
}

// AllSucceed drains Apply(op) and reports whether every member succeeded.
func (t Trio) AllSucceed(op Op) (bool, error) {
	return drain(t.Apply(op))
}

// AllSucceedSuppressing drains ApplySuppressing(target, op) and reports
// whether every produced result succeeded. Suppressed members produce
// no result and don't affect the outcome.
func (t Trio) AllSucceedSuppressing(target error, op Op) (bool, error) {
	return drain(t.ApplySuppressing(target, op))
}

// CloseAll closes every member that can be closed, never stopping at the
// first failure. Members without close support are skipped. The first
// failure observed is returned after all three attempts.
func (t Trio) CloseAll() error {
	var first error
	for _, m := range t.members {
		c, ok := m.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// A Results is a lazy iterator over per-member outcomes of an Op.
// Use it like:
//
//	for r.Scan() {
//		ok := r.Result()
//	}
//	err := r.Err()
type Results struct {
	members  [3]any
	op       Op
	suppress error
	idx      int
	result   bool
	err      error
}

// Scan advances to the next produced result, returning false when the
// members are exhausted or a non-suppressed failure occurred.
func (r *Results) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.idx < len(r.members) {
		member := r.members[r.idx]
		r.idx++

		ok, err := r.op(member)
		if err != nil {
			if r.suppress != nil && errors.Is(err, r.suppress) {
				continue
			}
			r.err = err
			return false
		}

		r.result = ok
		return true
	}

	return false
}

// Result returns the outcome of the member Scan stopped on.
func (r *Results) Result() bool {
	return r.result
}

// Err returns the failure that stopped the iteration, if any.
func (r *Results) Err() error {
	return r.err
}

func drain(r *Results) (bool, error) {
	all := true
	for r.Scan() {
		if !r.Result() {
			all = false
		}
	}
	if err := r.Err(); err != nil {
		return false, err
	}
	return all, nil
}
