package trio

import (
	"errors"
	"fmt"
	"io"
)

// ErrNotTextStream is returned when a TextTrio member lacks the TextStream capability.
var ErrNotTextStream = errors.New("trio: member must satisfy TextStream (Read, Write, Close, Value)")

// A TextStream is the capability set required of a substituted standard
// stream: character-oriented read, write and close, plus retrieval of the
// accumulated content.
type TextStream interface {
	io.Reader
	io.Writer
	io.Closer
	Value() string
}

// A TextTrio is a Trio whose members are all known to satisfy TextStream.
// The check happens at construction, so downstream code never validates.
type TextTrio struct {
	Trio
}

var roles = [3]string{"stdin", "stdout", "stderr"}

// NewText returns a TextTrio built from members, failing unless exactly
// three are given and every one satisfies TextStream. The error names the
// first member that doesn't.
func NewText(members ...any) (TextTrio, error) {
	t, err := New(members...)
	if err != nil {
		return TextTrio{}, err
	}

	for i, m := range t.members {
		if _, ok := m.(TextStream); !ok {
			return TextTrio{}, fmt.Errorf("%w: %s member is %T", ErrNotTextStream, roles[i], m)
		}
	}

	return TextTrio{Trio: t}, nil
}

// TextOf returns a TextTrio of statically typed members, no runtime probe needed.
func TextOf(in, out, errOut TextStream) TextTrio {
	return TextTrio{Trio: Of(in, out, errOut)}
}

// In returns the stdin member with its TextStream capability.
func (t TextTrio) In() TextStream {
	return t.Trio.In().(TextStream)
}

// Out returns the stdout member with its TextStream capability.
func (t TextTrio) Out() TextStream {
	return t.Trio.Out().(TextStream)
}

// Err returns the stderr member with its TextStream capability.
func (t TextTrio) Err() TextStream {
	return t.Trio.Err().(TextStream)
}
