package llm

import (
	"fmt"

	"github.com/pkg/errors"
)

// FailureKind tells callers why a generation produced no usable text.
type FailureKind int

const (
	// FailureRequest means the remote call itself failed.
	FailureRequest FailureKind = iota + 1
	// FailureBlocked means the safety filters withheld the output.
	FailureBlocked
	// FailureNoContent means the call succeeded but returned no text.
	FailureNoContent
)

func (k FailureKind) String() string {
	switch k {
	case FailureRequest:
		return "request_failed"
	case FailureBlocked:
		return "blocked"
	case FailureNoContent:
		return "no_content"
	default:
		return "unknown"
	}
}

// GenerationError is the failure half of a generation result. Err always
// carries a stack trace; %+v prints it.
type GenerationError struct {
	Kind FailureKind
	// Reason is the provider's block or finish reason, when it gave one.
	Reason string
	Err    error
}

func (e *GenerationError) Error() string { return e.Err.Error() }

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.Kind, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}

func requestFailed(err error) *GenerationError {
	return &GenerationError{Kind: FailureRequest, Err: errors.Wrap(err, "generate content")}
}

func blocked(reason string) *GenerationError {
	return &GenerationError{
		Kind:   FailureBlocked,
		Reason: reason,
		Err:    errors.Errorf("content blocked by safety filters (%s)", reason),
	}
}

// NoContent reports a reply without any usable text.
func NoContent() *GenerationError {
	return &GenerationError{Kind: FailureNoContent, Err: errors.New("no content generated")}
}

// KindOf returns the failure kind carried by err, or 0 when err is not
// a *GenerationError.
func KindOf(err error) FailureKind {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}
