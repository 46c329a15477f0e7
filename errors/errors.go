package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Root errors shared by all extensions. Codes below 100 are reserved for
// this package.
var (
	// ErrUnauthorized is returned when the signers may not perform the
	// requested action.
	ErrUnauthorized = Register(2, "unauthorized")
	ErrNotFound     = Register(3, "not found")
	ErrMsg          = Register(4, "invalid message")
	ErrModel        = Register(5, "invalid model")
	ErrDuplicate    = Register(6, "duplicate")

	// ErrHuman marks a code path that can be reached only because of a
	// programming error.
	ErrHuman = Register(7, "coding error")

	ErrEmpty  = Register(9, "value is empty")
	ErrState  = Register(10, "invalid state")
	ErrType   = Register(11, "invalid type")
	ErrAmount = Register(13, "invalid amount")
	ErrInput  = Register(14, "invalid input")

	// ErrOverflow is returned when a result does not fit its type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	ErrCurrency           = Register(17, "currency")
	ErrInsufficientAmount = Register(18, "insufficient amount")
	ErrDatabase           = Register(19, "database")

	// ErrPanic wraps a recovered panic. Its details are never exposed to
	// the client.
	ErrPanic = Register(111222, "panic")
)

// usedCodes maps every registered code to its error. Code 1 is the internal
// error code and cannot be registered.
var usedCodes = map[uint32]*Error{1: nil}

// Register declares a new root error with a unique code. The code is
// returned to clients in the ABCI response. Register panics if the code is
// taken, so call it only when initialising package variables.
func Register(code uint32, description string) *Error {
	if prev, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	usedCodes[code] = e
	return e
}

// Error is a root error. Errors returned at runtime should wrap one of the
// registered root errors.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// ABCICode returns the code this error is reported with.
func (e Error) ABCICode() uint32 {
	return e.code
}

// New is a shortcut for Wrap(e, description).
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrap(e, fmt.Sprintf(format, args...))
}

// Is returns true if err is e or wraps e. A nil *Error matches only a nil
// error, including a typed nil.
func (e *Error) Is(err error) bool {
	if e == nil {
		return errIsNil(err)
	}
	for err != nil {
		if err == e {
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap returns err with description prepended to its message. A stack trace
// is recorded unless err already carries one. Wrap returns nil if err is
// nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format writes the stack trace for %+v. Any other verb writes the message.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", e.msg, e.parent)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Recover must be deferred. It stops a panic and stores it in err as an
// ErrPanic.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found in the wrapping chain.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}
