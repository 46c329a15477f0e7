package errors

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	// SuccessABCICode is the code of a successful ABCI response.
	SuccessABCICode = 0

	// Errors that are not rooted in a registered error share this code
	// and, unless in debug mode, a generic message that hides the
	// details.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log of an ABCI response for given error. In
// debug mode the log includes the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	default:
		return code, err.Error()
	}
}

// ABCIError rebuilds an error from an ABCI response, so that Is can be used
// on the client side. Only registered codes resolve to their root error.
func ABCIError(code uint32, log string) error {
	if e := usedCodes[code]; e != nil {
		return Wrap(e, log)
	}
	return Wrap(errors.New(log), "unknown error code")
}

type coder interface {
	ABCICode() uint32
}

// abciCode returns the code of the first error in the cause chain that has
// one.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalABCICode
}

// errIsNil returns true for nil and for a typed nil of a nilable kind.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	switch val := reflect.ValueOf(err); val.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return val.IsNil()
	}
	return false
}
