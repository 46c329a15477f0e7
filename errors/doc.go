/*
Package errors implements custom error interfaces for lockbox.

Reuse the root errors declared in this package wherever possible and declare
custom package errors only when a client must be able to tell them apart.
Extensions register their own root errors with Register(code, description);
the code becomes the ABCI response code, so each one must be unique.

Create an error instance with ErrXyz.New("...") or errors.Wrap(err, "...") at
the point of failure, so the stacktrace is taken from there. When wrapping
many times only the innermost wrap records the stacktrace.

Once you have an error, use fmt to inspect it
	%s is just the error message
	%+v is the full stack trace
*/
package errors
