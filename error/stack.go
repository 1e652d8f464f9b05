package error

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// callers returns the stack starting skip frames above the function calling callers.
func callers(skip int) pkgerrors.StackTrace {
	var st stackTracer
	if !errors.As(pkgerrors.New(""), &st) {
		return nil
	}

	frames := st.StackTrace()
	if skip+1 >= len(frames) {
		return nil
	}

	return frames[skip+1:]
}

func stackOf(err error) pkgerrors.StackTrace {
	if err == nil {
		return nil
	}

	var st stackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}

	return nil
}
