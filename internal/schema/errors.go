package schema

import (
	"errors"
	"io/fs"
	"syscall"
)

// Bodies of the two 500 responses.
const (
	FallbackFailureBody = "Error loading index.html"
	serverErrorPrefix   = "Server Error: "
)

func ServerErrorBody(code ErrorCode) string {
	return serverErrorPrefix + string(code)
}

// Error is a failed file read. Code is the errno name of the cause, the same
// identifier clients see in a "Server Error" body.
type Error struct {
	Code ErrorCode
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether the read failed because the file does not exist.
// Only these failures trigger the index.html fallback.
func (e *Error) IsNotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

func NewReadError(path string, err error) *Error {
	return &Error{
		Code: codeOf(err),
		Path: path,
		Err:  err,
	}
}

type ErrorCode string

const (
	ErrorCodeNotFound   ErrorCode = "ENOENT"
	ErrorCodePermission ErrorCode = "EACCES"
	ErrorCodeUnknown    ErrorCode = "UNKNOWN"
)

func codeOf(err error) ErrorCode {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if name := errnoName(errno); name != "" {
			return ErrorCode(name)
		}
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrorCodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrorCodePermission
	}
	return ErrorCodeUnknown
}
