package errs

import (
	"errors"
	"net/http"
)

// Error is an application error that knows how it should be reported to a client.
type Error interface {
	error
	Status() int
	Message() string
	Unwrap() error
}

type ErrorOpts struct {
	// Status is the HTTP status reported for the error. Defaults to 500.
	Status int
	// Message is the public message. Defaults to the cause's text.
	Message string
}

type appError struct {
	status  int
	message string
	cause   error
}

var _ Error = &appError{}

// WrapAppError wraps err into an Error. An err that already is an Error is returned as is
// unless opts override its status or message.
func WrapAppError(err error, opts *ErrorOpts) Error {
	if opts == nil {
		opts = &ErrorOpts{}
	}

	var existing Error
	if errors.As(err, &existing) && opts.Status == 0 && opts.Message == "" {
		return existing
	}

	var e = &appError{
		status:  opts.Status,
		message: opts.Message,
		cause:   err,
	}
	if e.status == 0 {
		e.status = http.StatusInternalServerError
	}
	if e.message == "" && err != nil {
		e.message = err.Error()
	}

	return e
}

// New creates an Error without a cause.
func New(status int, message string) Error {
	return &appError{status: status, message: message}
}

func BadRequest(message string, cause error) Error {
	return WrapAppError(cause, &ErrorOpts{Status: http.StatusBadRequest, Message: message})
}

func Internal(message string, cause error) Error {
	return WrapAppError(cause, &ErrorOpts{Status: http.StatusInternalServerError, Message: message})
}

func (this *appError) Error() string {
	if this.cause == nil {
		return this.message
	}
	if this.message == this.cause.Error() {
		return this.message
	}
	return this.message + ": " + this.cause.Error()
}

func (this *appError) Status() int     { return this.status }
func (this *appError) Message() string { return this.message }
func (this *appError) Unwrap() error   { return this.cause }

// Detail returns the text of the underlying cause, or an empty string.
func Detail(err Error) string {
	if err == nil || err.Unwrap() == nil {
		return ""
	}
	return err.Unwrap().Error()
}
