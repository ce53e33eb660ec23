package gqlerrors

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

const (
	ValidationFailedError = "GRAPHQL_VALIDATION_FAILED"
	UndefinedError        = "UNDEFINED_ERROR"
)

// coded is implemented by errors carrying their own code, e.g. merge failures
type coded interface {
	error
	Code() string
}

type Location struct {
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

// Error represents a graphql error
type Error struct {
	Extensions map[string]interface{} `json:"extensions"`
	Message    string                 `json:"message"`
	Locations  []Location             `json:"locations,omitempty"`
	Path       []interface{}          `json:"path,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError returns a graphql error with the given code and message
func NewError(code string, err error) *Error {
	return &Error{
		Message: err.Error(),
		Extensions: map[string]interface{}{
			"code": code,
		},
	}
}

// ErrorList represents a list of errors
type ErrorList []*Error

// ExtendErrorList adds provided err as *Error
func ExtendErrorList(errs ErrorList, err error) ErrorList {
	return append(errs, FormatError(err)...)
}

// Error returns a string representation of each error
func (list ErrorList) Error() string {
	acc := make([]string, len(list))

	for i, err := range list {
		acc[i] = err.Error()
	}

	return strings.Join(acc, ". ")
}

// FormatError flattens err into graphql errors. Wrapped errors are unwrapped,
// the wrapping context stays in the message.
func FormatError(err error) ErrorList {
	if err == nil {
		return nil
	}

	var list ErrorList
	if errors.As(err, &list) {
		var res ErrorList
		for _, innerErr := range list {
			res = append(res, FormatError(innerErr)...)
		}
		return res
	}

	var gqlList gqlerror.List
	if errors.As(err, &gqlList) {
		var res ErrorList
		for _, innerErr := range gqlList {
			res = append(res, fromGQLError(innerErr, innerErr.Message))
		}
		return res
	}

	var e *Error
	if errors.As(err, &e) {
		return ErrorList{e}
	}

	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		msg := gqlErr.Message
		if err != error(gqlErr) {
			msg = strings.TrimSuffix(err.Error(), gqlErr.Error()) + gqlErr.Message
		}
		return ErrorList{fromGQLError(gqlErr, msg)}
	}

	var c coded
	if errors.As(err, &c) {
		return ErrorList{NewError(c.Code(), err)}
	}

	return ErrorList{NewError(UndefinedError, err)}
}

func fromGQLError(e *gqlerror.Error, msg string) *Error {
	var locations []Location
	for _, loc := range e.Locations {
		locations = append(locations, Location(loc))
	}

	var path []string
	if e.Path.String() != "" {
		path = strings.Split(e.Path.String(), ".")
	}

	ext := e.Extensions
	if len(ext) == 0 {
		ext = map[string]interface{}{"code": UndefinedError}
	}

	return &Error{
		Extensions: ext,
		Message:    msg,
		Locations:  locations,
		Path:       lo.Map(path, func(el string, _ int) interface{} { return el }),
	}
}
