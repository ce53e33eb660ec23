package gqlerrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
)

func TestError(t *testing.T) {
	err := NewError("code", errors.New("error"))

	assert.Equal(t, "error", err.Error())
	assert.Equal(t, err.Extensions["code"], "code")

	l := ErrorList{err, err}

	assert.Equal(t, "error. error", l.Error())

}

func TestExtendError(t *testing.T) {
	expected := ErrorList{NewError(UndefinedError, errors.New("test")), NewError(UndefinedError, errors.New("error"))}
	for _, e := range []error{
		NewError(UndefinedError, errors.New("error")),
		ErrorList{NewError(UndefinedError, errors.New("error"))},
		&gqlerror.Error{Message: "error"},
		gqlerror.List{&gqlerror.Error{Message: "error"}},
		errors.New("error"),
	} {
		err := ErrorList{NewError(UndefinedError, errors.New("test"))}
		actual := ExtendErrorList(err, e)
		bExpected, _ := json.Marshal(expected)
		bActual, _ := json.Marshal(actual)
		assert.JSONEq(t, string(bExpected), string(bActual))
	}
}

func TestFormatError(t *testing.T) {
	expected := ErrorList{NewError(UndefinedError, errors.New("error"))}
	for _, e := range []error{
		NewError(UndefinedError, errors.New("error")),
		ErrorList{NewError(UndefinedError, errors.New("error"))},
		&gqlerror.Error{Message: "error"},
		gqlerror.List{&gqlerror.Error{Message: "error"}},
		errors.New("error"),
	} {
		actual := FormatError(e)
		bExpected, _ := json.Marshal(expected)
		bActual, _ := json.Marshal(actual)
		assert.JSONEq(t, string(bExpected), string(bActual))
	}
}

func TestFormatErrorNilValue(t *testing.T) {
	actual := FormatError(nil)
	assert.Nil(t, actual)
}

func TestFormatErrorComplicatedGQLError(t *testing.T) {
	err := &gqlerror.Error{
		Message:   "hello",
		Locations: []gqlerror.Location{{Line: 1, Column: 1}},
		Path:      ast.Path{ast.PathName("path")},
		Extensions: map[string]interface{}{
			"smth": 42,
		},
	}
	actual := FormatError(err)

	bActual, _ := json.Marshal(actual)

	assert.JSONEq(t, `[{"message": "hello", "path": ["path"], "extensions": {"smth": 42}, "locations": [{"line": 1, "column": 1}]}]`, string(bActual))
}

func TestErrorUnmarshall(t *testing.T) {
	errMsg := `[{"message":"Error during request","path":["somePath","results",2,"items"]}]`

	var err ErrorList

	errJson := json.Unmarshal([]byte(errMsg), &err)

	assert.NoError(t, errJson)

	assert.Equal(t, "Error during request", err[0].Message)
}

type codedError struct{}

func (codedError) Error() string { return "type definitions could not be handled" }
func (codedError) Code() string  { return "MERGE_UNRESOLVED_TYPES" }

func TestFormatCodedError(t *testing.T) {
	err := fmt.Errorf("unable to merge schemas: %w", codedError{})

	actual := FormatError(err)

	bActual, _ := json.Marshal(actual)

	assert.JSONEq(t, `[{
		"message": "unable to merge schemas: type definitions could not be handled",
		"extensions": {"code": "MERGE_UNRESOLVED_TYPES"}
	}]`, string(bActual))
}

func TestFormatWrappedParseError(t *testing.T) {
	_, err := parser.ParseSchema(&ast.Source{Name: "users", Input: "type Query {"})
	require.Error(t, err)

	actual := FormatError(fmt.Errorf("unable to load schema users: %w", err))

	require.Len(t, actual, 1)
	assert.Regexp(t, "^unable to load schema users: [^:]", actual[0].Message)
	require.Len(t, actual[0].Locations, 1)
	assert.Equal(t, 1, actual[0].Locations[0].Line)
}

func TestFormatWrappedErrorList(t *testing.T) {
	list := ErrorList{
		NewError("FIRST", errors.New("first")),
		NewError("SECOND", errors.New("second")),
	}

	actual := FormatError(fmt.Errorf("unable to load schemas: %w", list))

	bActual, _ := json.Marshal(actual)

	assert.JSONEq(t, `[
		{"message": "first", "extensions": {"code": "FIRST"}},
		{"message": "second", "extensions": {"code": "SECOND"}}
	]`, string(bActual))
}
