package merger

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

const (
	CodeInvalidInput            = "MERGE_INVALID_INPUT"
	CodeDuplicateLocalType      = "MERGE_DUPLICATE_LOCAL_TYPE"
	CodeMalformedTypeDefinition = "MERGE_MALFORMED_TYPE_DEFINITION"
	CodeUnresolvedTypes         = "MERGE_UNRESOLVED_TYPES"
	CodeDuplicateMergedType     = "MERGE_DUPLICATE_MERGED_TYPE"
	CodeMissingQueryType        = "MERGE_MISSING_QUERY_TYPE"
	CodeExtensionTargetNotFound = "MERGE_EXTENSION_TARGET_NOT_FOUND"
)

// InvalidInputError is returned when the list of inputs can't be merged at all
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid merge input: " + e.Reason
}

func (e *InvalidInputError) Code() string { return CodeInvalidInput }

// DuplicateLocalTypeError means a single source document defines a type twice
type DuplicateLocalTypeError struct {
	Schema   string
	TypeName string
}

func (e *DuplicateLocalTypeError) Error() string {
	return fmt.Sprintf("schema %s defines type %s more than once", e.Schema, e.TypeName)
}

func (e *DuplicateLocalTypeError) Code() string { return CodeDuplicateLocalType }

type MalformedTypeDefinitionError struct {
	Schema   string
	TypeName string
	Kind     ast.DefinitionKind
	Reason   string
}

func (e *MalformedTypeDefinitionError) Error() string {
	return fmt.Sprintf("malformed %s %s in schema %s: %s", e.Kind, e.TypeName, e.Schema, e.Reason)
}

func (e *MalformedTypeDefinitionError) Code() string { return CodeMalformedTypeDefinition }

// UnresolvedTypesError is returned by the end of handler chain when nobody consumed the bucket
type UnresolvedTypesError struct {
	TypeName string
	Entries  []string
}

func (e *UnresolvedTypesError) Error() string {
	return fmt.Sprintf(
		"type definitions of %s could not be handled: %s",
		e.TypeName,
		strings.Join(e.Entries, ", "),
	)
}

func (e *UnresolvedTypesError) Code() string { return CodeUnresolvedTypes }

type DuplicateMergedTypeError struct {
	TypeName string
}

func (e *DuplicateMergedTypeError) Error() string {
	return fmt.Sprintf("type %s was already added to the merged schema", e.TypeName)
}

func (e *DuplicateMergedTypeError) Code() string { return CodeDuplicateMergedType }

type MissingQueryTypeError struct{}

func (e *MissingQueryTypeError) Error() string {
	return "merged schema has no query type"
}

func (e *MissingQueryTypeError) Code() string { return CodeMissingQueryType }

type ExtensionTargetNotFoundError struct {
	TypeName string
}

func (e *ExtensionTargetNotFoundError) Error() string {
	return fmt.Sprintf("cannot extend type %s because it does not exist in the merged schema", e.TypeName)
}

func (e *ExtensionTargetNotFoundError) Code() string { return CodeExtensionTargetNotFound }
