package common

import "strings"

const (
	QueryTypeName        = "Query"
	MutationTypeName     = "Mutation"
	SubscriptionTypeName = "Subscription"

	// DelegateDirectiveName marks a field which has to be resolved by another schema
	DelegateDirectiveName  = "delegate"
	DelegatePathArgument   = "path"
	DelegateSchemaArgument = "schema"

	// RenamedDirectiveName annotates the original name of a type
	RenamedDirectiveName  = "renamed"
	RenamedNameArgument   = "name"
	RenamedSchemaArgument = "schema"

	// RenameDirectiveName is put by schema authors on a type to request a new name
	RenameDirectiveName = "rename"
)

var builtinScalars = map[string]struct{}{
	"String":  {},
	"Int":     {},
	"Float":   {},
	"Boolean": {},
	"ID":      {},
}

var builtinDirectives = map[string]struct{}{
	"skip":        {},
	"include":     {},
	"deprecated":  {},
	"specifiedBy": {},
	"defer":       {},
	"oneOf":       {},
}

// IsBuiltinName returns true for introspection names and builtin scalars
func IsBuiltinName(name string) bool {
	if strings.HasPrefix(name, "__") {
		return true
	}
	_, ok := builtinScalars[name]
	return ok
}

func IsBuiltinDirective(name string) bool {
	_, ok := builtinDirectives[name]
	return ok
}

func IsStitchingDirective(name string) bool {
	return name == DelegateDirectiveName || name == RenamedDirectiveName
}
