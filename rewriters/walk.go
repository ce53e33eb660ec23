package rewriters

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/vektah/gqlparser/v2/ast"
)

// appliesTo reports whether rewriter bound to schema has to run for current
func appliesTo(schema, current string) bool {
	return schema == "" || schema == current
}

// mapDefinitions returns copy of doc with fn applied to every definition and extension.
// Returning nil from fn drops the definition.
func mapDefinitions(doc *ast.SchemaDocument, fn func(def *ast.Definition) *ast.Definition) *ast.SchemaDocument {
	res := common.CopyDocument(doc)
	res.Definitions = mapList(doc.Definitions, fn)
	res.Extensions = mapList(doc.Extensions, fn)
	return res
}

func mapList(list ast.DefinitionList, fn func(def *ast.Definition) *ast.Definition) ast.DefinitionList {
	var res ast.DefinitionList
	for _, def := range list {
		if mapped := fn(def); mapped != nil {
			res = append(res, mapped)
		}
	}
	return res
}

// renameTypeRef returns t with named type from replaced, t itself if nothing matched
func renameTypeRef(t *ast.Type, from, to string) *ast.Type {
	if t == nil {
		return nil
	}

	elem := renameTypeRef(t.Elem, from, to)
	if t.NamedType != from && elem == t.Elem {
		return t
	}

	res := *t
	res.Elem = elem
	if res.NamedType == from {
		res.NamedType = to
	}
	return &res
}

// renameReferences replaces every usage of type from inside def
func renameReferences(def *ast.Definition, from, to string) *ast.Definition {
	res := common.CopyDefinition(def)

	for i, f := range res.Fields {
		res.Fields[i] = renameFieldReferences(f, from, to)
	}

	for i, name := range res.Interfaces {
		if name == from {
			res.Interfaces[i] = to
		}
	}

	for i, name := range res.Types {
		if name == from {
			res.Types[i] = to
		}
	}

	return res
}

func renameFieldReferences(f *ast.FieldDefinition, from, to string) *ast.FieldDefinition {
	typ := renameTypeRef(f.Type, from, to)
	changed := typ != f.Type

	args := make(ast.ArgumentDefinitionList, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a
		if at := renameTypeRef(a.Type, from, to); at != a.Type {
			copied := *a
			copied.Type = at
			args[i] = &copied
			changed = true
		}
	}

	if !changed {
		return f
	}

	res := common.CopyField(f)
	res.Type = typ
	res.Arguments = args
	return res
}
