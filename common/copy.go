package common

import "github.com/vektah/gqlparser/v2/ast"

// AST nodes are shared between input documents and merge results,
// so anything that has to change is copied first and never modified in place.

// CopyDefinition returns a copy of def with its own slices, child nodes are shared
func CopyDefinition(def *ast.Definition) *ast.Definition {
	if def == nil {
		return nil
	}

	res := *def
	res.Directives = append(ast.DirectiveList(nil), def.Directives...)
	res.Interfaces = append([]string(nil), def.Interfaces...)
	res.Fields = append(ast.FieldList(nil), def.Fields...)
	res.Types = append([]string(nil), def.Types...)
	res.EnumValues = append(ast.EnumValueList(nil), def.EnumValues...)

	return &res
}

func CopyField(field *ast.FieldDefinition) *ast.FieldDefinition {
	res := *field
	res.Arguments = append(ast.ArgumentDefinitionList(nil), field.Arguments...)
	res.Directives = append(ast.DirectiveList(nil), field.Directives...)
	return &res
}

func CopyDocument(doc *ast.SchemaDocument) *ast.SchemaDocument {
	res := *doc
	res.Schema = append(ast.SchemaDefinitionList(nil), doc.Schema...)
	res.SchemaExtension = append(ast.SchemaDefinitionList(nil), doc.SchemaExtension...)
	res.Directives = append(ast.DirectiveDefinitionList(nil), doc.Directives...)
	res.Definitions = append(ast.DefinitionList(nil), doc.Definitions...)
	res.Extensions = append(ast.DefinitionList(nil), doc.Extensions...)
	return &res
}

// CopyType deep copies a type reference
func CopyType(t *ast.Type) *ast.Type {
	if t == nil {
		return nil
	}
	res := *t
	res.Elem = CopyType(t.Elem)
	return &res
}
