package rewriters

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/buildbuildio/stitch/merger"
	"github.com/vektah/gqlparser/v2/ast"
)

// RenameType renames type From of Schema to To, every reference inside the document
// follows. The renamed type is annotated with @renamed.
type RenameType struct {
	Schema string
	From   string
	To     string
}

var _ merger.DocumentRewriter = RenameType{}

func (r RenameType) RewriteDocument(schema string, doc *ast.SchemaDocument) *ast.SchemaDocument {
	if !appliesTo(r.Schema, schema) || r.From == r.To {
		return doc
	}

	if !definesType(doc, r.From) {
		return doc
	}

	return renameType(schema, doc, r.From, r.To)
}

func definesType(doc *ast.SchemaDocument, name string) bool {
	return doc.Definitions.ForName(name) != nil || doc.Extensions.ForName(name) != nil
}

func renameType(schema string, doc *ast.SchemaDocument, from, to string) *ast.SchemaDocument {
	res := mapDefinitions(doc, func(def *ast.Definition) *ast.Definition {
		renamed := renameReferences(def, from, to)
		if def.Name == from {
			renamed = merger.MarkRenamed(renamed, from, schema)
			renamed.Name = to
		}
		return renamed
	})

	// root operation types may point to the renamed type as well
	res.Schema = renameOperationTypes(doc.Schema, from, to)
	res.SchemaExtension = renameOperationTypes(doc.SchemaExtension, from, to)

	return res
}

func renameOperationTypes(list ast.SchemaDefinitionList, from, to string) ast.SchemaDefinitionList {
	var res ast.SchemaDefinitionList
	for _, sd := range list {
		copied := *sd
		copied.OperationTypes = nil
		for _, ot := range sd.OperationTypes {
			if ot.Type == from {
				renamed := *ot
				renamed.Type = to
				ot = &renamed
			}
			copied.OperationTypes = append(copied.OperationTypes, ot)
		}
		res = append(res, &copied)
	}
	return res
}

// ApplyRenameDirectives renames every type carrying @rename(name: "...") in a document,
// on the definition or on an extension of it. The directive is replaced with @renamed
// pointing to the original name, the first @rename of a type wins.
type ApplyRenameDirectives struct{}

var _ merger.DocumentRewriter = ApplyRenameDirectives{}

func (ApplyRenameDirectives) RewriteDocument(schema string, doc *ast.SchemaDocument) *ast.SchemaDocument {
	current := doc
	defs := append(append(ast.DefinitionList(nil), doc.Definitions...), doc.Extensions...)
	for _, def := range defs {
		to, ok := common.DirectiveArgument(
			def.Directives.ForName(common.RenameDirectiveName),
			common.RenamedNameArgument,
		)
		if !ok || to == def.Name {
			continue
		}
		current = renameType(schema, current, def.Name, to)
	}

	if current == doc {
		return doc
	}

	return mapDefinitions(current, func(def *ast.Definition) *ast.Definition {
		if def.Directives.ForName(common.RenameDirectiveName) == nil {
			return def
		}
		res := common.CopyDefinition(def)
		res.Directives = removeDirectives(res.Directives, common.RenameDirectiveName)
		return res
	})
}
