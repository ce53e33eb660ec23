package rewriters

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/buildbuildio/stitch/merger"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// RemoveType drops type definitions of Schema, all schemas when Schema is empty
type RemoveType struct {
	Schema string
	Names  []string
}

var _ merger.DocumentRewriter = RemoveType{}

func (r RemoveType) RewriteDocument(schema string, doc *ast.SchemaDocument) *ast.SchemaDocument {
	if !appliesTo(r.Schema, schema) || len(r.Names) == 0 {
		return doc
	}

	if !lo.ContainsBy(r.Names, func(name string) bool { return definesType(doc, name) }) {
		return doc
	}

	return mapDefinitions(doc, func(def *ast.Definition) *ast.Definition {
		if lo.Contains(r.Names, def.Name) {
			return nil
		}
		return def
	})
}

// RemoveRootTypes drops query, mutation and subscription types, so the schema
// only contributes its other types
type RemoveRootTypes struct {
	Schema string
}

var _ merger.DocumentRewriter = RemoveRootTypes{}

func (r RemoveRootTypes) RewriteDocument(schema string, doc *ast.SchemaDocument) *ast.SchemaDocument {
	if !appliesTo(r.Schema, schema) {
		return doc
	}

	roots := rootTypeNames(doc)

	res := RemoveType{Names: lo.Uniq(roots)}.RewriteDocument(schema, doc)
	if res == doc && len(doc.Schema) == 0 && len(doc.SchemaExtension) == 0 {
		return doc
	}

	if res == doc {
		res = common.CopyDocument(doc)
	}
	res.Schema = nil
	res.SchemaExtension = nil

	return res
}

// rootTypeNames returns root operation types of the document. Default names count
// only when there is no schema definition, the same way the merger resolves them.
func rootTypeNames(doc *ast.SchemaDocument) []string {
	var roots []string
	for _, list := range []ast.SchemaDefinitionList{doc.Schema, doc.SchemaExtension} {
		for _, sd := range list {
			for _, ot := range sd.OperationTypes {
				roots = append(roots, ot.Type)
			}
		}
	}

	if len(roots) > 0 {
		return roots
	}

	for _, name := range []string{common.QueryTypeName, common.MutationTypeName, common.SubscriptionTypeName} {
		def := doc.Definitions.ForName(name)
		if def == nil {
			def = doc.Extensions.ForName(name)
		}
		if def != nil && def.Kind == ast.Object {
			roots = append(roots, name)
		}
	}

	return roots
}
