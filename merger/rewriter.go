package merger

import "github.com/vektah/gqlparser/v2/ast"

// DocumentRewriter transforms a whole source document before it's catalogued.
// It must return a new document instead of modifying the passed one.
type DocumentRewriter interface {
	RewriteDocument(schema string, doc *ast.SchemaDocument) *ast.SchemaDocument
}

type DocumentRewriterFunc func(schema string, doc *ast.SchemaDocument) *ast.SchemaDocument

func (f DocumentRewriterFunc) RewriteDocument(schema string, doc *ast.SchemaDocument) *ast.SchemaDocument {
	return f(schema, doc)
}

// TypeRewriter transforms a single type definition before it's put into a bucket.
// It must return a new definition instead of modifying the passed one.
type TypeRewriter interface {
	RewriteType(schema *SchemaInfo, def *ast.Definition) *ast.Definition
}

type TypeRewriterFunc func(schema *SchemaInfo, def *ast.Definition) *ast.Definition

func (f TypeRewriterFunc) RewriteType(schema *SchemaInfo, def *ast.Definition) *ast.Definition {
	return f(schema, def)
}

func rewriteDocument(rewriters []DocumentRewriter, input *MergeInput) *ast.SchemaDocument {
	current := input.Document
	for _, r := range rewriters {
		current = r.RewriteDocument(input.Name, current)
	}
	return current
}

func rewriteType(rewriters []TypeRewriter, schema *SchemaInfo, def *ast.Definition) *ast.Definition {
	current := def
	for _, r := range rewriters {
		current = r.RewriteType(schema, current)
		// removed types aren't passed further
		if current == nil {
			return nil
		}
	}
	return current
}
