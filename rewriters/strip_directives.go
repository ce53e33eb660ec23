package rewriters

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/buildbuildio/stitch/merger"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// StripDirectives removes directive definitions and their usages on types, fields,
// arguments and enum values. @delegate and @renamed are never stripped.
type StripDirectives struct {
	Schema string
	Names  []string
}

var _ merger.DocumentRewriter = StripDirectives{}

func (r StripDirectives) RewriteDocument(schema string, doc *ast.SchemaDocument) *ast.SchemaDocument {
	r.Names = lo.Filter(r.Names, func(name string, _ int) bool {
		return !common.IsStitchingDirective(name)
	})

	if !appliesTo(r.Schema, schema) || len(r.Names) == 0 {
		return doc
	}

	res := mapDefinitions(doc, func(def *ast.Definition) *ast.Definition {
		return r.stripDefinition(def)
	})

	res.Directives = lo.Filter(doc.Directives, func(d *ast.DirectiveDefinition, _ int) bool {
		return !lo.Contains(r.Names, d.Name)
	})

	return res
}

func (r StripDirectives) stripDefinition(def *ast.Definition) *ast.Definition {
	res := common.CopyDefinition(def)
	res.Directives = removeDirectives(def.Directives, r.Names...)

	for i, f := range res.Fields {
		field := common.CopyField(f)
		field.Directives = removeDirectives(f.Directives, r.Names...)
		for j, a := range field.Arguments {
			arg := *a
			arg.Directives = removeDirectives(a.Directives, r.Names...)
			field.Arguments[j] = &arg
		}
		res.Fields[i] = field
	}

	for i, v := range res.EnumValues {
		value := *v
		value.Directives = removeDirectives(v.Directives, r.Names...)
		res.EnumValues[i] = &value
	}

	return res
}

func removeDirectives(list ast.DirectiveList, names ...string) ast.DirectiveList {
	return lo.Filter(list, func(d *ast.Directive, _ int) bool {
		return !lo.Contains(names, d.Name)
	})
}
