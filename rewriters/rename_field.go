package rewriters

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/buildbuildio/stitch/merger"
	"github.com/vektah/gqlparser/v2/ast"
)

// RenameField renames field of a type. The field keeps pointing to its original
// name through @delegate path, so the executor can still query the schema.
type RenameField struct {
	Schema   string
	TypeName string
	From     string
	To       string
}

var _ merger.TypeRewriter = RenameField{}

func (r RenameField) RewriteType(schema *merger.SchemaInfo, def *ast.Definition) *ast.Definition {
	if !appliesTo(r.Schema, schema.Name) || def.Name != r.TypeName {
		return def
	}

	field := def.Fields.ForName(r.From)
	if field == nil || def.Fields.ForName(r.To) != nil {
		return def
	}

	res := common.CopyDefinition(def)
	for i, f := range res.Fields {
		if f.Name != r.From {
			continue
		}
		renamed := common.CopyField(f)
		renamed.Name = r.To
		res.Fields[i] = merger.Delegate(renamed, schema.Name, r.From)
	}

	return res
}
