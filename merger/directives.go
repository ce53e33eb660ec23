package merger

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// stitchingSource is the position of synthesized definitions, printers expect one
var stitchingSource = &ast.Source{Name: "stitching"}

// DelegateDirectiveDefinition is `directive @delegate(path: String, schema: String!) on FIELD_DEFINITION`
func DelegateDirectiveDefinition() *ast.DirectiveDefinition {
	return &ast.DirectiveDefinition{
		Name:     common.DelegateDirectiveName,
		Position: &ast.Position{Src: stitchingSource},
		Arguments: ast.ArgumentDefinitionList{
			{
				Name: common.DelegatePathArgument,
				Type: ast.NamedType("String", nil),
			},
			{
				Description: "The name of the schema to which this field shall be delegated to.",
				Name:        common.DelegateSchemaArgument,
				Type:        ast.NonNullNamedType("String", nil),
			},
		},
		Locations: []ast.DirectiveLocation{ast.LocationFieldDefinition},
	}
}

// RenamedDirectiveDefinition annotates the original name of a type
func RenamedDirectiveDefinition() *ast.DirectiveDefinition {
	return &ast.DirectiveDefinition{
		Description: "Annotates the original name of a type.",
		Name:        common.RenamedDirectiveName,
		Position:    &ast.Position{Src: stitchingSource},
		Arguments: ast.ArgumentDefinitionList{
			{
				Description: "The original name of the annotated type.",
				Name:        common.RenamedNameArgument,
				Type:        ast.NonNullNamedType("String", nil),
			},
			{
				Description: "The name of the schema to which this type belongs to.",
				Name:        common.RenamedSchemaArgument,
				Type:        ast.NonNullNamedType("String", nil),
			},
		},
		Locations: []ast.DirectiveLocation{
			ast.LocationScalar,
			ast.LocationObject,
			ast.LocationInterface,
			ast.LocationUnion,
			ast.LocationEnum,
			ast.LocationInputObject,
		},
	}
}

// NewDelegateDirective builds @delegate usage, empty path is omitted
func NewDelegateDirective(schema, path string) *ast.Directive {
	d := &ast.Directive{
		Name:     common.DelegateDirectiveName,
		Location: ast.LocationFieldDefinition,
	}
	if path != "" {
		d.Arguments = append(d.Arguments, &ast.Argument{
			Name:  common.DelegatePathArgument,
			Value: common.StringValue(path),
		})
	}
	d.Arguments = append(d.Arguments, &ast.Argument{
		Name:  common.DelegateSchemaArgument,
		Value: common.StringValue(schema),
	})
	return d
}

func NewRenamedDirective(name, schema string) *ast.Directive {
	return &ast.Directive{
		Name: common.RenamedDirectiveName,
		Arguments: ast.ArgumentList{
			{Name: common.RenamedNameArgument, Value: common.StringValue(name)},
			{Name: common.RenamedSchemaArgument, Value: common.StringValue(schema)},
		},
	}
}

// Delegate returns copy of field annotated with @delegate unless it already has one
func Delegate(field *ast.FieldDefinition, schema, path string) *ast.FieldDefinition {
	if field.Directives.ForName(common.DelegateDirectiveName) != nil {
		return field
	}
	res := common.CopyField(field)
	res.Directives = append(res.Directives, NewDelegateDirective(schema, path))
	return res
}

// MarkRenamed returns copy of definition annotated with @renamed unless it already has one
func MarkRenamed(def *ast.Definition, original, schema string) *ast.Definition {
	res := common.CopyDefinition(def)
	if res.Directives.ForName(common.RenamedDirectiveName) == nil {
		res.Directives = append(res.Directives, NewRenamedDirective(original, schema))
	}
	return res
}

func delegatedSchema(field *ast.FieldDefinition) (string, bool) {
	return common.DirectiveArgument(
		field.Directives.ForName(common.DelegateDirectiveName),
		common.DelegateSchemaArgument,
	)
}

// fieldOrigin returns the first schema defining the field
func fieldOrigin(name string, origins []*TypeInfo) string {
	t, ok := lo.Find(origins, func(t *TypeInfo) bool {
		return t.Definition.Fields.ForName(name) != nil
	})
	if !ok {
		return origins[0].Schema.Name
	}
	return t.Schema.Name
}

// mergeDirectives appends directives of b missing in a by name
func mergeDirectives(a, b ast.DirectiveList) ast.DirectiveList {
	res := append(ast.DirectiveList(nil), a...)
	for _, d := range b {
		if res.ForName(d.Name) == nil {
			res = append(res, d)
		}
	}
	return res
}

func appendMissing(a []string, b ...string) []string {
	res := append([]string(nil), a...)
	for _, s := range b {
		if !lo.Contains(res, s) {
			res = append(res, s)
		}
	}
	return res
}
