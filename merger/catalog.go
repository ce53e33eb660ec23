package merger

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/vektah/gqlparser/v2/ast"
)

var rootOperations = []ast.Operation{ast.Query, ast.Mutation, ast.Subscription}

var defaultRootNames = map[ast.Operation]string{
	ast.Query:        common.QueryTypeName,
	ast.Mutation:     common.MutationTypeName,
	ast.Subscription: common.SubscriptionTypeName,
}

// TypeCatalog indexes type definitions of a single document by name
type TypeCatalog struct {
	types map[string]*ast.Definition
	// names keeps document order
	names     []string
	rootNames map[ast.Operation]string
}

// NewTypeCatalog builds catalog for the document. Local extensions are folded into
// copies of their targets, the document itself stays untouched.
func NewTypeCatalog(schema string, doc *ast.SchemaDocument) (*TypeCatalog, error) {
	c := &TypeCatalog{
		types:     make(map[string]*ast.Definition),
		rootNames: make(map[ast.Operation]string),
	}

	for _, def := range doc.Definitions {
		if def.BuiltIn || common.IsBuiltinName(def.Name) {
			continue
		}
		if _, ok := c.types[def.Name]; ok {
			return nil, &DuplicateLocalTypeError{Schema: schema, TypeName: def.Name}
		}
		c.types[def.Name] = def
		c.names = append(c.names, def.Name)
	}

	for _, ext := range doc.Extensions {
		if common.IsBuiltinName(ext.Name) {
			continue
		}
		target, ok := c.types[ext.Name]
		if !ok {
			// extension of a type owned by someone else, keep it as a definition
			c.types[ext.Name] = ext
			c.names = append(c.names, ext.Name)
			continue
		}
		c.types[ext.Name] = extendDefinition(target, ext)
	}

	c.resolveRootNames(doc)

	return c, nil
}

func (c *TypeCatalog) resolveRootNames(doc *ast.SchemaDocument) {
	for _, list := range []ast.SchemaDefinitionList{doc.Schema, doc.SchemaExtension} {
		for _, sd := range list {
			for _, ot := range sd.OperationTypes {
				c.rootNames[ot.Operation] = ot.Type
			}
		}
	}

	// without schema definition the default names are used
	if len(c.rootNames) > 0 {
		return
	}

	for op, name := range defaultRootNames {
		if def, ok := c.types[name]; ok && def.Kind == ast.Object {
			c.rootNames[op] = name
		}
	}
}

func (c *TypeCatalog) Get(name string) (*ast.Definition, bool) {
	def, ok := c.types[name]
	return def, ok
}

// Names returns all catalogued names in document order
func (c *TypeCatalog) Names() []string {
	return c.names
}

// RootType returns root object definition for operation
func (c *TypeCatalog) RootType(op ast.Operation) *ast.Definition {
	name, ok := c.rootNames[op]
	if !ok {
		return nil
	}
	def, ok := c.types[name]
	if !ok || def.Kind != ast.Object {
		return nil
	}
	return def
}

func (c *TypeCatalog) IsRootType(name string) bool {
	for _, op := range rootOperations {
		if def := c.RootType(op); def != nil && def.Name == name {
			return true
		}
	}
	return false
}

// extendDefinition returns copy of def with everything ext declares appended
func extendDefinition(def, ext *ast.Definition) *ast.Definition {
	res := common.CopyDefinition(def)

	for _, f := range ext.Fields {
		if res.Fields.ForName(f.Name) == nil {
			res.Fields = append(res.Fields, f)
		}
	}

	for _, v := range ext.EnumValues {
		if res.EnumValues.ForName(v.Name) == nil {
			res.EnumValues = append(res.EnumValues, v)
		}
	}

	res.Interfaces = appendMissing(res.Interfaces, ext.Interfaces...)
	res.Types = appendMissing(res.Types, ext.Types...)
	res.Directives = mergeDirectives(res.Directives, ext.Directives)

	return res
}
