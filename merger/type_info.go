package merger

import (
	"fmt"

	"github.com/buildbuildio/stitch/common"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// SchemaInfo is a source document together with its name and catalog
type SchemaInfo struct {
	Name     string
	Document *ast.SchemaDocument
	Catalog  *TypeCatalog
}

func NewSchemaInfo(name string, doc *ast.SchemaDocument) (*SchemaInfo, error) {
	catalog, err := NewTypeCatalog(name, doc)
	if err != nil {
		return nil, err
	}

	return &SchemaInfo{Name: name, Document: doc, Catalog: catalog}, nil
}

// TypeInfo pairs a definition with the schema it was taken from. It is never modified,
// renaming produces a new value.
type TypeInfo struct {
	Definition *ast.Definition
	Schema     *SchemaInfo
	// Operation is set when the definition was taken from a root slot
	Operation ast.Operation
}

func NewTypeInfo(def *ast.Definition, schema *SchemaInfo) *TypeInfo {
	return &TypeInfo{Definition: def, Schema: schema}
}

func NewRootTypeInfo(op ast.Operation, def *ast.Definition, schema *SchemaInfo) *TypeInfo {
	return &TypeInfo{Definition: def, Schema: schema, Operation: op}
}

func (t *TypeInfo) Name() string {
	return t.Definition.Name
}

func (t *TypeInfo) Kind() ast.DefinitionKind {
	return t.Definition.Kind
}

func (t *TypeInfo) IsRootType() bool {
	return t.Operation != ""
}

// CreateUniqueName derives a name which is unlikely to collide with types of other schemas
func (t *TypeInfo) CreateUniqueName() string {
	return createUniqueName(t.Name(), t.Schema.Name)
}

// Rename returns a new TypeInfo with copied definition carrying the new name
func (t *TypeInfo) Rename(name string) *TypeInfo {
	def := common.CopyDefinition(t.Definition)
	def.Name = name
	return &TypeInfo{Definition: def, Schema: t.Schema, Operation: t.Operation}
}

func (t *TypeInfo) String() string {
	return fmt.Sprintf("%s.%s(%s)", t.Schema.Name, t.Name(), t.Kind())
}

// Bucket holds same named definitions of different schemas. Operations never modify
// the receiver.
type Bucket []*TypeInfo

// Partition splits bucket keeping relative order in both parts
func (b Bucket) Partition(pred func(t *TypeInfo) bool) (matched Bucket, rest Bucket) {
	for _, t := range b {
		if pred(t) {
			matched = append(matched, t)
		} else {
			rest = append(rest, t)
		}
	}
	return matched, rest
}

func (b Bucket) All(pred func(t *TypeInfo) bool) bool {
	if len(b) == 0 {
		return false
	}
	for _, t := range b {
		if !pred(t) {
			return false
		}
	}
	return true
}

// Sources returns schema names of the bucket in order, without repetitions
func (b Bucket) Sources() []string {
	return lo.Uniq(lo.Map(b, func(t *TypeInfo, _ int) string { return t.Schema.Name }))
}

func (b Bucket) Name() string {
	if len(b) == 0 {
		return ""
	}
	return b[0].Name()
}

func (b Bucket) Entries() []string {
	return lo.Map(b, func(t *TypeInfo, _ int) string { return t.String() })
}

// OfKind returns a predicate matching non root definitions of the kind
func OfKind(kind ast.DefinitionKind) func(t *TypeInfo) bool {
	return func(t *TypeInfo) bool {
		return !t.IsRootType() && t.Kind() == kind
	}
}
