package merger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func mustTypeInfo(t *testing.T, schema string, sdl string, name string) *TypeInfo {
	t.Helper()

	info, err := NewSchemaInfo(schema, mustParse(t, schema, sdl))
	require.NoError(t, err)

	def, ok := info.Catalog.Get(name)
	require.True(t, ok)

	return NewTypeInfo(def, info)
}

func TestMergeContextAddType(t *testing.T) {
	ctx := NewMergeContext(nil, RootFieldsKeepFirst)
	human := mustTypeInfo(t, "a", `type Human { id: ID }`, "Human")

	require.NoError(t, ctx.AddType(human.Definition, human))
	assert.True(t, ctx.Contains("Human"))

	err := ctx.AddType(human.Definition, human)

	var target *DuplicateMergedTypeError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "Human", target.TypeName)

	src, ok := ctx.Provenance().Get("Human", "id")
	require.True(t, ok)
	assert.Equal(t, "a", src)
}

func TestMergeContextUniqueName(t *testing.T) {
	ctx := NewMergeContext(nil, RootFieldsKeepFirst)
	status := mustTypeInfo(t, "b", `enum Status { RED }`, "Status")
	origins := Bucket{status}

	assert.Equal(t, "Status", ctx.UniqueName("Status", origins))

	for _, name := range []string{"Status", "b_Status", "b_Status_2"} {
		require.NoError(t, ctx.AddType(&ast.Definition{Kind: ast.Enum, Name: name}))
	}

	assert.Equal(t, "b_Status_3", ctx.UniqueName("Status", origins))
	assert.Equal(t, "b_Status_3", ctx.RenamedName("Status", origins))
}

func TestMergeContextCreateSchema(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		ctx := NewMergeContext(nil, RootFieldsKeepFirst)

		_, err := ctx.CreateSchema()

		var target *MissingQueryTypeError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, CodeMissingQueryType, target.Code())
	})

	t.Run("roots go first and stitching directives are added on use", func(t *testing.T) {
		ctx := NewMergeContext(nil, RootFieldsKeepFirst)

		require.NoError(t, ctx.AddType(&ast.Definition{Kind: ast.Scalar, Name: "Time"}))
		require.NoError(t, ctx.AddRootType(ast.Mutation, &ast.Definition{Kind: ast.Object, Name: "Mutation"}))
		require.NoError(t, ctx.AddRootType(ast.Query, &ast.Definition{
			Kind: ast.Object,
			Name: "Query",
			Fields: ast.FieldList{
				Delegate(&ast.FieldDefinition{Name: "now", Type: ast.NamedType("Time", nil)}, "a", ""),
			},
		}))

		doc, err := ctx.CreateSchema()
		require.NoError(t, err)

		assert.Equal(t, []string{"Query", "Mutation", "Time"}, definitionNames(doc))
		require.Len(t, doc.Directives, 1)
		assert.Equal(t, "delegate", doc.Directives[0].Name)
	})
}

func TestMergeContextAddDirectiveDefinition(t *testing.T) {
	ctx := NewMergeContext(nil, RootFieldsKeepFirst)

	ctx.AddDirectiveDefinition(&ast.DirectiveDefinition{Name: "skip", Locations: []ast.DirectiveLocation{ast.LocationField}})
	ctx.AddDirectiveDefinition(&ast.DirectiveDefinition{Name: "auth", Locations: []ast.DirectiveLocation{ast.LocationObject}})
	ctx.AddDirectiveDefinition(&ast.DirectiveDefinition{
		Name:        "auth",
		Description: "Requires authorization",
		Locations:   []ast.DirectiveLocation{ast.LocationObject, ast.LocationFieldDefinition},
	})

	require.Len(t, ctx.directives, 1)
	auth := ctx.directives[0]
	assert.Equal(t, "Requires authorization", auth.Description)
	assert.Equal(t, []ast.DirectiveLocation{ast.LocationObject, ast.LocationFieldDefinition}, auth.Locations)
}

func TestBucketPartition(t *testing.T) {
	status := mustTypeInfo(t, "a", `enum Status { RED }`, "Status")
	other := mustTypeInfo(t, "b", `union Status = A`, "Status")
	bucket := Bucket{status, other}

	enums, rest := bucket.Partition(OfKind(ast.Enum))

	assert.Equal(t, Bucket{status}, enums)
	assert.Equal(t, Bucket{other}, rest)
	assert.Len(t, bucket, 2)
	assert.Equal(t, []string{"a", "b"}, bucket.Sources())
	assert.Equal(t, []string{"a.Status(ENUM)", "b.Status(UNION)"}, bucket.Entries())

	assert.False(t, Bucket{}.All(OfKind(ast.Enum)))
}

func TestTypeInfoRename(t *testing.T) {
	status := mustTypeInfo(t, "billing-api", `enum Status { RED }`, "Status")

	renamed := status.Rename(status.CreateUniqueName())

	assert.Equal(t, "billing_api_Status", renamed.Name())
	assert.Equal(t, "Status", status.Name())
	assert.Same(t, status.Schema, renamed.Schema)
}
