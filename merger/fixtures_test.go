package merger

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/buildbuildio/stitch/format"
	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

const delegateDirectiveSDL = `
	directive @delegate(
		path: String
		"The name of the schema to which this field shall be delegated to."
		schema: String!
	) on FIELD_DEFINITION
`

const renamedDirectiveSDL = `
	"Annotates the original name of a type."
	directive @renamed(
		"The original name of the annotated type."
		name: String!
		"The name of the schema to which this type belongs to."
		schema: String!
	) on SCALAR | OBJECT | INTERFACE | UNION | ENUM | INPUT_OBJECT
`

// schemaName gives inputs names a, b, c...
func schemaName(i int) string {
	return string(rune('a' + i))
}

func mustParse(t *testing.T, name, sdl string) *ast.SchemaDocument {
	t.Helper()

	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: sdl})
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func mustInputs(t *testing.T, inputs []string) []*MergeInput {
	t.Helper()

	var inps []*MergeInput
	for i, input := range inputs {
		inps = append(inps, &MergeInput{
			Name:     schemaName(i),
			Document: mustParse(t, schemaName(i), input),
		})
	}
	return inps
}

func mustRunMerger(t *testing.T, m Merger, inputs []string) (string, string) {
	t.Helper()

	res, err := m.Merge(mustInputs(t, inputs))
	if err != nil {
		panic(err)
	}

	btm, err := json.Marshal(res.Provenance)
	if err != nil {
		panic(err)
	}

	return format.FormatSchemaDocument(res.Document), string(btm)
}

func mustNormalize(sdl string) string {
	res, err := format.Normalize("schema", sdl)
	if err != nil {
		panic(fmt.Errorf("%w in\n%s", err, sdl))
	}
	return res
}

func isEqualSchemas(t *testing.T, expected, actual string) {
	t.Helper()

	assert.Equal(
		t,
		mustNormalize(expected),
		mustNormalize(actual),
		fmt.Sprintf("%s not equals to expected %s", actual, expected),
	)
}

func definitionNames(doc *ast.SchemaDocument) []string {
	var names []string
	for _, def := range doc.Definitions {
		names = append(names, def.Name)
	}
	return names
}
