package format

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// FormatSchemaDocument prints document keeping the order of its definitions,
// so equal documents give byte identical output
func FormatSchemaDocument(doc *ast.SchemaDocument) string {
	buf := bytes.NewBufferString("")
	defer buf.Reset()
	f := formatter.NewFormatter(buf)
	f.FormatSchemaDocument(doc)
	return buf.String()
}

// FormatSchema prints loaded schema, types are sorted by name
func FormatSchema(schema *ast.Schema) string {
	buf := bytes.NewBufferString("")
	defer buf.Reset()
	f := formatter.NewFormatter(buf)
	f.FormatSchema(schema)
	return buf.String()
}

// Normalize loads SDL and prints it back in canonical form. Two SDLs describing the
// same schema with types in different order normalize to the same string.
func Normalize(name, sdl string) (string, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: name, Input: sdl})
	if err != nil {
		return "", err
	}
	return FormatSchema(schema), nil
}

// NormalizeDocument normalizes merged document
func NormalizeDocument(doc *ast.SchemaDocument) (string, error) {
	return Normalize("merged", FormatSchemaDocument(doc))
}

var space = regexp.MustCompile(`\s+`)

// DebugFormat collapses document into a single line
func DebugFormat(doc *ast.SchemaDocument) string {
	v := FormatSchemaDocument(doc)

	v = strings.ReplaceAll(v, "\t", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	v = space.ReplaceAllString(v, " ")

	return strings.TrimSpace(v)
}
