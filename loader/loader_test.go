package loader

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSchemasKeepsOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"users.graphql":   {Data: []byte(`type Query { me: String }`)},
		"billing.graphql": {Data: []byte(`type Query { invoices: [String] }`)},
	}

	l := &ParallelSchemaLoader{FS: fsys}

	var sources []Source
	for i := 0; i < 10; i++ {
		sources = append(sources, Source{Name: "users" + string(rune('0'+i)), Path: "users.graphql"})
	}
	sources = append(sources, Source{Name: "billing", Path: "billing.graphql"})
	sources = append(sources, Source{Name: "inline", SDL: `type Query { inline: Int }`})

	inputs, err := l.LoadSchemas(sources...)
	require.NoError(t, err)
	require.Len(t, inputs, len(sources))

	for i, input := range inputs {
		assert.Equal(t, sources[i].Name, input.Name)
	}

	assert.NotNil(t, inputs[10].Document.Definitions.ForName("Query").Fields.ForName("invoices"))
	assert.NotNil(t, inputs[11].Document.Definitions.ForName("Query").Fields.ForName("inline"))
}

func TestLoadSchemasErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		l := &ParallelSchemaLoader{FS: fstest.MapFS{}}

		_, err := l.LoadSchemas(Source{Name: "users", Path: "users.graphql"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load schema users")
	})

	t.Run("no file system", func(t *testing.T) {
		l := &ParallelSchemaLoader{}

		_, err := l.LoadSchemas(Source{Name: "users", Path: "users.graphql"})
		require.Error(t, err)
	})

	t.Run("invalid sdl", func(t *testing.T) {
		l := &ParallelSchemaLoader{}

		_, err := l.LoadSchemas(Source{Name: "broken", SDL: `type Query {`})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load schema broken")
	})
}

func TestLoadExtensions(t *testing.T) {
	fsys := fstest.MapFS{
		"ext/links.graphql": {Data: []byte(`extend type User { invoices: [String] }`)},
	}

	l := &ParallelSchemaLoader{FS: fsys}

	docs, err := l.LoadExtensions("ext/links.graphql")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.NotNil(t, docs[0].Extensions.ForName("User"))
}
