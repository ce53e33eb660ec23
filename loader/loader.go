package loader

import (
	"fmt"
	"io/fs"

	"github.com/buildbuildio/stitch/common"
	"github.com/buildbuildio/stitch/merger"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/exp/slices"
)

// Source points to SDL of one backend. SDL takes precedence over Path.
type Source struct {
	Name string
	Path string
	SDL  string
}

// SchemaLoader acquires source documents before merge starts
type SchemaLoader interface {
	LoadSchemas(...Source) ([]*merger.MergeInput, error)
	LoadExtensions(...string) ([]*ast.SchemaDocument, error)
}

// ParallelSchemaLoader reads and parses every source concurrently, results keep
// the order of sources
type ParallelSchemaLoader struct {
	FS fs.FS
}

var _ SchemaLoader = &ParallelSchemaLoader{}

func (p *ParallelSchemaLoader) LoadSchemas(sources ...Source) ([]*merger.MergeInput, error) {
	type inner struct {
		input *merger.MergeInput
		index int
	}

	var acc []*inner

	res, err := common.AsyncMapReduce(lo.Range(len(sources)), acc, func(i int) (*inner, error) {
		doc, err := p.load(sources[i])
		if err != nil {
			return nil, fmt.Errorf("unable to load schema %s: %w", sources[i].Name, err)
		}
		return &inner{input: &merger.MergeInput{Name: sources[i].Name, Document: doc}, index: i}, nil
	}, func(acc []*inner, value *inner) []*inner {
		return append(acc, value)
	})

	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(res, func(a, b *inner) bool {
		return a.index < b.index
	})

	return lo.Map(res, func(t *inner, _ int) *merger.MergeInput { return t.input }), nil
}

func (p *ParallelSchemaLoader) LoadExtensions(paths ...string) ([]*ast.SchemaDocument, error) {
	sources := lo.Map(paths, func(path string, _ int) Source {
		return Source{Name: path, Path: path}
	})

	inputs, err := p.LoadSchemas(sources...)
	if err != nil {
		return nil, err
	}

	return lo.Map(inputs, func(in *merger.MergeInput, _ int) *ast.SchemaDocument { return in.Document }), nil
}

func (p *ParallelSchemaLoader) load(source Source) (*ast.SchemaDocument, error) {
	input := source.SDL
	name := source.Name

	if input == "" {
		if p.FS == nil {
			return nil, fmt.Errorf("no sdl and no file system to read %s from", source.Path)
		}
		b, err := fs.ReadFile(p.FS, source.Path)
		if err != nil {
			return nil, err
		}
		input = string(b)
		name = source.Path
	}

	return ParseSDL(name, input)
}

// ParseSDL parses type system document
func ParseSDL(name, input string) (*ast.SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: input})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
