package merger

import (
	"io"
	"log/slog"

	"github.com/vektah/gqlparser/v2/ast"
)

type MergeResult struct {
	Document   *ast.SchemaDocument
	Provenance Provenance
}

type MergeInput struct {
	// Name identifies the schema, it's used for delegation and unique names
	Name     string
	Document *ast.SchemaDocument
}

// Merger is an interface for structs that are capable of taking a list of schemas and returning something that resembles
// a "merge" of those schemas.
type Merger interface {
	Merge([]*MergeInput) (*MergeResult, error)
}

// RootFieldPolicy decides what happens with a root field defined by several schemas
type RootFieldPolicy int

const (
	// RootFieldsKeepFirst keeps the field of the first schema
	RootFieldsKeepFirst RootFieldPolicy = iota
	// RootFieldsRename prefixes later fields with their schema name
	RootFieldsRename
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type SchemaMerger struct {
	handlers        []TypeMergeHandler
	typeRewriters   []TypeRewriter
	docRewriters    []DocumentRewriter
	extensions      []*ast.SchemaDocument
	rootFieldPolicy RootFieldPolicy
	logger          *slog.Logger
}

var _ Merger = &SchemaMerger{}

type Option func(*SchemaMerger)

// WithMergeHandlers appends handlers after the default ones
func WithMergeHandlers(handlers ...TypeMergeHandler) Option {
	return func(m *SchemaMerger) {
		m.handlers = append(m.handlers, handlers...)
	}
}

func WithTypeRewriters(rewriters ...TypeRewriter) Option {
	return func(m *SchemaMerger) {
		m.typeRewriters = append(m.typeRewriters, rewriters...)
	}
}

func WithDocumentRewriters(rewriters ...DocumentRewriter) Option {
	return func(m *SchemaMerger) {
		m.docRewriters = append(m.docRewriters, rewriters...)
	}
}

// WithExtensions adds documents applied after all schemas are merged
func WithExtensions(docs ...*ast.SchemaDocument) Option {
	return func(m *SchemaMerger) {
		m.extensions = append(m.extensions, docs...)
	}
}

func WithRootFieldPolicy(p RootFieldPolicy) Option {
	return func(m *SchemaMerger) {
		m.rootFieldPolicy = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *SchemaMerger) {
		m.logger = l
	}
}

func New(options ...Option) *SchemaMerger {
	m := &SchemaMerger{logger: discardLogger}

	for _, optionFunc := range options {
		optionFunc(m)
	}

	if m.logger == nil {
		m.logger = discardLogger
	}

	return m
}
