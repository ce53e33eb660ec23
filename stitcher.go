package stitch

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/buildbuildio/stitch/format"
	"github.com/buildbuildio/stitch/gqlerrors"
	"github.com/buildbuildio/stitch/loader"
	"github.com/buildbuildio/stitch/merger"

	json "github.com/goccy/go-json"
	"github.com/vektah/gqlparser/v2/ast"
)

type Stitcher struct {
	document   *ast.SchemaDocument
	provenance merger.Provenance

	merger        merger.Merger
	mergerOptions []merger.Option
	loader        loader.SchemaLoader
	extensions    []string
	logger        *slog.Logger
}

type StitcherOption func(*Stitcher)

// WithMerger replaces default merger. It can't be combined with WithMergerOptions
// or WithExtensions, those configure the default merger.
func WithMerger(m merger.Merger) StitcherOption {
	return func(s *Stitcher) {
		s.merger = m
	}
}

func WithMergerOptions(options ...merger.Option) StitcherOption {
	return func(s *Stitcher) {
		s.mergerOptions = append(s.mergerOptions, options...)
	}
}

func WithLoader(l loader.SchemaLoader) StitcherOption {
	return func(s *Stitcher) {
		s.loader = l
	}
}

// WithExtensions adds extension documents loaded by the loader and applied after merge
func WithExtensions(paths ...string) StitcherOption {
	return func(s *Stitcher) {
		s.extensions = append(s.extensions, paths...)
	}
}

func WithLogger(l *slog.Logger) StitcherOption {
	return func(s *Stitcher) {
		s.logger = l
	}
}

// NewStitcher loads every source and merges them into one schema
func NewStitcher(sources []loader.Source, options ...StitcherOption) (*Stitcher, error) {
	s := new(Stitcher)

	for _, optionFunc := range options {
		optionFunc(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.loader == nil {
		s.loader = &loader.ParallelSchemaLoader{}
	}

	if s.merger != nil && (len(s.extensions) > 0 || len(s.mergerOptions) > 0) {
		return nil, errors.New("custom merger can't be used with merger options or extensions")
	}

	inputs, err := s.loader.LoadSchemas(sources...)
	if err != nil {
		return nil, fmt.Errorf("unable to load schemas: %w", err)
	}

	if s.merger == nil {
		opts := append([]merger.Option{merger.WithLogger(s.logger)}, s.mergerOptions...)

		if len(s.extensions) > 0 {
			docs, err := s.loader.LoadExtensions(s.extensions...)
			if err != nil {
				return nil, fmt.Errorf("unable to load extensions: %w", err)
			}
			opts = append(opts, merger.WithExtensions(docs...))
		}

		s.merger = merger.New(opts...)
	}

	// merge schemas into one
	mr, err := s.merger.Merge(inputs)
	if err != nil {
		return nil, fmt.Errorf("unable to merge schemas: %w", err)
	}

	s.document = mr.Document
	s.provenance = mr.Provenance

	return s, nil
}

func (s *Stitcher) Document() *ast.SchemaDocument {
	return s.document
}

func (s *Stitcher) Provenance() merger.Provenance {
	return s.provenance
}

// SDL returns merged schema as text
func (s *Stitcher) SDL() string {
	return format.FormatSchemaDocument(s.document)
}

// Handler serves merged SDL, provenance is served as JSON with ?provenance query param
func (s *Stitcher) Handler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		emitError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s is not allowed", r.Method))
		return
	}

	if r.URL.Query().Has("provenance") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		e := json.NewEncoder(w)
		e.Encode(s.provenance)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s.SDL()))
}

func emitError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]interface{}{
		"data":   nil,
		"errors": gqlerrors.FormatError(err),
	}

	e := json.NewEncoder(w)
	e.Encode(resp)
}
