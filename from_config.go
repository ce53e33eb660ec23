package stitch

import (
	"io/fs"

	"github.com/buildbuildio/stitch/config"
	"github.com/buildbuildio/stitch/loader"
	"github.com/buildbuildio/stitch/merger"
	"github.com/buildbuildio/stitch/rewriters"
	"github.com/samber/lo"
)

// FromConfig translates config into sources and options. Paths are resolved against fsys.
func FromConfig(cfg *config.Config, fsys fs.FS) ([]loader.Source, []StitcherOption) {
	sources := lo.Map(cfg.Schemas, func(s config.Schema, _ int) loader.Source {
		return loader.Source{Name: s.Name, Path: s.Path}
	})

	var docRewriters []merger.DocumentRewriter
	var typeRewriters []merger.TypeRewriter

	if len(cfg.StripDirectives) > 0 {
		docRewriters = append(docRewriters, rewriters.StripDirectives{Names: cfg.StripDirectives})
	}

	for _, s := range cfg.Schemas {
		if s.IgnoreRootTypes {
			docRewriters = append(docRewriters, rewriters.RemoveRootTypes{Schema: s.Name})
		}
	}

	for _, r := range cfg.RemoveTypes {
		docRewriters = append(docRewriters, rewriters.RemoveType{Schema: r.Schema, Names: r.Names})
	}

	if cfg.ApplyRenameDirectives {
		docRewriters = append(docRewriters, rewriters.ApplyRenameDirectives{})
	}

	for _, r := range cfg.RenameTypes {
		docRewriters = append(docRewriters, rewriters.RenameType{Schema: r.Schema, From: r.From, To: r.To})
	}

	for _, r := range cfg.RenameFields {
		typeRewriters = append(typeRewriters, rewriters.RenameField{
			Schema:   r.Schema,
			TypeName: r.Type,
			From:     r.From,
			To:       r.To,
		})
	}

	mergerOptions := []merger.Option{
		merger.WithDocumentRewriters(docRewriters...),
		merger.WithTypeRewriters(typeRewriters...),
	}
	if cfg.RootFields == config.RootFieldsRename {
		mergerOptions = append(mergerOptions, merger.WithRootFieldPolicy(merger.RootFieldsRename))
	}

	options := []StitcherOption{
		WithLoader(&loader.ParallelSchemaLoader{FS: fsys}),
		WithMergerOptions(mergerOptions...),
	}
	if len(cfg.Extensions) > 0 {
		options = append(options, WithExtensions(cfg.Extensions...))
	}

	return sources, options
}
