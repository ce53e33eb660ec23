package merger

import (
	"log/slog"

	"github.com/buildbuildio/stitch/common"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// MergeContext accumulates merged definitions of a single merge run.
// It's owned by one run and must not be shared.
type MergeContext struct {
	names      map[string]struct{}
	types      ast.DefinitionList
	roots      map[ast.Operation]*ast.Definition
	directives ast.DirectiveDefinitionList
	provenance Provenance
	logger     *slog.Logger

	rootFieldPolicy RootFieldPolicy
}

func NewMergeContext(logger *slog.Logger, policy RootFieldPolicy) *MergeContext {
	if logger == nil {
		logger = discardLogger
	}

	return &MergeContext{
		names:           make(map[string]struct{}),
		roots:           make(map[ast.Operation]*ast.Definition),
		provenance:      make(Provenance),
		logger:          logger,
		rootFieldPolicy: policy,
	}
}

func (c *MergeContext) Logger() *slog.Logger {
	return c.logger
}

func (c *MergeContext) RootFieldPolicy() RootFieldPolicy {
	return c.rootFieldPolicy
}

func (c *MergeContext) Provenance() Provenance {
	return c.provenance
}

// Contains reports whether name is already taken by an emitted type
func (c *MergeContext) Contains(name string) bool {
	_, ok := c.names[name]
	return ok
}

// UniqueName returns name itself if it's free, otherwise the first free candidate
// derived from the origins' schema names
func (c *MergeContext) UniqueName(name string, origins Bucket) string {
	if !c.Contains(name) {
		return name
	}

	return c.RenamedName(name, origins)
}

// RenamedName returns the first free derived name, the natural name is never used
func (c *MergeContext) RenamedName(name string, origins Bucket) string {
	sources := origins.Sources()
	for attempt := 0; ; attempt++ {
		candidate := UniqueName(name, sources, attempt)
		if !c.Contains(candidate) {
			return candidate
		}
	}
}

// AddType emits definition into merged schema
func (c *MergeContext) AddType(def *ast.Definition, origins ...*TypeInfo) error {
	if c.Contains(def.Name) {
		return &DuplicateMergedTypeError{TypeName: def.Name}
	}

	c.names[def.Name] = struct{}{}
	c.types = append(c.types, def)
	c.record(def, origins)

	c.logger.Debug(
		"type merged",
		slog.String("type", def.Name),
		slog.String("kind", string(def.Kind)),
		slog.Any("sources", Bucket(origins).Sources()),
	)

	return nil
}

// AddRootType emits merged root type for the operation
func (c *MergeContext) AddRootType(op ast.Operation, def *ast.Definition, origins ...*TypeInfo) error {
	if _, ok := c.roots[op]; ok || c.Contains(def.Name) {
		return &DuplicateMergedTypeError{TypeName: def.Name}
	}

	c.names[def.Name] = struct{}{}
	c.roots[op] = def
	c.record(def, origins)

	c.logger.Debug(
		"root type merged",
		slog.String("operation", string(op)),
		slog.Int("fields", len(def.Fields)),
	)

	return nil
}

func (c *MergeContext) record(def *ast.Definition, origins []*TypeInfo) {
	c.provenance.AddSources(def.Name, Bucket(origins).Sources()...)
	if len(origins) > 0 && !origins[0].IsRootType() {
		c.provenance.SetOriginalName(def.Name, origins[0].Name())
	}

	for _, f := range def.Fields {
		if src, ok := delegatedSchema(f); ok {
			c.provenance.Set(def.Name, f.Name, src)
			continue
		}
		if len(origins) > 0 && (def.Kind == ast.Object || def.Kind == ast.Interface) {
			c.provenance.Set(def.Name, f.Name, fieldOrigin(f.Name, origins))
		}
	}
}

// Lookup returns emitted definition, root types included
func (c *MergeContext) Lookup(name string) (*ast.Definition, bool) {
	for _, def := range c.roots {
		if def.Name == name {
			return def, true
		}
	}
	def := c.types.ForName(name)
	return def, def != nil
}

// replace swaps emitted definition with the new version having the same name
func (c *MergeContext) replace(def *ast.Definition) {
	for op, root := range c.roots {
		if root.Name == def.Name {
			c.roots[op] = def
			return
		}
	}
	for i, t := range c.types {
		if t.Name == def.Name {
			c.types[i] = def
			return
		}
	}
}

// AddDirectiveDefinition merges directive definition by name, locations are unioned
func (c *MergeContext) AddDirectiveDefinition(def *ast.DirectiveDefinition) {
	if common.IsBuiltinDirective(def.Name) {
		return
	}

	for i, existing := range c.directives {
		if existing.Name != def.Name {
			continue
		}
		merged := *existing
		merged.Locations = lo.Uniq(append(append([]ast.DirectiveLocation(nil), existing.Locations...), def.Locations...))
		if merged.Description == "" {
			merged.Description = def.Description
		}
		c.directives[i] = &merged
		return
	}

	c.directives = append(c.directives, def)
}

// CreateSchema assembles merged document
func (c *MergeContext) CreateSchema() (*ast.SchemaDocument, error) {
	query, ok := c.roots[ast.Query]
	if !ok {
		return nil, &MissingQueryTypeError{}
	}

	doc := &ast.SchemaDocument{}

	c.addUsedStitchingDirectives()
	doc.Directives = append(doc.Directives, c.directives...)

	doc.Definitions = append(doc.Definitions, query)
	for _, op := range []ast.Operation{ast.Mutation, ast.Subscription} {
		if def, ok := c.roots[op]; ok {
			doc.Definitions = append(doc.Definitions, def)
		}
	}
	doc.Definitions = append(doc.Definitions, c.types...)

	return doc, nil
}

func (c *MergeContext) addUsedStitchingDirectives() {
	var usesDelegate, usesRenamed bool

	defs := append(lo.Values(c.roots), c.types...)
	for _, def := range defs {
		if def.Directives.ForName(common.RenamedDirectiveName) != nil {
			usesRenamed = true
		}
		for _, f := range def.Fields {
			if f.Directives.ForName(common.DelegateDirectiveName) != nil {
				usesDelegate = true
			}
		}
	}

	if usesDelegate && !c.hasDirective(common.DelegateDirectiveName) {
		c.directives = append(c.directives, DelegateDirectiveDefinition())
	}
	if usesRenamed && !c.hasDirective(common.RenamedDirectiveName) {
		c.directives = append(c.directives, RenamedDirectiveDefinition())
	}
}

func (c *MergeContext) hasDirective(name string) bool {
	return lo.ContainsBy(c.directives, func(d *ast.DirectiveDefinition) bool {
		return d.Name == name
	})
}
