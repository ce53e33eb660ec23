package merger

import (
	"log/slog"
	"sort"

	"github.com/buildbuildio/stitch/common"
	"github.com/vektah/gqlparser/v2/ast"
)

// Merge merges root types first, then every other type name in order of the first
// schema defining it with alphabetical tie-break, then applies extensions.
// Any error aborts the whole run.
func (m *SchemaMerger) Merge(inputs []*MergeInput) (*MergeResult, error) {
	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	schemas, err := m.createSchemaInfos(inputs)
	if err != nil {
		return nil, err
	}

	chain := newHandlerChain(m.handlers...)
	ctx := NewMergeContext(m.logger, m.rootFieldPolicy)

	for _, op := range rootOperations {
		if err := chain.Merge(ctx, rootBucket(op, schemas)); err != nil {
			return nil, err
		}
	}

	buckets, err := m.createBuckets(schemas)
	if err != nil {
		return nil, err
	}

	for _, bucket := range buckets {
		if err := chain.Merge(ctx, bucket); err != nil {
			return nil, err
		}
	}

	for _, s := range schemas {
		for _, d := range s.Document.Directives {
			ctx.AddDirectiveDefinition(d)
		}
	}

	for _, ext := range m.extensions {
		if err := applyExtensionDocument(ctx, ext); err != nil {
			return nil, err
		}
	}

	doc, err := ctx.CreateSchema()
	if err != nil {
		return nil, err
	}

	m.logger.Info(
		"schemas merged",
		slog.Int("schemas", len(schemas)),
		slog.Int("types", len(doc.Definitions)),
		slog.Int("extensions", len(m.extensions)),
	)

	return &MergeResult{Document: doc, Provenance: ctx.Provenance()}, nil
}

func validateInputs(inputs []*MergeInput) error {
	if len(inputs) == 0 {
		return &InvalidInputError{Reason: "no schemas provided"}
	}

	seen := make(map[string]struct{}, len(inputs))
	for _, input := range inputs {
		switch {
		case input == nil || input.Document == nil:
			return &InvalidInputError{Reason: "schema document is missing"}
		case input.Name == "":
			return &InvalidInputError{Reason: "schema name is empty"}
		}
		if _, ok := seen[input.Name]; ok {
			return &InvalidInputError{Reason: "schema name " + input.Name + " is used more than once"}
		}
		seen[input.Name] = struct{}{}
	}

	return nil
}

func (m *SchemaMerger) createSchemaInfos(inputs []*MergeInput) ([]*SchemaInfo, error) {
	schemas := make([]*SchemaInfo, 0, len(inputs))

	for _, input := range inputs {
		doc := input.Document
		if len(m.docRewriters) > 0 {
			doc = rewriteDocument(m.docRewriters, input)
		}

		info, err := NewSchemaInfo(input.Name, doc)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, info)
	}

	return schemas, nil
}

func rootBucket(op ast.Operation, schemas []*SchemaInfo) Bucket {
	var bucket Bucket
	for _, s := range schemas {
		if def := s.Catalog.RootType(op); def != nil {
			bucket = append(bucket, NewRootTypeInfo(op, def, s))
		}
	}
	return bucket
}

// createBuckets applies type rewriters and groups non root definitions by their
// final name
func (m *SchemaMerger) createBuckets(schemas []*SchemaInfo) ([]Bucket, error) {
	firstSeen := make(map[string]int)
	perSchema := make([]map[string]*TypeInfo, len(schemas))

	for i, s := range schemas {
		perSchema[i] = make(map[string]*TypeInfo)

		for _, name := range s.Catalog.Names() {
			if s.Catalog.IsRootType(name) {
				continue
			}

			def, _ := s.Catalog.Get(name)
			def = rewriteType(m.typeRewriters, s, def)
			if def == nil {
				m.logger.Debug("type removed by rewriter", slog.String("schema", s.Name), slog.String("type", name))
				continue
			}

			if _, ok := perSchema[i][def.Name]; ok {
				return nil, &DuplicateLocalTypeError{Schema: s.Name, TypeName: def.Name}
			}
			perSchema[i][def.Name] = NewTypeInfo(def, s)

			if _, ok := firstSeen[def.Name]; !ok {
				firstSeen[def.Name] = i
			}
		}
	}

	names := make([]string, 0, len(firstSeen))
	for name := range firstSeen {
		names = append(names, name)
	}
	sort.Slice(names, func(a, b int) bool {
		if firstSeen[names[a]] != firstSeen[names[b]] {
			return firstSeen[names[a]] < firstSeen[names[b]]
		}
		return names[a] < names[b]
	})

	buckets := make([]Bucket, 0, len(names))
	for _, name := range names {
		var bucket Bucket
		for i := range schemas {
			if t, ok := perSchema[i][name]; ok {
				bucket = append(bucket, t)
			}
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}

func applyExtensionDocument(ctx *MergeContext, doc *ast.SchemaDocument) error {
	for _, d := range doc.Directives {
		ctx.AddDirectiveDefinition(d)
	}

	for _, def := range doc.Definitions {
		if def.BuiltIn || common.IsBuiltinName(def.Name) {
			continue
		}
		if err := ctx.AddType(def); err != nil {
			return err
		}
	}

	for _, ext := range doc.Extensions {
		target, ok := ctx.Lookup(ext.Name)
		if !ok {
			return &ExtensionTargetNotFoundError{TypeName: ext.Name}
		}

		extended := extendDefinition(target, ext)
		ctx.replace(extended)

		for _, f := range ext.Fields {
			if src, ok := delegatedSchema(f); ok {
				ctx.Provenance().Set(extended.Name, f.Name, src)
			}
		}
	}

	return nil
}
