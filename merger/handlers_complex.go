package merger

import (
	"fmt"

	"github.com/buildbuildio/stitch/common"
	"github.com/vektah/gqlparser/v2/ast"
)

type fieldAdder func(res *ast.Definition, t *TypeInfo, f *ast.FieldDefinition)

// keepFirstField adds field unless one with the same name is already there
func keepFirstField(res *ast.Definition, _ *TypeInfo, f *ast.FieldDefinition) {
	if res.Fields.ForName(f.Name) == nil {
		res.Fields = append(res.Fields, f)
	}
}

// mergeDefinitions folds every definition of the bucket into a copy of the first one.
// Description is the first non empty one, interfaces and directives are unioned.
func mergeDefinitions(bucket Bucket, addField fieldAdder) *ast.Definition {
	res := common.CopyDefinition(bucket[0].Definition)
	res.Fields = nil

	for i, t := range bucket {
		def := t.Definition
		if res.Description == "" {
			res.Description = def.Description
		}
		if i > 0 {
			res.Interfaces = appendMissing(res.Interfaces, def.Interfaces...)
			res.Directives = mergeDirectives(res.Directives, def.Directives)
		}
		for _, f := range def.Fields {
			addField(res, t, f)
		}
	}

	return res
}

func requireFields(bucket Bucket) error {
	for _, t := range bucket {
		if len(t.Definition.Fields) == 0 {
			return &MalformedTypeDefinitionError{
				Schema:   t.Schema.Name,
				TypeName: t.Name(),
				Kind:     t.Kind(),
				Reason:   "no fields defined",
			}
		}
	}
	return nil
}

// emitMerged adds def under its own name or a derived one when the name is taken
func emitMerged(ctx *MergeContext, bucket Bucket, def *ast.Definition) error {
	name := ctx.UniqueName(def.Name, bucket)
	if name != def.Name {
		original := def.Name
		def = MarkRenamed(def, original, bucket[0].Schema.Name)
		def.Name = name
	}

	return ctx.AddType(def, bucket...)
}

type ScalarTypeMergeHandler struct{}

func (ScalarTypeMergeHandler) Merge(ctx *MergeContext, bucket Bucket) (Bucket, error) {
	if !bucket.All(OfKind(ast.Scalar)) {
		return bucket, nil
	}

	return nil, emitMerged(ctx, bucket, mergeDefinitions(bucket, keepFirstField))
}

type InputObjectTypeMergeHandler struct{}

func (InputObjectTypeMergeHandler) Merge(ctx *MergeContext, bucket Bucket) (Bucket, error) {
	if !bucket.All(OfKind(ast.InputObject)) {
		return bucket, nil
	}

	if err := requireFields(bucket); err != nil {
		return nil, err
	}

	return nil, emitMerged(ctx, bucket, mergeDefinitions(bucket, keepFirstField))
}

type ObjectTypeMergeHandler struct{}

func (ObjectTypeMergeHandler) Merge(ctx *MergeContext, bucket Bucket) (Bucket, error) {
	if !bucket.All(OfKind(ast.Object)) {
		return bucket, nil
	}

	if err := requireFields(bucket); err != nil {
		return nil, err
	}

	owner := bucket[0].Schema.Name
	def := mergeDefinitions(bucket, func(res *ast.Definition, t *TypeInfo, f *ast.FieldDefinition) {
		if res.Fields.ForName(f.Name) != nil {
			return
		}
		// fields of other schemas can't be resolved by the type owner
		if t.Schema.Name != owner {
			f = Delegate(f, t.Schema.Name, "")
		}
		res.Fields = append(res.Fields, f)
	})

	return nil, emitMerged(ctx, bucket, def)
}

type InterfaceTypeMergeHandler struct{}

func (InterfaceTypeMergeHandler) Merge(ctx *MergeContext, bucket Bucket) (Bucket, error) {
	if !bucket.All(OfKind(ast.Interface)) {
		return bucket, nil
	}

	if err := requireFields(bucket); err != nil {
		return nil, err
	}

	return nil, emitMerged(ctx, bucket, mergeDefinitions(bucket, keepFirstField))
}

// RootTypeMergeHandler merges query, mutation and subscription types. Every root field
// is annotated with the schema it has to be delegated to.
type RootTypeMergeHandler struct{}

func (RootTypeMergeHandler) Merge(ctx *MergeContext, bucket Bucket) (Bucket, error) {
	if !bucket.All(func(t *TypeInfo) bool { return t.IsRootType() }) {
		return bucket, nil
	}

	op := bucket[0].Operation
	if !bucket.All(func(t *TypeInfo) bool { return t.Operation == op }) {
		return bucket, nil
	}

	if err := requireFields(bucket); err != nil {
		return nil, err
	}

	policy := ctx.RootFieldPolicy()
	def := mergeDefinitions(bucket, func(res *ast.Definition, t *TypeInfo, f *ast.FieldDefinition) {
		if res.Fields.ForName(f.Name) == nil {
			res.Fields = append(res.Fields, Delegate(f, t.Schema.Name, ""))
			return
		}

		if policy != RootFieldsRename {
			ctx.Logger().Warn(
				"root field is already defined, dropping",
				"operation", string(op),
				"field", f.Name,
				"schema", t.Schema.Name,
			)
			return
		}

		renamed := common.CopyField(f)
		renamed.Name = uniqueFieldName(res, f.Name, t.Schema.Name)
		res.Fields = append(res.Fields, Delegate(renamed, t.Schema.Name, f.Name))
	})
	def.Name = defaultRootNames[op]

	return nil, ctx.AddRootType(op, def, bucket...)
}

func uniqueFieldName(def *ast.Definition, name, schema string) string {
	candidate := createUniqueName(name, schema)
	for i := 2; def.Fields.ForName(candidate) != nil; i++ {
		candidate = fmt.Sprintf("%s_%d", createUniqueName(name, schema), i)
	}
	return candidate
}
