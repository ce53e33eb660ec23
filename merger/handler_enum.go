package merger

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// EnumTypeMergeHandler merges enums having exactly the same set of values.
// Enums with different values are kept as separate types with unique names.
type EnumTypeMergeHandler struct{}

func (EnumTypeMergeHandler) Merge(ctx *MergeContext, bucket Bucket) (Bucket, error) {
	enums, rest := bucket.Partition(OfKind(ast.Enum))
	if len(enums) == 0 {
		return bucket, nil
	}

	for _, t := range enums {
		if len(t.Definition.EnumValues) == 0 {
			return nil, &MalformedTypeDefinitionError{
				Schema:   t.Schema.Name,
				TypeName: t.Name(),
				Kind:     t.Kind(),
				Reason:   "no values defined",
			}
		}
	}

	// every iteration removes at least the pivot from the pool
	pool := enums
	for len(pool) > 0 {
		pivot := pool[0]
		values := enumValueNames(pivot.Definition)

		compatible, unclassified := pool[1:].Partition(func(t *TypeInfo) bool {
			return common.IsSetEqual(values, enumValueNames(t.Definition))
		})

		group := append(Bucket{pivot}, compatible...)
		if err := mergeEnumGroup(ctx, group); err != nil {
			return nil, err
		}

		pool = unclassified
	}

	return rest, nil
}

func enumValueNames(def *ast.Definition) []string {
	return lo.Map(def.EnumValues, func(v *ast.EnumValueDefinition, _ int) string {
		return v.Name
	})
}

// mergeEnumGroup emits compatible enums as one type, values and their order
// come from the pivot
func mergeEnumGroup(ctx *MergeContext, group Bucket) error {
	pivot := group[0]
	def := common.CopyDefinition(pivot.Definition)

	if def.Description == "" {
		if t, ok := lo.Find(group, func(t *TypeInfo) bool { return t.Definition.Description != "" }); ok {
			def.Description = t.Definition.Description
		}
	}

	for i, v := range def.EnumValues {
		if v.Description != "" {
			continue
		}
		for _, t := range group[1:] {
			other := t.Definition.EnumValues.ForName(v.Name)
			if other != nil && other.Description != "" {
				withDescription := *v
				withDescription.Description = other.Description
				def.EnumValues[i] = &withDescription
				break
			}
		}
	}

	for _, t := range group[1:] {
		def.Directives = mergeDirectives(def.Directives, t.Definition.Directives)
	}

	if ctx.Contains(def.Name) {
		original := def.Name
		def = MarkRenamed(def, original, pivot.Schema.Name)
		def.Name = ctx.RenamedName(original, group)
	}

	return ctx.AddType(def, group...)
}
