package merger

import (
	"github.com/buildbuildio/stitch/common"
	"github.com/vektah/gqlparser/v2/ast"
)

// UnionTypeMergeHandler never combines unions. The first one keeps the name,
// the others are emitted as separate renamed types.
type UnionTypeMergeHandler struct{}

func (UnionTypeMergeHandler) Merge(ctx *MergeContext, bucket Bucket) (Bucket, error) {
	if !bucket.All(OfKind(ast.Union)) {
		return bucket, nil
	}

	for _, t := range bucket {
		if len(t.Definition.Types) == 0 {
			return nil, &MalformedTypeDefinitionError{
				Schema:   t.Schema.Name,
				TypeName: t.Name(),
				Kind:     t.Kind(),
				Reason:   "no member types defined",
			}
		}
	}

	first := bucket[0]
	if err := emitMerged(ctx, Bucket{first}, common.CopyDefinition(first.Definition)); err != nil {
		return nil, err
	}

	for _, t := range bucket[1:] {
		name := ctx.RenamedName(t.Name(), Bucket{t})
		renamed := t.Rename(name)
		def := MarkRenamed(renamed.Definition, t.Name(), t.Schema.Name)

		ctx.Logger().Info(
			"union renamed",
			"union", t.Name(),
			"schema", t.Schema.Name,
			"name", name,
		)

		if err := ctx.AddType(def, t); err != nil {
			return nil, err
		}
	}

	return nil, nil
}
