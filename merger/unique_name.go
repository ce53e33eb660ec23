package merger

import (
	"fmt"

	"github.com/buildbuildio/stitch/common"
)

func createUniqueName(name, schema string) string {
	return common.SanitizeName(schema) + "_" + name
}

// UniqueName returns candidate number attempt for a colliding name.
// The first len(sources) candidates prefix the name with each contributing schema,
// after that the first schema prefix gets a counter suffix, so every attempt yields
// a different candidate.
func UniqueName(name string, sources []string, attempt int) string {
	if len(sources) == 0 {
		return fmt.Sprintf("%s_%d", name, attempt+1)
	}

	if attempt < len(sources) {
		return createUniqueName(name, sources[attempt])
	}

	return fmt.Sprintf("%s_%d", createUniqueName(name, sources[0]), attempt-len(sources)+2)
}
