package common

import (
	"strings"
	"sync"

	"github.com/buildbuildio/stitch/gqlerrors"
	"github.com/samber/lo"
	"github.com/vektah/gqlparser/v2/ast"
)

// IsSetEqual reports whether a and b hold the same distinct values, ignoring order
func IsSetEqual[T comparable](a []T, b []T) bool {
	ua, ub := lo.Uniq(a), lo.Uniq(b)
	if len(ua) != len(ub) {
		return false
	}

	set := make(map[T]struct{}, len(ua))
	for _, v := range ua {
		set[v] = struct{}{}
	}

	for _, v := range ub {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

func AsyncMapReduce[T, P, A any](
	payload []T,
	acc A,
	mapFunc func(field T) (P, error),
	reduceFunc func(acc A, value P) A,
) (A, gqlerrors.ErrorList) {
	var errs gqlerrors.ErrorList
	var wg sync.WaitGroup

	wg.Add(len(payload))

	resChan := make(chan P)
	defer close(resChan)

	errChan := make(chan error)
	defer close(errChan)

	doneChan := make(chan struct{})
	defer close(doneChan)

	for _, value := range payload {
		go func(v T) {
			mapRes, err := mapFunc(v)
			if err != nil {
				errChan <- err
				return
			}
			resChan <- mapRes
		}(value)
	}

	go func() {
		for {
			select {
			case res := <-resChan:
				acc = reduceFunc(acc, res)
				wg.Done()
			case err := <-errChan:
				errs = gqlerrors.ExtendErrorList(errs, err)
				wg.Done()
			case <-doneChan:
				return
			}
		}
	}()

	wg.Wait()

	doneChan <- struct{}{}

	if len(errs) > 0 {
		return acc, errs
	}

	return acc, nil
}

// SanitizeName turns an arbitrary source identifier into something usable as a GraphQL name prefix
func SanitizeName(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}

// StringValue builds a string literal value node
func StringValue(s string) *ast.Value {
	return &ast.Value{Kind: ast.StringValue, Raw: s}
}

// DirectiveArgument returns raw value of directive argument or empty string when it's absent
func DirectiveArgument(d *ast.Directive, name string) (string, bool) {
	if d == nil {
		return "", false
	}
	arg := d.Arguments.ForName(name)
	if arg == nil || arg.Value == nil || arg.Value.Kind == ast.NullValue {
		return "", false
	}
	return arg.Value.Raw, true
}
