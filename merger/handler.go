package merger

// TypeMergeHandler gets first refusal on a bucket. It merges the entries it's able to
// handle into the context and returns the untouched rest for the next handler.
type TypeMergeHandler interface {
	Merge(ctx *MergeContext, bucket Bucket) (Bucket, error)
}

type HandlerFunc func(ctx *MergeContext, bucket Bucket) (Bucket, error)

func (f HandlerFunc) Merge(ctx *MergeContext, bucket Bucket) (Bucket, error) {
	return f(ctx, bucket)
}

// DefaultHandlers returns handlers in the order they are consulted
func DefaultHandlers() []TypeMergeHandler {
	return []TypeMergeHandler{
		ScalarTypeMergeHandler{},
		InputObjectTypeMergeHandler{},
		RootTypeMergeHandler{},
		ObjectTypeMergeHandler{},
		InterfaceTypeMergeHandler{},
		UnionTypeMergeHandler{},
		EnumTypeMergeHandler{},
	}
}

// handlerChain dispatches bucket through handlers and fails if something is left
type handlerChain []TypeMergeHandler

func newHandlerChain(custom ...TypeMergeHandler) handlerChain {
	return append(handlerChain(DefaultHandlers()), custom...)
}

func (hc handlerChain) Merge(ctx *MergeContext, bucket Bucket) error {
	if len(bucket) == 0 {
		return nil
	}

	name := bucket.Name()
	rest := bucket

	for _, h := range hc {
		var err error
		rest, err = h.Merge(ctx, rest)
		if err != nil {
			return err
		}
		if len(rest) == 0 {
			return nil
		}
	}

	return &UnresolvedTypesError{TypeName: name, Entries: rest.Entries()}
}
