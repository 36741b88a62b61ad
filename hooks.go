package voxnova

// HookContext carries one translation call through its hooks. Before
// hooks may rewrite Key or Args; after hooks may rewrite Result or Err.
type HookContext struct {
	Key    string
	Args   Args
	Result string
	// Missing reports that no catalog resolved the key and the result
	// degraded to the key itself.
	Missing bool
	Err     error
}

// Hook observes translation calls.
type Hook interface {
	BeforeTranslate(ctx *HookContext)
	AfterTranslate(ctx *HookContext)
}

// HookFuncs adapts bare functions to the Hook interface.
type HookFuncs struct {
	Before func(ctx *HookContext)
	After  func(ctx *HookContext)
}

func (h HookFuncs) BeforeTranslate(ctx *HookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h HookFuncs) AfterTranslate(ctx *HookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

// statusTranslator is implemented by translators that can report whether
// a key actually resolved.
type statusTranslator interface {
	translateStatus(key string, args Args) (string, bool, error)
}

// HookedTranslator decorates a Translator with before/after hooks.
type HookedTranslator struct {
	next  Translator
	hooks []Hook
}

var _ Translator = &HookedTranslator{}

// WrapWithHooks decorates next with the given hooks. Nil hooks are
// dropped; with no hooks left, next is returned unwrapped.
func WrapWithHooks(next Translator, hooks ...Hook) Translator {
	if next == nil {
		return nil
	}

	filtered := make([]Hook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	if len(filtered) == 0 {
		return next
	}

	return &HookedTranslator{next: next, hooks: filtered}
}

// Translate implements Translator.
func (t *HookedTranslator) Translate(key string, args ...Args) (string, error) {
	ctx := &HookContext{Key: key, Args: mergeArgs(args)}

	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	if st, ok := t.next.(statusTranslator); ok {
		result, found, err := st.translateStatus(ctx.Key, ctx.Args)
		ctx.Result, ctx.Missing, ctx.Err = result, !found, err
	} else {
		result, err := t.next.Translate(ctx.Key, ctx.Args)
		ctx.Result, ctx.Err = result, err
	}

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}

	return ctx.Result, ctx.Err
}

// T implements Translator.
func (t *HookedTranslator) T(key string, args ...Args) string {
	result, err := t.Translate(key, args...)
	if err != nil {
		return key
	}
	return result
}
