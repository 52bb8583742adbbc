package datafields

// Builder provides a fluent API to construct a Registry with options and handlers pre-registered.
type Builder struct {
	opts     []Option
	handlers map[string]handlerEntry
	order    []string
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{handlers: make(map[string]handlerEntry)}
}

// WithOptions appends registry options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// AddHandler registers h under fieldType. A later call for the same type wins.
func (b *Builder) AddHandler(name, fieldType string, h Handler) *Builder {
	if _, ok := b.handlers[fieldType]; !ok {
		b.order = append(b.order, fieldType)
	}
	b.handlers[fieldType] = handlerEntry{name: name, handler: h}
	return b
}

// Build constructs a Registry using a single registry swap.
func (b *Builder) Build() *Registry {
	r := NewRegistry(b.opts...)
	reg := &handlerRegistry{byType: make(map[string]handlerEntry, len(b.handlers))}
	for _, t := range b.order {
		e := b.handlers[t]
		if e.handler == nil {
			continue
		}
		reg.byType[t] = e
		r.options.Logger.Debug().Str("type", t).Str("handler", e.name).Msg("field handler registered")
	}
	r.handlers.Store(reg)
	return r
}
