package datafields

import (
	"slices"
	"sync/atomic"

	"github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

type Options struct {
	Logger zerolog.Logger // receives registration and dispatch events; nop by default
}

type Option func(*Options)

func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }

type handlerEntry struct {
	name    string
	handler Handler
}

// handlerRegistry maps field-type tags to handlers and is swapped atomically (copy-on-write)
type handlerRegistry struct {
	byType map[string]handlerEntry
}

func (hr *handlerRegistry) clone(extra int) *handlerRegistry {
	next := &handlerRegistry{byType: make(map[string]handlerEntry, len(hr.byType)+extra)}
	for k, v := range hr.byType {
		next.byType[k] = v
	}
	return next
}

// Registry dispatches data-entry operations to the handler registered for each field type.
type Registry struct {
	handlers atomic.Value // holds *handlerRegistry
	options  Options
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	optsState := Options{Logger: zerolog.Nop()}
	for _, f := range opts {
		f(&optsState)
	}
	r.options = optsState
	r.handlers.Store(&handlerRegistry{byType: make(map[string]handlerEntry)})
	return r
}

// RegisterHandler makes h the handler of fieldType. Registering a nil handler removes the type.
func (r *Registry) RegisterHandler(name, fieldType string, h Handler) {
	log := r.options.Logger
	old := r.handlers.Load().(*handlerRegistry)
	next := old.clone(1)
	if h == nil {
		delete(next.byType, fieldType)
		r.handlers.Store(next)
		log.Debug().Str("type", fieldType).Msg("field handler removed")
		return
	}
	if prev, ok := old.byType[fieldType]; ok {
		log.Warn().Str("type", fieldType).Str("previous", prev.name).Str("handler", name).Msg("field handler replaced")
	}
	next.byType[fieldType] = handlerEntry{name: name, handler: h}
	r.handlers.Store(next)
	log.Debug().Str("type", fieldType).Str("handler", name).Msg("field handler registered")
}

// Handler returns the handler registered for fieldType.
func (r *Registry) Handler(fieldType string) (Handler, bool) {
	e, ok := r.handlers.Load().(*handlerRegistry).byType[fieldType]
	if !ok {
		return nil, false
	}
	return e.handler, true
}

// HandlerName returns the name the handler of fieldType was registered with.
func (r *Registry) HandlerName(fieldType string) string {
	return r.handlers.Load().(*handlerRegistry).byType[fieldType].name
}

func (r *Registry) HasHandler(fieldType string) bool {
	_, ok := r.Handler(fieldType)
	return ok
}

// FieldTypes lists the registered field types in lexical order.
func (r *Registry) FieldTypes() []string {
	reg := r.handlers.Load().(*handlerRegistry)
	out := make([]string, 0, len(reg.byType))
	for k := range reg.byType {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// --- single field dispatch ---

func (r *Registry) SearchData(field Field, input InputData) []SearchParam {
	if h, ok := r.Handler(field.Type); ok {
		return h.SearchData(field, input)
	}
	return nil
}

func (r *Registry) EditData(field Field, input InputData) []EditValue {
	if h, ok := r.Handler(field.Type); ok {
		return h.EditData(field, input)
	}
	return nil
}

func (r *Registry) EditFiles(field Field) []File {
	if h, ok := r.Handler(field.Type); ok {
		return h.EditFiles(field)
	}
	return nil
}

func (r *Registry) HasChanged(field Field, input InputData, original *Content) bool {
	if h, ok := r.Handler(field.Type); ok {
		return h.HasChanged(field, input, original)
	}
	return false
}

func (r *Registry) Notification(field Field, values []EditValue) string {
	if h, ok := r.Handler(field.Type); ok {
		return h.Notification(field, values)
	}
	return ""
}

// OverrideData returns original unchanged when no handler serves field.Type.
func (r *Registry) OverrideData(field Field, original *Content, offline OfflineContent, offlineFiles []File) (*Content, error) {
	const op errors.Op = "datafields.Registry.OverrideData"
	h, ok := r.Handler(field.Type)
	if !ok {
		return original, nil
	}
	merged, err := h.OverrideData(original, offline, offlineFiles)
	if err != nil {
		return original, errors.New(op).Err(err)
	}
	return merged, nil
}

// --- form aggregates ---

// FormSearchData concatenates the search parameters of all fields in order.
func (r *Registry) FormSearchData(fields []Field, input InputData) []SearchParam {
	var out []SearchParam
	for _, f := range fields {
		out = append(out, r.SearchData(f, input)...)
	}
	return out
}

// FormEditData concatenates the edit values of all fields in order.
func (r *Registry) FormEditData(fields []Field, input InputData) []EditValue {
	var out []EditValue
	for _, f := range fields {
		out = append(out, r.EditData(f, input)...)
	}
	return out
}

// FormHasChanged reports whether any field differs from its stored content.
func (r *Registry) FormHasChanged(fields []Field, input InputData, contents map[int]*Content) bool {
	for _, f := range fields {
		if r.HasChanged(f, input, contents[f.ID]) {
			return true
		}
	}
	return false
}

// FormNotifications validates every field against its own edit values and returns
// the non-empty messages keyed by field id.
func (r *Registry) FormNotifications(fields []Field, values []EditValue) map[int]string {
	byField := GroupByField(values)
	out := make(map[int]string)
	for _, f := range fields {
		if msg := r.Notification(f, byField[f.ID]); msg != "" {
			out[f.ID] = msg
		}
	}
	return out
}

// FormOverrideData applies offline edits to the contents of every field that has some.
// contents is updated in place (and allocated when nil) and returned.
func (r *Registry) FormOverrideData(fields []Field, contents map[int]*Content, offline map[int]OfflineContent, files map[int][]File) (map[int]*Content, error) {
	const op errors.Op = "datafields.Registry.FormOverrideData"
	if contents == nil {
		contents = make(map[int]*Content, len(offline))
	}
	for _, f := range fields {
		oc, ok := offline[f.ID]
		if !ok {
			continue
		}
		merged, err := r.OverrideData(f, contents[f.ID], oc, files[f.ID])
		if err != nil {
			r.options.Logger.Error().Err(err).Int("field", f.ID).Msg("applying offline data")
			return contents, errors.New(op).Err(err)
		}
		if merged != nil {
			contents[f.ID] = merged
		}
	}
	return contents, nil
}
