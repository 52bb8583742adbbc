package picture

import (
	"github.com/Station-Manager/datafields"
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	"github.com/rs/zerolog"
)

const (
	FieldType        = "picture"
	HandlerName      = "mmaModDataFieldPicture"
	DefaultComponent = "mmaModData"

	MsgMustSupplyValue = "mma.mod_data.errormustsupplyvalue"
)

// OfflineFiles is the queued "file" subfield of an offline entry.
type OfflineFiles struct {
	Online  []datafields.File `json:"online"`
	Offline int               `json:"offline"`
}

type Options struct {
	Component string         // FileSession namespace
	Logger    zerolog.Logger // nop by default
}

type Option func(*Options)

func WithComponent(c string) Option       { return func(o *Options) { o.Component = c } }
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.Logger = l } }

// Handler is the datafields.Handler of picture fields.
type Handler struct {
	session    datafields.FileSession
	comparator datafields.FileListComparator
	translator datafields.Translator
	options    Options
}

var _ datafields.Handler = (*Handler)(nil)

// New creates a picture handler reading pending files from session.
func New(session datafields.FileSession, comparator datafields.FileListComparator, translator datafields.Translator, opts ...Option) *Handler {
	o := Options{Component: DefaultComponent, Logger: zerolog.Nop()}
	for _, f := range opts {
		f(&o)
	}
	return &Handler{session: session, comparator: comparator, translator: translator, options: o}
}

// Register adds h to reg under the picture field type.
func Register(reg *datafields.Registry, h *Handler) {
	reg.RegisterHandler(HandlerName, FieldType, h)
}

func (h *Handler) SearchData(field datafields.Field, input datafields.InputData) []datafields.SearchParam {
	name := datafields.FieldName(field)
	value := input.Value(name)
	if value == "" {
		return nil
	}
	return []datafields.SearchParam{{Name: name, Value: value}}
}

// EditData returns the file entry (when files are pending) followed by the alttext
// entry (when one was typed).
func (h *Handler) EditData(field datafields.Field, input datafields.InputData) []datafields.EditValue {
	var values []datafields.EditValue
	if files := h.EditFiles(field); len(files) > 0 {
		values = append(values, datafields.EditValue{
			FieldID:  field.ID,
			Subfield: datafields.SubfieldFile,
			Files:    files,
		})
	}
	if alt := input.Value(datafields.SubfieldName(field, datafields.SubfieldAltText)); alt != "" {
		values = append(values, datafields.EditValue{
			FieldID:  field.ID,
			Subfield: datafields.SubfieldAltText,
			Value:    alt,
		})
	}
	return values
}

func (h *Handler) EditFiles(field datafields.Field) []datafields.File {
	return h.session.Files(h.options.Component, datafields.SessionKey(field))
}

func (h *Handler) HasChanged(field datafields.Field, input datafields.InputData, original *datafields.Content) bool {
	altText := input.Value(datafields.SubfieldName(field, datafields.SubfieldAltText))
	originalAltText := ""
	if original != nil {
		originalAltText = original.Content1.String
	}
	if altText != originalAltText {
		return true
	}
	return h.comparator.AreDifferent(h.EditFiles(field), committedFile(original))
}

// committedFile returns the stored file named by original.Content, if any.
func committedFile(original *datafields.Content) []datafields.File {
	if original == nil {
		return nil
	}
	for _, f := range original.Files {
		if f.Filename == original.Content.String {
			return []datafields.File{f}
		}
	}
	return nil
}

// Notification only inspects the first "file" entry. It is satisfied by a value or by
// attached files.
func (h *Handler) Notification(field datafields.Field, values []datafields.EditValue) string {
	if !field.Required {
		return ""
	}
	if len(values) == 0 {
		return h.translator.Translate(MsgMustSupplyValue)
	}
	for _, v := range values {
		if v.Subfield != datafields.SubfieldFile {
			continue
		}
		if v.Value != "" || len(v.Files) > 0 {
			return ""
		}
		break
	}
	return h.translator.Translate(MsgMustSupplyValue)
}

// OverrideData mutates original in place and returns it. A nil original yields a new
// Content. On a decoding error original is returned untouched.
func (h *Handler) OverrideData(original *datafields.Content, offline datafields.OfflineContent, offlineFiles []datafields.File) (*datafields.Content, error) {
	const op errors.Op = "picture.Handler.OverrideData"
	file, _, err := datafields.DecodeOffline[OfflineFiles](offline, datafields.SubfieldFile)
	if err != nil {
		return original, errors.New(op).Err(err)
	}
	altText, _, err := datafields.DecodeOffline[string](offline, datafields.SubfieldAltText)
	if err != nil {
		return original, errors.New(op).Err(err)
	}

	if original == nil {
		original = &datafields.Content{}
	}
	log := h.options.Logger
	switch {
	case file.Offline > 0 && len(offlineFiles) > 0:
		original.Content = null.StringFrom(offlineFiles[0].DisplayName())
		original.Files = []datafields.File{offlineFiles[0]}
		log.Debug().Int("field", original.FieldID).Str("file", original.Content.String).Msg("picture overridden by staged file")
	case len(file.Online) > 0:
		original.Content = null.StringFrom(file.Online[0].Filename)
		original.Files = []datafields.File{file.Online[0]}
		log.Debug().Int("field", original.FieldID).Str("file", original.Content.String).Msg("picture overridden by uploaded file")
	}
	original.Content1 = null.StringFrom(altText)
	return original, nil
}
