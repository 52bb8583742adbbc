package datafields

import (
	"strconv"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

const (
	SubfieldFile    = "file"
	SubfieldAltText = "alttext"
)

// Field describes one field instance of a database activity.
type Field struct {
	ID       int    `json:"id"`
	DataID   int    `json:"dataid"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// FieldName returns the input key of the field's main value, "f_<id>".
func FieldName(f Field) string {
	return "f_" + strconv.Itoa(f.ID)
}

// SubfieldName returns the input key of a subfield, "f_<id>_<subfield>".
func SubfieldName(f Field, subfield string) string {
	return FieldName(f) + "_" + subfield
}

// SessionKey is the key pending files of the field are staged under.
func SessionKey(f Field) string {
	return strconv.Itoa(f.DataID) + "_" + strconv.Itoa(f.ID)
}

// InputData is a snapshot of the values entered in a form.
type InputData map[string]string

// Value returns the value for key, "" when absent.
func (in InputData) Value(key string) string {
	if in == nil {
		return ""
	}
	return in[key]
}

// File describes either a file already on the server (Filename) or one staged
// locally and not yet uploaded (Name, FilePath).
type File struct {
	Filename     string `json:"filename,omitempty"`
	Name         string `json:"name,omitempty"`
	FilePath     string `json:"filepath,omitempty"`
	FileURL      string `json:"fileurl,omitempty"`
	MimeType     string `json:"mimetype,omitempty"`
	FileSize     int64  `json:"filesize,omitempty"`
	TimeModified int64  `json:"timemodified,omitempty"`
}

// DisplayName returns Filename, falling back to Name for local files.
func (f File) DisplayName() string {
	if f.Filename != "" {
		return f.Filename
	}
	return f.Name
}

// Content is the stored value of one field in one entry.
type Content struct {
	FieldID  int         `json:"fieldid"`
	RecordID int         `json:"recordid"`
	Content  null.String `json:"content"`
	Content1 null.String `json:"content1"`
	Content2 null.String `json:"content2"`
	Content3 null.String `json:"content3"`
	Content4 null.String `json:"content4"`
	Files    []File      `json:"files"`
}

// SearchParam is one name/value pair of an advanced search query.
type SearchParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EditValue is one entry of an edit submission.
type EditValue struct {
	FieldID  int    `json:"fieldid"`
	Subfield string `json:"subfield"`
	Value    string `json:"value,omitempty"`
	Files    []File `json:"files,omitempty"`
}

// OfflineContent holds the values queued offline for one field, keyed by subfield.
type OfflineContent map[string]boilertypes.JSON

// NewOfflineContent encodes each value as JSON.
func NewOfflineContent(values map[string]any) (OfflineContent, error) {
	const op errors.Op = "datafields.NewOfflineContent"
	out := make(OfflineContent, len(values))
	for k, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		out[k] = boilertypes.JSON(b)
	}
	return out, nil
}

// Has reports whether a non-empty value was queued for subfield.
func (oc OfflineContent) Has(subfield string) bool {
	return len(oc[subfield]) > 0
}

// GroupByField indexes edit values by their field id, preserving order.
func GroupByField(values []EditValue) map[int][]EditValue {
	out := make(map[int][]EditValue)
	for _, v := range values {
		out[v.FieldID] = append(out[v.FieldID], v)
	}
	return out
}
