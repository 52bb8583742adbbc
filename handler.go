package datafields

// Handler implements the data-entry operations of one field type.
//
// Operations are synchronous and must not perform I/O beyond the collaborator reads
// they are built with. Absence is reported with nil slices, false and "".
type Handler interface {
	// SearchData returns the advanced search parameters contributed by field, nil if none.
	SearchData(field Field, input InputData) []SearchParam

	// EditData returns the submission entries for field.
	EditData(field Field, input InputData) []EditValue

	// EditFiles returns the files pending upload for field.
	EditFiles(field Field) []File

	// HasChanged reports whether input differs from the stored content.
	HasChanged(field Field, input InputData, original *Content) bool

	// Notification returns a validation message for the field's values, "" when valid.
	Notification(field Field, values []EditValue) string

	// OverrideData folds offline edits into original and returns it.
	OverrideData(original *Content, offline OfflineContent, offlineFiles []File) (*Content, error)
}
