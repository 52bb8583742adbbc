// Package datafields provides the field-type handler contract and registry used by the
// data-entry module to build search queries, edit payloads and validation messages for
// each kind of field in a database activity.
//
// Every field type (picture, text, checkbox, ...) implements Handler. Handlers are
// registered once at composition time under their field-type tag and looked up by the
// form engine through a Registry.
//
// Basic Usage
//
//	reg := datafields.NewRegistry()
//	reg.RegisterHandler("mmaModDataFieldPicture", "picture", pictureHandler)
//	params := reg.FormSearchData(fields, input)
//
// # Input data
//
// Form input is a flat InputData map keyed by synthesized names: "f_<fieldid>" for the
// main value and "f_<fieldid>_<subfield>" for subfields. A value contributes only when
// it is non-empty.
//
// # Edit values
//
// Handlers turn input into EditValue entries ({fieldid, subfield, value|files}) which
// the submission pipeline sends as-is. Pending files for a field are read from a
// FileSession keyed by component and "<dataid>_<fieldid>".
//
// # Offline data
//
// Edits made while disconnected are stored per field as OfflineContent, a map from
// subfield to the raw JSON value that was queued. OverrideData folds them into the
// server Content for display.
//
// # Thread Safety
//
// The Registry is safe for concurrent use. Registration swaps a copy-on-write handler
// table, so lookups never block.
package datafields
