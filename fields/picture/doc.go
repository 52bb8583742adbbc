// Package picture implements the data-entry handler of "picture" fields: a single image
// plus an alternative text.
//
// Input keys are "f_<id>" (search) and "f_<id>_alttext" (edit). The image itself never
// travels through the form input; it is staged in the FileSession under
// "<dataid>_<id>" and submitted as the "file" subfield.
//
// Offline edits are queued as two subfields:
//
//	file:    {"offline": <number of files staged locally>, "online": [<already uploaded files>]}
//	alttext: "<text>"
//
// OverrideData prefers a locally staged file, then an uploaded one, and otherwise keeps the
// server image. It always takes the queued alternative text. The Content passed in is
// mutated and returned.
package picture
