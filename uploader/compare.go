// Package uploader holds the file-list helpers shared by the upload flows.
package uploader

import "github.com/Station-Manager/datafields"

// Comparator is the default datafields.FileListComparator.
type Comparator struct{}

var _ datafields.FileListComparator = Comparator{}

// AreDifferent reports whether a and b differ in length or, position by position, in
// Filename or Name. A nil list equals an empty one.
func (Comparator) AreDifferent(a, b []datafields.File) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i].Filename != b[i].Filename || a[i].Name != b[i].Name {
			return true
		}
	}
	return false
}

// AreFileListsDifferent is AreDifferent on the zero Comparator.
func AreFileListsDifferent(a, b []datafields.File) bool {
	return Comparator{}.AreDifferent(a, b)
}
