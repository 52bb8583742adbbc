package datafields

//go:generate mockgen -source=collaborators.go -destination=mock/collaborators_mock.go -package=mock

// FileSession holds the files attached to a form field before submission.
type FileSession interface {
	Files(component, id string) []File
}

// FileListComparator decides whether two file lists differ.
type FileListComparator interface {
	AreDifferent(a, b []File) bool
}

// Translator resolves a message key to a human readable string.
type Translator interface {
	Translate(key string) string
}
