package uploader

import (
	"testing"

	"github.com/Station-Manager/datafields"
	"github.com/stretchr/testify/assert"
)

func TestAreDifferent(t *testing.T) {
	a := datafields.File{Filename: "a.png", FileSize: 10}
	tests := []struct {
		name string
		a    []datafields.File
		b    []datafields.File
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: false},
		{name: "nil and empty", a: nil, b: []datafields.File{}, want: false},
		{name: "length differs", a: []datafields.File{a}, b: nil, want: true},
		{name: "same file, other metadata", a: []datafields.File{a}, b: []datafields.File{{Filename: "a.png", FileURL: "https://x/a.png"}}, want: false},
		{name: "other filename", a: []datafields.File{a}, b: []datafields.File{{Filename: "b.png"}}, want: true},
		{name: "local vs uploaded", a: []datafields.File{{Name: "a.png"}}, b: []datafields.File{a}, want: true},
		{name: "same local file", a: []datafields.File{{Name: "a.png", FilePath: "/x"}}, b: []datafields.File{{Name: "a.png", FilePath: "/y"}}, want: false},
		{name: "order matters", a: []datafields.File{{Filename: "a"}, {Filename: "b"}}, b: []datafields.File{{Filename: "b"}, {Filename: "a"}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Comparator{}.AreDifferent(tt.a, tt.b))
			assert.Equal(t, tt.want, AreFileListsDifferent(tt.b, tt.a))
		})
	}
}
