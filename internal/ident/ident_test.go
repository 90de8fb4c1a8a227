package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPackageAndLocal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		identifier string
		wantPkg    string
		wantLocal  string
	}{
		{"bare name", "Book", "", "Book"},
		{"nested type path", "Book.Author", "", "Book.Author"},
		{"deeply nested type path", "Outer.Middle.Inner", "", "Outer.Middle.Inner"},
		{"package qualified", "com.library.Book", "com.library", "Book"},
		{"package qualified nested", "com.library.Book.Author", "com.library", "Book.Author"},
		{"absolute form", ".com.library.Book", "com.library", "Book"},
		{"absolute nested type path", ".Book.Author", "", "Book.Author"},
		{"single lower segment", "grpc", "", "grpc"},
		{"all lower segments", "com.library", "com.library", ""},
		{"empty", "", "", ""},
		{"lone dot", ".", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pkg, local := SplitPackageAndLocal(tt.identifier)
			assert.Equal(t, tt.wantPkg, pkg)
			assert.Equal(t, tt.wantLocal, local)
		})
	}
}

// Splitting is idempotent on the local component: a pure nested-type path
// always comes back unchanged with an empty package.
func TestSplitPackageAndLocalIdempotentOnLocal(t *testing.T) {
	t.Parallel()

	for _, identifier := range []string{"Book", "Book.Author", "A.B.C.D"} {
		pkg, local := SplitPackageAndLocal(identifier)
		assert.Empty(t, pkg)
		assert.Equal(t, identifier, local)

		pkg2, local2 := SplitPackageAndLocal(local)
		assert.Empty(t, pkg2)
		assert.Equal(t, local, local2)
	}
}

func TestIsNestedTypePath(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNestedTypePath("Book.Author"))
	assert.True(t, IsNestedTypePath(".Book.Author"))
	assert.False(t, IsNestedTypePath("Book"))
	assert.False(t, IsNestedTypePath("com.library.Book"))
	assert.False(t, IsNestedTypePath("com.library"))
}
