// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/smart-selector/model"
	"github.com/gcbaptista/smart-selector/services"
)

// FixedSource is a random source that always draws the same index, clamped
// to the last valid one.
type FixedSource int

// Intn returns the fixed index.
func (s FixedSource) Intn(n int) int {
	if int(s) >= n {
		return n - 1
	}
	return int(s)
}

// WriteFiles creates one small file per name inside dir.
func WriteFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
}

// LaunchDir creates a temporary launch directory holding the named files.
func LaunchDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	WriteFiles(t, dir, names...)
	return dir
}

// AssociationCase is one request and the exact reply expected for it.
type AssociationCase struct {
	Name    string
	Queries []string
	Files   []string
	Want    model.Associations
}

// BasicAssociationCases covers a single match, no match, and an empty candidate list.
func BasicAssociationCases() []AssociationCase {
	return []AssociationCase{
		{
			Name:    "single matching candidate",
			Queries: []string{"I like alf."},
			Files:   []string{"alf_picture.png", "default.png"},
			Want:    model.Associations{"I like alf.": "alf_picture.png"},
		},
		{
			Name:    "no match yields the sentinel",
			Queries: []string{"What's up?"},
			Files:   []string{"default.png"},
			Want:    model.Associations{"What's up?": model.DefaultChoice},
		},
		{
			Name:    "empty candidate list",
			Queries: []string{"dog", "cat"},
			Files:   []string{},
			Want:    model.Associations{"dog": model.DefaultChoice, "cat": model.DefaultChoice},
		},
		{
			Name:    "matched by file name subtoken",
			Queries: []string{"throw a baby shower"},
			Files:   []string{"baby_shower.png", "dog_photo.png"},
			Want:    model.Associations{"throw a baby shower": "baby_shower.png"},
		},
	}
}

// RunAssociationCases runs each case against associator.
func RunAssociationCases(t *testing.T, associator services.Associator, cases []AssociationCase) {
	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			got := associator.Associate(model.AssociationRequest{Strings: tt.Queries, Files: tt.Files})
			assert.Equal(t, tt.Want, got)
		})
	}
}
