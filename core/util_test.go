package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Rina", CleanString("  Rina\t"))
	assert.Equal(t, "rina@syakila.sch.id", CleanString(" RINA@syakila.sch.id ", true))
}

// go-test runs from the package directory; Getwd must still resolve the
// module root.
func TestGetwd(t *testing.T) {
	root := Getwd()
	_, err := os.Stat(filepath.Join(root, "go.mod"))
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(wd), root)
}
