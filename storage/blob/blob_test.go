package blob_test

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsyakila/backend/storage/blob"
)

func TestFileStore(t *testing.T) {
	dir, err := ioutil.TempDir("", "blob")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	store, err := blob.NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, blob.KeyStudents)
	assert.Equal(t, blob.ErrAbsent, err)

	require.NoError(t, store.Put(ctx, blob.KeyStudents, []byte(`[{"id":"s1"}]`)))
	doc, err := store.Get(ctx, blob.KeyStudents)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"s1"}]`, string(doc))

	// last write wins
	require.NoError(t, store.Put(ctx, blob.KeyStudents, []byte(`[]`)))
	doc, err = store.Get(ctx, blob.KeyStudents)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(doc))

	// no temp file is left behind after a successful put
	_, err = os.Stat(filepath.Join(dir, blob.KeyStudents+".json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestMemStore(t *testing.T) {
	store := blob.NewMemStore()
	ctx := context.Background()

	_, err := store.Get(ctx, blob.KeyClasses)
	assert.Equal(t, blob.ErrAbsent, err)

	doc := []byte(`[{"id":"c1"}]`)
	require.NoError(t, store.Put(ctx, blob.KeyClasses, doc))

	// callers cannot mutate the stored document through shared slices
	doc[1] = 'X'
	got, err := store.Get(ctx, blob.KeyClasses)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c1"}]`, string(got))

	got[1] = 'X'
	again, err := store.Get(ctx, blob.KeyClasses)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"c1"}]`, string(again))
}
