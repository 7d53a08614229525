package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testDoc struct {
	Items []string `json:"items"`
}

func TestLoad_MissingCollectionIsEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	assert.NoError(t, err)

	var doc testDoc
	err = store.Load("operations", &doc)
	assert.NoError(t, err)
	assert.Empty(t, doc.Items)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	assert.NoError(t, err)

	err = store.Save("operations", testDoc{Items: []string{"a", "b"}})
	assert.NoError(t, err)

	var doc testDoc
	err = store.Load("operations", &doc)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, doc.Items)
}

func TestSave_OverwritesWholeDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	assert.NoError(t, err)

	assert.NoError(t, store.Save("balances", testDoc{Items: []string{"old", "older"}}))
	assert.NoError(t, store.Save("balances", testDoc{Items: []string{"new"}}))

	var doc testDoc
	assert.NoError(t, store.Load("balances", &doc))
	assert.Equal(t, []string{"new"}, doc.Items)

	// no leftover temp files after the rename
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "balances.json", entries[0].Name())
}

func TestLoad_CorruptDocumentIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	assert.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644)
	assert.NoError(t, err)

	var doc testDoc
	err = store.Load("users", &doc)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLock_SerializesMutations(t *testing.T) {
	store, err := NewStore(t.TempDir())
	assert.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := store.Lock("operations")
			defer unlock()

			var doc testDoc
			if err := store.Load("operations", &doc); err != nil {
				t.Error(err)
				return
			}
			doc.Items = append(doc.Items, "x")
			if err := store.Save("operations", doc); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	var doc testDoc
	assert.NoError(t, store.Load("operations", &doc))
	assert.Len(t, doc.Items, workers)
}
