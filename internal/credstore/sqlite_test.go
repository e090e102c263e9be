package credstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "graphtrain.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Tokens(t *testing.T) {
	store := openTestStore(t)

	// Empty store yields empty tokens, not errors.
	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SetToken("access"))
	require.NoError(t, store.SetRefreshToken("refresh"))

	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "access", token)

	refresh, err := store.RefreshToken()
	require.NoError(t, err)
	assert.Equal(t, "refresh", refresh)

	// Overwriting replaces.
	require.NoError(t, store.SetToken("access-2"))
	token, _ = store.Token()
	assert.Equal(t, "access-2", token)

	require.NoError(t, store.ClearTokens())
	token, _ = store.Token()
	refresh, _ = store.RefreshToken()
	assert.Empty(t, token)
	assert.Empty(t, refresh)

	// Clearing an empty store is not an error.
	require.NoError(t, store.ClearTokens())
}

func TestSQLiteStore_TokensSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphtrain.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("persisted"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Token()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)
}

func TestSQLiteStore_Drafts(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Draft(5)
	assert.ErrorIs(t, err, ErrNoDraft)

	draft := &AttemptDraft{
		ExerciseID: 5,
		Responses:  map[string]string{"11": "The graph rises steadily."},
	}
	require.NoError(t, store.SaveDraft(draft))
	assert.NotEmpty(t, draft.ID, "SaveDraft assigns an ID when missing")

	loaded, err := store.Draft(5)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.Equal(t, map[string]string{"11": "The graph rises steadily."}, loaded.Responses)
	assert.WithinDuration(t, time.Now(), loaded.UpdatedAt, time.Minute)

	// One draft per exercise: saving again replaces responses.
	require.NoError(t, store.SaveDraft(&AttemptDraft{
		ID:         draft.ID,
		ExerciseID: 5,
		Responses:  map[string]string{"11": "revised", "12": "second"},
	}))
	loaded, err = store.Draft(5)
	require.NoError(t, err)
	assert.Len(t, loaded.Responses, 2)
	assert.Equal(t, "revised", loaded.Responses["11"])

	require.NoError(t, store.DeleteDraft(5))
	_, err = store.Draft(5)
	assert.ErrorIs(t, err, ErrNoDraft)

	// Deleting a missing draft is not an error.
	require.NoError(t, store.DeleteDraft(5))
}

func TestMemoryStore_MatchesInterfaceBehavior(t *testing.T) {
	store := NewMemoryStore()

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SetToken("tok"))
	require.NoError(t, store.ClearTokens())
	token, _ = store.Token()
	assert.Empty(t, token)

	_, err = store.Draft(1)
	assert.ErrorIs(t, err, ErrNoDraft)

	original := &AttemptDraft{ID: "d1", ExerciseID: 1, Responses: map[string]string{"1": "a"}}
	require.NoError(t, store.SaveDraft(original))

	loaded, err := store.Draft(1)
	require.NoError(t, err)
	loaded.Responses["1"] = "mutated"

	again, err := store.Draft(1)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Responses["1"], "Draft returns copies")
}
