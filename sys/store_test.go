package sys

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := OpenStore(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestOpenStoreMaterializesDefaults(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenStore(dir)
	require.NoError(t, err)

	for _, name := range []string{
		commandsFile, linksFile, enjoyFile, welcomeFile, barredFile, accountsFile,
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist after open", name)
	}
}

func TestOpenStoreSeedsBarredUser(t *testing.T) {
	st := newTestStore(t)

	barred, err := st.IsBarredID(DefaultBarredUserIDs[0])
	require.NoError(t, err)
	assert.True(t, barred)
}

func TestMalformedDocumentIsRebuilt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, commandsFile), []byte("{not json"), 0644))

	st, err := OpenStore(dir)
	require.NoError(t, err)

	cmds, err := st.CustomCommands()
	require.NoError(t, err)
	assert.Empty(t, cmds)

	// The rebuilt file must parse again.
	raw, err := os.ReadFile(filepath.Join(dir, commandsFile))
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}

func TestLegacyMigration(t *testing.T) {
	dir := t.TempDir()

	// Simulate an old deployment that wrote next to the binary.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	legacyDir := t.TempDir()
	require.NoError(t, os.Chdir(legacyDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	legacy := map[string]string{"vouchinfo": "Post proof in the vouch channel!"}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(commandsFile, raw, 0644))

	st, err := OpenStore(dir)
	require.NoError(t, err)

	cmds, err := st.CustomCommands()
	require.NoError(t, err)
	assert.Equal(t, "Post proof in the vouch channel!", cmds["vouchinfo"])

	// The legacy file stays behind; migration copies, never moves.
	_, err = os.Stat(filepath.Join(legacyDir, commandsFile))
	assert.NoError(t, err)
}

func TestLegacyMigrationNeverOverwrites(t *testing.T) {
	dir := t.TempDir()

	current := map[string]string{"rules": "current"}
	raw, err := json.Marshal(current)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, commandsFile), raw, 0644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	legacyDir := t.TempDir()
	require.NoError(t, os.Chdir(legacyDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	stale, err := json.Marshal(map[string]string{"rules": "stale"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(commandsFile, stale, 0644))

	st, err := OpenStore(dir)
	require.NoError(t, err)

	cmds, err := st.CustomCommands()
	require.NoError(t, err)
	assert.Equal(t, "current", cmds["rules"])
}

func TestSaveDocumentLeavesNoTempFiles(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.CreateCustomCommand("promo", "50% off today"))

	entries, err := os.ReadDir(st.Dir())
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp-")
	}
}
