package sys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomCommand(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.CreateCustomCommand("Ping", "pong"))

	response, ok, err := st.CustomCommand("ping")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pong", response)

	// Lookup normalizes the same way creation does.
	_, ok, err = st.CustomCommand("  PING ")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.ErrorIs(t, st.CreateCustomCommand("PING", "other"), ErrCommandExists)
}

func TestUpdateCustomCommand(t *testing.T) {
	st := newTestStore(t)

	assert.ErrorIs(t, st.UpdateCustomCommand("missing", "x"), ErrUnknownCommand)

	require.NoError(t, st.CreateCustomCommand("rules", "be nice"))
	require.NoError(t, st.UpdateCustomCommand("RULES", "be nicer"))

	response, ok, err := st.CustomCommand("rules")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "be nicer", response)
}

func TestDeleteCustomCommand(t *testing.T) {
	st := newTestStore(t)

	assert.ErrorIs(t, st.DeleteCustomCommand("missing"), ErrUnknownCommand)

	require.NoError(t, st.CreateCustomCommand("faq", "read the pins"))
	require.NoError(t, st.DeleteCustomCommand("faq"))

	_, ok, err := st.CustomCommand("faq")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCustomCommandsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenStore(dir)
	require.NoError(t, err)
	require.NoError(t, st.CreateCustomCommand("vouch", "post in #vouch"))

	reopened, err := OpenStore(dir)
	require.NoError(t, err)
	response, ok, err := reopened.CustomCommand("vouch")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "post in #vouch", response)
}
