package sys

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBarredUser(t *testing.T) {
	st := newTestStore(t)

	added, err := st.AddBarredUser("123456789012345678")
	require.NoError(t, err)
	assert.True(t, added)

	barred, err := st.IsBarredID("123456789012345678")
	require.NoError(t, err)
	assert.True(t, barred)

	barred, err = st.IsBarred(snowflake.ID(123456789012345678))
	require.NoError(t, err)
	assert.True(t, barred)
}

func TestAddBarredUserDedupes(t *testing.T) {
	st := newTestStore(t)

	added, err := st.AddBarredUser("999")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = st.AddBarredUser("999")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestBarredListIsSorted(t *testing.T) {
	st := newTestStore(t)

	for _, id := range []string{"300", "100", "200"} {
		_, err := st.AddBarredUser(id)
		require.NoError(t, err)
	}

	users, err := st.BarredUsers()
	require.NoError(t, err)
	assert.IsIncreasing(t, users)
}

func TestUnknownUserIsNotBarred(t *testing.T) {
	st := newTestStore(t)

	barred, err := st.IsBarredID("42")
	require.NoError(t, err)
	assert.False(t, barred)
}

func TestBarredEditsTakeEffectWithoutReopen(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenStore(dir)
	require.NoError(t, err)

	// A second handle writing to the same directory stands in for an
	// out-of-band edit of the document.
	other, err := OpenStore(dir)
	require.NoError(t, err)
	_, err = other.AddBarredUser("777")
	require.NoError(t, err)

	barred, err := st.IsBarredID("777")
	require.NoError(t, err)
	assert.True(t, barred)
}
