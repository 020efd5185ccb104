package sys

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountLines(t *testing.T) {
	raw := "alice@example.com:hunter2\n" +
		"  bob@shop.io   pass  word \n" +
		"not an account line\n" +
		"\n" +
		"carol@mail.co.uk|x"

	lines := ParseAccountLines(raw)
	require.Len(t, lines, 3)
	assert.Equal(t, "alice@example.com:hunter2", lines[0])
	assert.Equal(t, "bob@shop.io pass word", lines[1])
	assert.Equal(t, "carol@mail.co.uk|x", lines[2])
}

func TestAddAccountsSkipsDuplicates(t *testing.T) {
	st := newTestStore(t)

	lines := []string{"a@x.com:1", "b@x.com:2"}
	added, total, err := st.AddAccounts("UberEats", lines)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, total)

	// Re-ingesting the same paste adds nothing.
	added, total, err = st.AddAccounts("ubereats", lines)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 2, total)

	// The skipped count in the reply covers in-queue duplicates only;
	// non-account lines never reach AddAccounts.
	reply := fmt.Sprintf(MsgAccountsAdded, added, "ubereats", total, len(lines)-added)
	assert.Contains(t, reply, "Skipped 2 duplicate line(s)")
}

func TestAddAccountsDedupesByNormalizedLine(t *testing.T) {
	st := newTestStore(t)

	_, _, err := st.AddAccounts("doordash", []string{"a@x.com  pass"})
	require.NoError(t, err)
	added, total, err := st.AddAccounts("doordash", []string{"  a@x.com pass  "})
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, total)
}

func TestDequeueAccountIsFIFO(t *testing.T) {
	st := newTestStore(t)

	_, _, err := st.AddAccounts("grubhub", []string{"first@x.com:1", "second@x.com:2", "third@x.com:3"})
	require.NoError(t, err)

	line, remaining, err := st.DequeueAccount("grubhub")
	require.NoError(t, err)
	assert.Equal(t, "first@x.com:1", line)
	assert.Equal(t, 2, remaining)

	line, remaining, err = st.DequeueAccount("Grubhub")
	require.NoError(t, err)
	assert.Equal(t, "second@x.com:2", line)
	assert.Equal(t, 1, remaining)
}

func TestDequeueRemovesEmptiedCategory(t *testing.T) {
	st := newTestStore(t)

	_, _, err := st.AddAccounts("postmates", []string{"only@x.com:1"})
	require.NoError(t, err)

	line, remaining, err := st.DequeueAccount("postmates")
	require.NoError(t, err)
	assert.Equal(t, "only@x.com:1", line)
	assert.Equal(t, 0, remaining)

	counts, err := st.ListAccounts()
	require.NoError(t, err)
	assert.NotContains(t, counts, "postmates")

	_, _, err = st.DequeueAccount("postmates")
	assert.ErrorIs(t, err, ErrEmptyCategory)
}

func TestDequeuedLineCanBeReadded(t *testing.T) {
	st := newTestStore(t)

	_, _, err := st.AddAccounts("late", []string{"a@x.com:1"})
	require.NoError(t, err)
	_, _, err = st.DequeueAccount("late")
	require.NoError(t, err)

	// Dedup only guards the current queue, handed-out lines may return.
	added, _, err := st.AddAccounts("late", []string{"a@x.com:1"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}

func TestClearAccounts(t *testing.T) {
	st := newTestStore(t)

	_, _, err := st.AddAccounts("instacart", []string{"a@x.com:1", "b@x.com:2"})
	require.NoError(t, err)

	removed, err := st.ClearAccounts("instacart")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = st.ClearAccounts("instacart")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestAccountCategoriesAreSorted(t *testing.T) {
	st := newTestStore(t)

	for _, category := range []string{"zebra", "Apple", "mango"} {
		_, _, err := st.AddAccounts(category, []string{category + "@x.com:1"})
		require.NoError(t, err)
	}

	categories, err := st.AccountCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, categories)
}

func TestAccountQueueSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenStore(dir)
	require.NoError(t, err)

	_, _, err = st.AddAccounts("persist", []string{"a@x.com:1", "b@x.com:2"})
	require.NoError(t, err)

	reopened, err := OpenStore(dir)
	require.NoError(t, err)
	line, remaining, err := reopened.DequeueAccount("persist")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com:1", line)
	assert.Equal(t, 1, remaining)
}
