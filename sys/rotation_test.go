package sys

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcomeRotationIsCyclic(t *testing.T) {
	st := newTestStore(t)

	n := len(DefaultWelcomeMessages)
	var first []string
	for i := 0; i < n; i++ {
		msg, err := st.NextWelcomeMessage()
		require.NoError(t, err)
		assert.Equal(t, DefaultWelcomeMessages[i], msg)
		first = append(first, msg)
	}

	// A full second lap yields the same sequence.
	for i := 0; i < n; i++ {
		msg, err := st.NextWelcomeMessage()
		require.NoError(t, err)
		assert.Equal(t, first[i], msg)
	}
}

func TestEnjoyPeekDoesNotAdvance(t *testing.T) {
	st := newTestStore(t)

	peeked, err := st.PeekEnjoyMessage()
	require.NoError(t, err)
	again, err := st.PeekEnjoyMessage()
	require.NoError(t, err)
	assert.Equal(t, peeked, again)

	require.NoError(t, st.AdvanceEnjoyCursor())
	next, err := st.PeekEnjoyMessage()
	require.NoError(t, err)
	assert.NotEqual(t, peeked, next)
}

func TestNextEnjoyMessageAdvances(t *testing.T) {
	st := newTestStore(t)

	msg, err := st.NextEnjoyMessage()
	require.NoError(t, err)
	assert.Equal(t, DefaultEnjoyMessages[0], msg)

	peeked, err := st.PeekEnjoyMessage()
	require.NoError(t, err)
	assert.Equal(t, DefaultEnjoyMessages[1], peeked)
}

func TestRotationCursorSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenStore(dir)
	require.NoError(t, err)

	require.NoError(t, st.AdvanceEnjoyCursor())
	require.NoError(t, st.AdvanceEnjoyCursor())

	reopened, err := OpenStore(dir)
	require.NoError(t, err)
	msg, err := reopened.PeekEnjoyMessage()
	require.NoError(t, err)
	assert.Equal(t, DefaultEnjoyMessages[2], msg)
}

func TestEnjoyHealRestoresDroppedMessage(t *testing.T) {
	dir := t.TempDir()
	st, err := OpenStore(dir)
	require.NoError(t, err)

	// Corrupt the stored set down to 49 messages.
	set := MessageSet{Messages: DefaultEnjoyMessages[:49], Index: 7}
	raw, err := json.Marshal(set)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, enjoyFile), raw, 0644))

	healed, err := st.EnjoyMessages()
	require.NoError(t, err)
	assert.Len(t, healed.Messages, 50)
	assert.Equal(t, 0, healed.Index)
}

func TestEnjoyHealOnMissingUserToken(t *testing.T) {
	broken := MessageSet{Messages: append([]string{}, DefaultEnjoyMessages...)}
	broken.Messages[13] = "Thanks for ordering! Enjoy #casino"
	assert.True(t, needsEnjoyHeal(broken))
}

func TestEnjoyHealOnMissingCasino(t *testing.T) {
	msgs := make([]string, enjoyMessageCount)
	for i := range msgs {
		msgs[i] = "Thanks (user)!"
	}
	assert.True(t, needsEnjoyHeal(MessageSet{Messages: msgs}))
}

func TestEnjoyDefaultsPassHealCheck(t *testing.T) {
	assert.False(t, needsEnjoyHeal(MessageSet{Messages: DefaultEnjoyMessages}))
}

func TestWelcomeHealOnMissingPhrase(t *testing.T) {
	assert.False(t, needsWelcomeHeal(MessageSet{Messages: DefaultWelcomeMessages}))

	broken := MessageSet{Messages: []string{"Welcome (user)! Enjoy 50% off Uber Eats."}}
	assert.True(t, needsWelcomeHeal(broken), "template missing /daily and casino must trip the heal")

	assert.True(t, needsWelcomeHeal(MessageSet{}))
}

func TestWelcomeHealIsCaseInsensitive(t *testing.T) {
	msg := "Hey (user)! 50% OFF Uber Eats all week. Run /DAILY and hit the CASINO."
	assert.False(t, needsWelcomeHeal(MessageSet{Messages: []string{msg}}))
}

func TestDefaultEnjoyMessagesContract(t *testing.T) {
	require.Len(t, DefaultEnjoyMessages, 50)
	casino := false
	for i, msg := range DefaultEnjoyMessages {
		assert.Contains(t, msg, UserToken, "message %d", i)
		if strings.Contains(msg, "#casino") {
			casino = true
		}
	}
	assert.True(t, casino)
}
