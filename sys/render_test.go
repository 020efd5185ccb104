package sys

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver resolves channel names against a fixed name -> ID table.
type fakeResolver map[string]snowflake.ID

func (f fakeResolver) FindChannel(match func(name string) bool) (snowflake.ID, bool) {
	for name, id := range f {
		if match(name) {
			return id, true
		}
	}
	return 0, false
}

func TestRenderUserToken(t *testing.T) {
	out := RenderUserToken("hey (user), the (user) special is back", "<@42>")
	assert.Equal(t, "hey <@42>, the <@42> special is back", out)
}

func TestRenderChannelTokensExactNameWins(t *testing.T) {
	resolver := fakeResolver{
		"vouch-📸":     snowflake.ID(100),
		"old-vouches": snowflake.ID(200),
	}
	out := RenderChannelTokens("drop proof in #vouch", resolver)
	assert.Equal(t, "drop proof in <#100>", out)
}

func TestRenderChannelTokensSubstringFallback(t *testing.T) {
	resolver := fakeResolver{"Vouch-Wall": snowflake.ID(300)}
	out := RenderChannelTokens("see #vouch", resolver)
	assert.Equal(t, "see <#300>", out)
}

func TestRenderChannelTokensLongFormNotMangled(t *testing.T) {
	resolver := fakeResolver{"vouch-📸": snowflake.ID(100)}
	out := RenderChannelTokens("post in #vouch-📸 please", resolver)
	assert.Equal(t, "post in <#100> please", out)
	assert.NotContains(t, out, "📸")
}

func TestRenderChannelTokensCasino(t *testing.T) {
	resolver := fakeResolver{"♠♥casino♣♦": snowflake.ID(500)}
	out := RenderChannelTokens("spin at #casino or #♠♥casino♣♦", resolver)
	assert.Equal(t, "spin at <#500> or <#500>", out)
}

func TestRenderChannelTokensUnresolvedStaysPlain(t *testing.T) {
	out := RenderChannelTokens("go to #vouch", fakeResolver{})
	assert.Equal(t, "go to #vouch", out)

	out = RenderChannelTokens("go to #vouch", nil)
	assert.Equal(t, "go to #vouch", out)
}

func TestTimeSlot(t *testing.T) {
	cases := map[int]string{
		0:  "overnight",
		4:  "overnight",
		5:  "morning",
		11: "morning",
		12: "afternoon",
		16: "afternoon",
		17: "evening",
		22: "evening",
		23: "overnight",
	}
	for hour, want := range cases {
		assert.Equal(t, want, TimeSlot(hour), "hour %d", hour)
	}
}

func TestFormatMemberCount(t *testing.T) {
	assert.Equal(t, "1,234", FormatMemberCount(1234))
	assert.Equal(t, "987", FormatMemberCount(987))
}

func TestComposeWelcome(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	out := ComposeWelcome("welcome (user)!", "<@77>", 1234, now)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "welcome <@77>!", lines[0])
	assert.Contains(t, TimeOfDaySnippets["morning"], lines[1])
	assert.Contains(t, lines[2], "1,234")
	assert.Contains(t, RolloutSnippets, lines[3])
}

func TestComposeWelcomeUnknownCountSkipsMilestone(t *testing.T) {
	now := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)

	out := ComposeWelcome("hi (user)", "<@77>", 0, now)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, TimeOfDaySnippets["evening"], lines[1])
}

func TestComposeWelcomeConcurrent(t *testing.T) {
	// Join handlers each run on their own goroutine.
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				out := ComposeWelcome("welcome (user)!", "<@77>", 1234, now)
				assert.Len(t, strings.Split(out, "\n"), 4)
			}
		}()
	}
	wg.Wait()
}
