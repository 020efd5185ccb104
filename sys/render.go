package sys

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// UserToken is the placeholder replaced with the target member's mention in
// every template.
const UserToken = "(user)"

// ChannelResolver finds a text channel matching a name predicate. The
// gateway-cache implementation lives in the loader; tests supply fakes.
type ChannelResolver interface {
	FindChannel(match func(name string) bool) (snowflake.ID, bool)
}

// channelToken maps template hashtags onto a real channel, found by exact
// name first, then by substring. Tokens are listed longest first so the
// short form never mangles the long one.
type channelToken struct {
	tokens    []string
	exactName string
	substring string
}

var channelTokens = []channelToken{
	{tokens: []string{"#vouch-📸", "#vouch"}, exactName: "vouch-📸", substring: "vouch"},
	{tokens: []string{"#♠♥casino♣♦", "#casino"}, exactName: "♠♥casino♣♦", substring: "casino"},
}

// RenderUserToken substitutes every user placeholder with the mention.
func RenderUserToken(template, mention string) string {
	return strings.ReplaceAll(template, UserToken, mention)
}

// RenderChannelTokens replaces channel hashtags with clickable channel
// references. Tokens whose channel cannot be resolved stay as plain text.
func RenderChannelTokens(text string, resolver ChannelResolver) string {
	if resolver == nil {
		return text
	}
	for _, token := range channelTokens {
		exact := token.exactName
		id, ok := resolver.FindChannel(func(name string) bool { return name == exact })
		if !ok {
			sub := token.substring
			id, ok = resolver.FindChannel(func(name string) bool {
				return strings.Contains(strings.ToLower(name), sub)
			})
		}
		if !ok {
			continue
		}
		ref := fmt.Sprintf("<#%s>", id)
		for _, t := range token.tokens {
			text = strings.ReplaceAll(text, t, ref)
		}
	}
	return text
}

// TimeSlot buckets an hour of day into the welcome snippet slots.
func TimeSlot(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 23:
		return "evening"
	default:
		return "overnight"
	}
}

var countPrinter = message.NewPrinter(language.English)

// FormatMemberCount renders a guild member count with thousands separators.
func FormatMemberCount(count int) string {
	return countPrinter.Sprintf("%d", count)
}

// ComposeWelcome renders a welcome template for a new member and appends the
// rotating extras: one time-of-day line, a member-count milestone when the
// count is known, and a rollout line. Snippets are picked through the
// top-level rand functions since join handlers run concurrently.
func ComposeWelcome(template, mention string, memberCount int, now time.Time) string {
	lines := []string{RenderUserToken(template, mention)}

	slot := TimeSlot(now.Hour())
	pool, ok := TimeOfDaySnippets[slot]
	if !ok || len(pool) == 0 {
		pool = TimeOfDaySnippets["evening"]
	}
	lines = append(lines, pool[rand.Intn(len(pool))])

	if memberCount > 0 {
		snippet := MemberCountSnippets[rand.Intn(len(MemberCountSnippets))]
		lines = append(lines, strings.ReplaceAll(snippet, "{count}", FormatMemberCount(memberCount)))
	}

	lines = append(lines, RolloutSnippets[rand.Intn(len(RolloutSnippets))])
	return strings.Join(lines, "\n")
}
