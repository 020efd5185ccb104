package sys

import (
	"slices"
	"strings"
)

// MessageSet is an ordered template list plus its rotation cursor. The
// cursor is persisted so rotation survives restarts.
type MessageSet struct {
	Messages []string `json:"messages"`
	Index    int      `json:"index"`
}

const enjoyMessageCount = 50

// welcomeRequiredPhrases must all appear (case-insensitively) in every
// welcome template, otherwise the set is considered tampered with.
var welcomeRequiredPhrases = []string{"50% off", "uber eats", "/daily", "casino"}

// needsEnjoyHeal reports whether a stored enjoy set broke its structural
// contract: exactly 50 templates, each mentioning (user), at least one
// pointing at #casino.
func needsEnjoyHeal(set MessageSet) bool {
	if len(set.Messages) != enjoyMessageCount {
		return true
	}
	casino := false
	for _, msg := range set.Messages {
		if !strings.Contains(msg, UserToken) {
			return true
		}
		if strings.Contains(msg, "#casino") {
			casino = true
		}
	}
	return !casino
}

func needsWelcomeHeal(set MessageSet) bool {
	if len(set.Messages) == 0 {
		return true
	}
	for _, msg := range set.Messages {
		lower := strings.ToLower(msg)
		for _, phrase := range welcomeRequiredPhrases {
			if !strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	return false
}

// EnjoyMessages returns the enjoy set, healing it first if needed.
func (s *Store) EnjoyMessages() (MessageSet, error) {
	l := s.lockFor(enjoyFile)
	l.Lock()
	defer l.Unlock()
	return s.messageSet(enjoyFile, DefaultEnjoyMessages, needsEnjoyHeal)
}

// WelcomeMessages returns the welcome set, healing it first if needed.
func (s *Store) WelcomeMessages() (MessageSet, error) {
	l := s.lockFor(welcomeFile)
	l.Lock()
	defer l.Unlock()
	return s.messageSet(welcomeFile, DefaultWelcomeMessages, needsWelcomeHeal)
}

// messageSet loads one rotation document, replacing it with the canonical
// defaults whenever the heal predicate trips. Callers hold the document
// lock.
func (s *Store) messageSet(name string, defaults []string, needsHeal func(MessageSet) bool) (MessageSet, error) {
	def := func() MessageSet { return MessageSet{Messages: slices.Clone(defaults)} }
	set, err := loadDocument(s, name, def)
	if err != nil {
		return MessageSet{}, err
	}
	if needsHeal(set) {
		set = def()
		if err := saveDocument(s, name, set); err != nil {
			return MessageSet{}, err
		}
		LogStore(MsgStoreHealed, name, len(set.Messages))
	}
	return set, nil
}

// PeekEnjoyMessage returns the template at the cursor without advancing.
// The cursor only moves once the caller confirms delivery, so a failed send
// retries the same template.
func (s *Store) PeekEnjoyMessage() (string, error) {
	return s.peekMessage(enjoyFile, DefaultEnjoyMessages, needsEnjoyHeal)
}

// AdvanceEnjoyCursor moves the enjoy rotation forward one step, wrapping.
func (s *Store) AdvanceEnjoyCursor() error {
	return s.advanceCursor(enjoyFile, DefaultEnjoyMessages, needsEnjoyHeal)
}

// PeekWelcomeMessage returns the welcome template at the cursor.
func (s *Store) PeekWelcomeMessage() (string, error) {
	return s.peekMessage(welcomeFile, DefaultWelcomeMessages, needsWelcomeHeal)
}

// AdvanceWelcomeCursor moves the welcome rotation forward one step.
func (s *Store) AdvanceWelcomeCursor() error {
	return s.advanceCursor(welcomeFile, DefaultWelcomeMessages, needsWelcomeHeal)
}

// NextEnjoyMessage returns the current template and advances in one step,
// for callers that don't need delivery confirmation.
func (s *Store) NextEnjoyMessage() (string, error) {
	return s.nextMessage(enjoyFile, DefaultEnjoyMessages, needsEnjoyHeal)
}

// NextWelcomeMessage is the single-step variant for the welcome rotation.
func (s *Store) NextWelcomeMessage() (string, error) {
	return s.nextMessage(welcomeFile, DefaultWelcomeMessages, needsWelcomeHeal)
}

func (s *Store) peekMessage(name string, defaults []string, needsHeal func(MessageSet) bool) (string, error) {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	set, err := s.messageSet(name, defaults, needsHeal)
	if err != nil {
		return "", err
	}
	n := len(set.Messages)
	if n == 0 {
		return "", ErrEmptyMessageSet
	}
	return set.Messages[((set.Index%n)+n)%n], nil
}

func (s *Store) advanceCursor(name string, defaults []string, needsHeal func(MessageSet) bool) error {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	set, err := s.messageSet(name, defaults, needsHeal)
	if err != nil {
		return err
	}
	n := len(set.Messages)
	if n == 0 {
		return ErrEmptyMessageSet
	}
	set.Index = (((set.Index % n) + n) % n) + 1
	set.Index %= n
	return saveDocument(s, name, set)
}

func (s *Store) nextMessage(name string, defaults []string, needsHeal func(MessageSet) bool) (string, error) {
	l := s.lockFor(name)
	l.Lock()
	defer l.Unlock()

	set, err := s.messageSet(name, defaults, needsHeal)
	if err != nil {
		return "", err
	}
	n := len(set.Messages)
	if n == 0 {
		return "", ErrEmptyMessageSet
	}
	idx := ((set.Index % n) + n) % n
	template := set.Messages[idx]
	set.Index = (idx + 1) % n
	if err := saveDocument(s, name, set); err != nil {
		return "", err
	}
	return template, nil
}
