package sys

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailPattern      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizeAccountLine trims and collapses inner whitespace to single
// spaces so the same credential pasted with different spacing dedupes.
func NormalizeAccountLine(line string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(line), " ")
}

// NormalizeCategory lowercases and trims category keys.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// ParseAccountLines splits a bulk paste into normalized account lines,
// keeping only lines that contain an email address.
func ParseAccountLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = NormalizeAccountLine(line)
		if line == "" || !emailPattern.MatchString(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func (s *Store) loadAccounts() (map[string][]string, error) {
	accounts, err := loadDocument(s, accountsFile, func() map[string][]string { return map[string][]string{} })
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = map[string][]string{}
	}
	// Normalize stored lines so hand-edited documents still dedupe.
	for key, queue := range accounts {
		for i, line := range queue {
			queue[i] = NormalizeAccountLine(line)
		}
		accounts[key] = queue
	}
	return accounts, nil
}

// AddAccounts appends lines not already queued under category and returns
// how many were added and the queue length afterwards. Duplicates within the
// current queue are skipped; lines handed out earlier may be added again.
func (s *Store) AddAccounts(category string, lines []string) (added, total int, err error) {
	l := s.lockFor(accountsFile)
	l.Lock()
	defer l.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return 0, 0, err
	}

	key := NormalizeCategory(category)
	queue := accounts[key]
	existing := make(map[string]struct{}, len(queue))
	for _, line := range queue {
		existing[line] = struct{}{}
	}

	for _, line := range lines {
		line = NormalizeAccountLine(line)
		if line == "" {
			continue
		}
		if _, ok := existing[line]; ok {
			continue
		}
		queue = append(queue, line)
		existing[line] = struct{}{}
		added++
	}
	accounts[key] = queue

	if err := saveDocument(s, accountsFile, accounts); err != nil {
		return 0, 0, err
	}
	return added, len(queue), nil
}

// DequeueAccount pops the oldest line from a category, FIFO. An emptied
// queue drops its category key entirely so listings stay clean.
func (s *Store) DequeueAccount(category string) (line string, remaining int, err error) {
	l := s.lockFor(accountsFile)
	l.Lock()
	defer l.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return "", 0, err
	}

	key := NormalizeCategory(category)
	queue := accounts[key]
	if len(queue) == 0 {
		return "", 0, ErrEmptyCategory
	}

	line = queue[0]
	queue = queue[1:]
	if len(queue) == 0 {
		delete(accounts, key)
	} else {
		accounts[key] = queue
	}

	if err := saveDocument(s, accountsFile, accounts); err != nil {
		return "", 0, err
	}
	return line, len(queue), nil
}

// ClearAccounts removes an entire category and returns how many lines it
// held.
func (s *Store) ClearAccounts(category string) (int, error) {
	l := s.lockFor(accountsFile)
	l.Lock()
	defer l.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return 0, err
	}

	key := NormalizeCategory(category)
	queue, ok := accounts[key]
	if !ok {
		return 0, ErrUnknownCategory
	}
	delete(accounts, key)

	if err := saveDocument(s, accountsFile, accounts); err != nil {
		return 0, err
	}
	return len(queue), nil
}

// ListAccounts returns per-category queue sizes, keys sorted.
func (s *Store) ListAccounts() (map[string]int, error) {
	l := s.lockFor(accountsFile)
	l.Lock()
	defer l.Unlock()

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(accounts))
	for key, queue := range accounts {
		counts[key] = len(queue)
	}
	return counts, nil
}

// AccountCategories returns the stored category keys in sorted order.
func (s *Store) AccountCategories() ([]string, error) {
	counts, err := s.ListAccounts()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
