package sys

import (
	"slices"
	"sort"

	"github.com/disgoorg/snowflake/v2"
)

// DefaultBarredUserIDs are seeded into the barred list on first open.
var DefaultBarredUserIDs = []string{"1405894979095892108"}

// barredDocument is the on-disk shape of the barred list. IDs are stored as
// strings so hand-edits survive round trips without precision loss.
type barredDocument struct {
	BarredUsers []string `json:"barred_users"`
}

func defaultBarredDocument() barredDocument {
	return barredDocument{BarredUsers: []string{}}
}

// BarredUsers returns the barred ID list, sorted.
func (s *Store) BarredUsers() ([]string, error) {
	l := s.lockFor(barredFile)
	l.Lock()
	defer l.Unlock()

	doc, err := loadDocument(s, barredFile, defaultBarredDocument)
	if err != nil {
		return nil, err
	}
	return doc.BarredUsers, nil
}

// AddBarredUser appends an ID to the barred list and reports whether it was
// newly added. The list is append-only; there is deliberately no removal
// operation, unbarring means editing the document by hand.
func (s *Store) AddBarredUser(id string) (bool, error) {
	l := s.lockFor(barredFile)
	l.Lock()
	defer l.Unlock()

	doc, err := loadDocument(s, barredFile, defaultBarredDocument)
	if err != nil {
		return false, err
	}
	if slices.Contains(doc.BarredUsers, id) {
		return false, nil
	}
	doc.BarredUsers = append(doc.BarredUsers, id)
	sort.Strings(doc.BarredUsers)
	if err := saveDocument(s, barredFile, doc); err != nil {
		return false, err
	}
	LogStore(MsgStoreBarredAdded, id)
	return true, nil
}

// IsBarred reports whether a user may not interact with the bot. The
// document is re-read on every check so out-of-band edits take effect
// immediately.
func (s *Store) IsBarred(userID snowflake.ID) (bool, error) {
	return s.IsBarredID(userID.String())
}

// IsBarredID is the string-keyed variant for IDs that never went through
// snowflake parsing.
func (s *Store) IsBarredID(id string) (bool, error) {
	users, err := s.BarredUsers()
	if err != nil {
		return false, err
	}
	return slices.Contains(users, id), nil
}
