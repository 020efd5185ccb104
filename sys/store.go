package sys

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Document file names, one JSON document per logical store.
const (
	commandsFile = "custom_commands.json"
	linksFile    = "payment_links.json"
	enjoyFile    = "enjoy_messages.json"
	welcomeFile  = "welcome_messages.json"
	barredFile   = "barred_users.json"
	accountsFile = "accounts.json"
)

// legacyFiles were written to the working directory by earlier deployments
// and get copied into the data directory on first start.
var legacyFiles = []string{commandsFile, linksFile, enjoyFile}

// Sentinel errors surfaced to command handlers as short user-facing replies.
var (
	ErrEmptyMessageSet = errors.New("no messages configured")
	ErrEmptyCategory   = errors.New("no accounts stored for category")
	ErrUnknownCategory = errors.New("unknown account category")
	ErrCommandExists   = errors.New("command already exists")
	ErrUnknownCommand  = errors.New("command does not exist")
	ErrUnknownProvider = errors.New("unknown payment provider")
	ErrUnknownMethod   = errors.New("unknown payment method")
)

// Store owns the flat JSON documents under a single data directory. All
// reads and writes go through its typed accessors; a per-document mutex
// serializes handlers touching the same file.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// OpenStore prepares the data directory, migrates legacy documents from the
// working directory and materializes every default document so the data dir
// is self-describing from the first start.
func OpenStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf(MsgStoreDirFail, dir, err)
	}

	s := &Store{dir: dir, locks: map[string]*sync.Mutex{}}
	s.migrateLegacyFiles()
	if err := s.seedDefaults(); err != nil {
		return nil, err
	}

	LogStore(MsgStoreOpened, dir)
	return s, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

func (s *Store) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// migrateLegacyFiles copies same-named documents from the working directory
// into the data directory. One-time, best-effort, never overwrites.
func (s *Store) migrateLegacyFiles() {
	for _, name := range legacyFiles {
		dest := s.path(name)
		if filepath.Clean(dest) == filepath.Clean(name) {
			continue // data dir is the working directory
		}
		if _, err := os.Stat(dest); err == nil {
			continue
		}
		data, err := os.ReadFile(name)
		if err != nil {
			continue
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			LogWarn(MsgStoreMigrateFail, name, err)
			continue
		}
		LogStore(MsgStoreMigrated, name, dest)
	}
}

// seedDefaults loads every document once; loading writes the default for any
// document that is missing or fails its structural contract.
func (s *Store) seedDefaults() error {
	if _, err := s.CustomCommands(); err != nil {
		return err
	}
	if _, err := s.PaymentLinks(); err != nil {
		return err
	}
	if _, err := s.EnjoyMessages(); err != nil {
		return err
	}
	if _, err := s.WelcomeMessages(); err != nil {
		return err
	}
	if _, err := s.ListAccounts(); err != nil {
		return err
	}
	for _, id := range DefaultBarredUserIDs {
		if _, err := s.AddBarredUser(id); err != nil {
			return err
		}
	}
	return nil
}

// loadDocument reads one document, falling back to (and persisting) the
// default when the file is absent or does not parse. Callers hold the
// document lock.
func loadDocument[T any](s *Store, name string, def func() T) (T, error) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			var zero T
			return zero, err
		}
		doc := def()
		return doc, saveDocument(s, name, doc)
	}

	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		LogStore(MsgStoreResetMalformed, name)
		doc = def()
		return doc, saveDocument(s, name, doc)
	}
	return doc, nil
}

// saveDocument writes through a temp file in the same directory so a crash
// mid-write never leaves a truncated document behind.
func saveDocument[T any](s *Store, name string, doc T) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(name))
}
