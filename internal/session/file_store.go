package session

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const sessionFileVersion = "1.0"

// sessionFile is the on-disk shape of the persisted credential slot.
type sessionFile struct {
	Version     string    `yaml:"version"`
	Timestamp   time.Time `yaml:"timestamp"`
	AccessToken string    `yaml:"access_token"`
}

// FileStore is a write-through credential store: an in-memory cache backed
// by a YAML slot under the user's config directory. The cache is filled
// lazily on the first Get after a cold start.
type FileStore struct {
	mu     sync.Mutex
	path   string
	token  string
	loaded bool
}

// NewFileStore returns a store backed by the given file path. An empty path
// selects the default slot ~/.config/gebeya/session.yaml.
func NewFileStore(path string) (*FileStore, error) {
	if len(path) == 0 {
		defaultPath, err := defaultSessionPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	return &FileStore{path: path}, nil
}

func defaultSessionPath() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to resolve current user: %w", err)
	}

	return filepath.Join(usr.HomeDir, ".config", "gebeya", "session.yaml"), nil
}

func (f *FileStore) Get() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.loaded {
		f.token = f.load()
		f.loaded = true
	}

	return f.token
}

// Set writes through to both the in-memory cache and the persisted slot.
// An empty token removes the slot entirely.
func (f *FileStore) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = token
	f.loaded = true

	if len(token) == 0 {
		return f.remove()
	}

	return f.commit(token)
}

func (f *FileStore) Clear() error {
	return f.Set("")
}

// load reads the persisted slot. Missing, empty, or corrupt files all read
// as "no credential"; corruption is logged, not fatal.
func (f *FileStore) load() string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).WithFields(logrus.Fields{
				"path": f.path,
			}).Warn("Failed to read session file")
		}
		return ""
	}

	if len(data) == 0 {
		return ""
	}

	var stored sessionFile
	if err := yaml.Unmarshal(data, &stored); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"path": f.path,
		}).Error("Failed to parse session file, discarding it")
		return ""
	}

	return stored.AccessToken
}

// commit replaces the slot in a single write. Only the owner may read the
// file, it holds a bearer credential.
func (f *FileStore) commit(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	stored := sessionFile{
		Version:     sessionFileVersion,
		Timestamp:   time.Now().UTC(),
		AccessToken: token,
	}

	data, err := yaml.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"path": f.path,
	}).Debug("Persisted session credential")

	return nil
}

func (f *FileStore) remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
