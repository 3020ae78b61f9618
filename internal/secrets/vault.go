// Package secrets keeps remote source connection strings out of the plain-text config.
//
// Entries live in a per-user JSON file (0600) sealed with AES-GCM under a key derived
// from the user and OS. That keeps passwords out of casual view; it is not a keychain.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const fileName = "sources.json"

var (
	// ErrNotFound is returned when the vault holds no DSN for a source.
	ErrNotFound = errors.New("dsn not found")
	// ErrNoDriver is returned for a source without a driver name.
	ErrNoDriver = errors.New("driver required")
)

// Vault is the encrypted DSN file. Each entry is sealed with its source as
// additional data, so an entry copied under another source fails to open.
type Vault struct {
	path string
	aead cipher.AEAD
}

type vaultFile struct {
	Sources map[string]sealed `json:"sources"`
}

type sealed struct {
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

// Open returns the vault in the user's config directory.
func Open() (*Vault, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(filepath.Join(dir, "jaskgallery", fileName))
}

// OpenAt returns a vault backed by the file at path. The file is created on the
// first Put.
func OpenAt(path string) (*Vault, error) {
	block, err := aes.NewCipher(userKey())
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Vault{path: path, aead: aead}, nil
}

func userKey() []byte {
	sum := sha256.Sum256([]byte(strings.Join([]string{"jaskgallery", runtime.GOOS, os.Getenv("USER")}, "\x00")))
	return sum[:]
}

// Put stores dsn for src, replacing any earlier entry.
func (v *Vault) Put(src Source, dsn string) error {
	src = src.normalized()
	if src.Driver == "" {
		return ErrNoDriver
	}
	f, err := v.read()
	if err != nil {
		return err
	}
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("nonce: %w", err)
	}
	f.Sources[src.String()] = sealed{Nonce: nonce, Data: v.aead.Seal(nil, nonce, []byte(dsn), []byte(src.String()))}
	return v.write(f)
}

// Get returns the DSN stored for src.
func (v *Vault) Get(src Source) (string, error) {
	src = src.normalized()
	if src.Driver == "" {
		return "", ErrNoDriver
	}
	f, err := v.read()
	if err != nil {
		return "", err
	}
	e, ok := f.Sources[src.String()]
	if !ok {
		return "", fmt.Errorf("%s: %w", src, ErrNotFound)
	}
	if len(e.Nonce) != v.aead.NonceSize() {
		return "", fmt.Errorf("%s: malformed entry", src)
	}
	plain, err := v.aead.Open(nil, e.Nonce, e.Data, []byte(src.String()))
	if err != nil {
		return "", fmt.Errorf("open %s dsn: %w", src, err)
	}
	return string(plain), nil
}

// Delete forgets the DSN stored for src.
func (v *Vault) Delete(src Source) error {
	src = src.normalized()
	if src.Driver == "" {
		return ErrNoDriver
	}
	f, err := v.read()
	if err != nil {
		return err
	}
	if _, ok := f.Sources[src.String()]; !ok {
		return fmt.Errorf("%s: %w", src, ErrNotFound)
	}
	delete(f.Sources, src.String())
	return v.write(f)
}

func (v *Vault) read() (vaultFile, error) {
	f := vaultFile{Sources: map[string]sealed{}}
	data, err := os.ReadFile(v.path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", v.path, err)
	}
	if f.Sources == nil {
		f.Sources = map[string]sealed{}
	}
	return f, nil
}

func (v *Vault) write(f vaultFile) error {
	if err := os.MkdirAll(filepath.Dir(v.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	tmp := v.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, v.path)
}
