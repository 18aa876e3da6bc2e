// Package apiclient est le client Go du back-office : session injectable,
// ajustements de stock en masse et éditeurs de contenu avec état local.
package apiclient

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store port de persistance du token de session.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryStore garde le token en mémoire (tests, scripts éphémères).
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore construit le store mémoire.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Save("")
}

// FileStore persiste le token dans un fichier (outillage CLI).
type FileStore struct {
	path string
}

// NewFileStore construit le store fichier, répertoires créés au besoin.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("créer le répertoire de session: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("lire la session: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("écrire la session: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("effacer la session: %w", err)
	}
	return nil
}

// Session porte le token courant et notifie les abonnés quand la session est
// invalidée (401 du serveur). L'appelant décide de la suite : réauthentifier,
// afficher un écran de connexion, arrêter.
type Session struct {
	mu       sync.RWMutex
	token    string
	store    Store
	handlers []func()
}

// NewSession charge le token depuis le store.
func NewSession(store Store) (*Session, error) {
	s := &Session{store: store}
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	s.token = token
	return s, nil
}

// Token renvoie le token courant, vide si déconnecté.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated indique si un token est présent.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Set pose un nouveau token et le persiste.
func (s *Session) Set(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return s.store.Save(token)
}

// Clear efface le token (déconnexion volontaire, sans notification).
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return s.store.Clear()
}

// OnInvalidated abonne un callback appelé quand le serveur rejette la session.
func (s *Session) OnInvalidated(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, fn)
}

// invalidate efface le token et notifie les abonnés. Appelé par le client
// sur un 401.
func (s *Session) invalidate() {
	s.mu.Lock()
	s.token = ""
	handlers := make([]func(), len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()
	_ = s.store.Clear()
	for _, fn := range handlers {
		fn()
	}
}
