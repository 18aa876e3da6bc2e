package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/marchand/boutique-api/internal/application/usecase"
)

var _ usecase.FileStorage = (*LocalStorage)(nil)

// LocalStorage stockage des fichiers de la médiathèque sur disque local.
// Les fichiers sont rangés par dossier sous le répertoire racine et servis
// statiquement sous baseURL.
type LocalStorage struct {
	root    string
	baseURL string
}

// NewLocalStorage crée le répertoire racine si nécessaire.
func NewLocalStorage(root, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("créer le répertoire média: %w", err)
	}
	return &LocalStorage{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save écrit le fichier et renvoie son URL publique. Le nom de fichier est
// déjà unique (UUID), un fichier existant du même nom est une erreur.
func (s *LocalStorage) Save(folder, filename string, r io.Reader) (string, error) {
	folder = sanitize(folder)
	filename = sanitize(filename)
	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("créer le dossier %s: %w", folder, err)
	}
	path := filepath.Join(dir, filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("créer le fichier: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("écrire le fichier: %w", err)
	}
	return s.baseURL + "/" + folder + "/" + filename, nil
}

// Remove supprime le fichier. Un fichier déjà absent n'est pas une erreur.
func (s *LocalStorage) Remove(folder, filename string) error {
	path := filepath.Join(s.root, sanitize(folder), sanitize(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("supprimer le fichier: %w", err)
	}
	return nil
}

// Root renvoie le répertoire racine (monté en statique par le routeur).
func (s *LocalStorage) Root() string {
	return s.root
}

// sanitize neutralise les séparateurs de chemin dans les noms fournis.
func sanitize(name string) string {
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "")
	return strings.ReplaceAll(name, "\\", "")
}
