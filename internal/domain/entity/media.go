package entity

import "time"

// MediaFile fichier de la médiathèque. Les éditeurs de contenu ne stockent
// jamais l'enregistrement complet : seule l'URL est référencée dans les slides/items.
type MediaFile struct {
	ID           string
	Filename     string // nom sur disque (unique)
	OriginalName string
	MimeType     string
	Size         int64
	URL          string
	Alt          string
	Tags         []string
	Folder       string
	CreatedAt    time.Time
}
