package dto

import "time"

// MediaResponse sortie d'un fichier de la médiathèque.
type MediaResponse struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	Alt          string    `json:"alt,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Folder       string    `json:"folder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MediaListResponse liste paginée de fichiers.
type MediaListResponse struct {
	Items []MediaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
