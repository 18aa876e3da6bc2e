package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrUserNotFound       = errors.New("utilisateur introuvable")
	ErrEmailAlreadyExists = errors.New("cet email est déjà enregistré")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrDuplicate          = errors.New("ressource dupliquée")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
	ErrConflict           = errors.New("conflit avec l'état actuel")
	ErrStockNegative      = errors.New("le stock ne peut pas être négatif")
	ErrLastSlide          = errors.New("impossible de supprimer la dernière slide")
	ErrLastItem           = errors.New("impossible de supprimer le dernier élément")
	ErrUnknownSectionType = errors.New("type de section inconnu")
)
