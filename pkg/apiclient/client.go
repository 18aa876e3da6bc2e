package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marchand/boutique-api/internal/application/dto"
)

// ErrSessionInvalidated : le serveur a rejeté le token. La session est déjà
// effacée et les abonnés OnInvalidated notifiés quand cette erreur remonte.
var ErrSessionInvalidated = errors.New("session invalidée par le serveur")

// APIError erreur structurée renvoyée par l'API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client client HTTP typé de l'API back-office. Toutes les méthodes prennent
// un context.Context et le respectent (annulation, deadline).
type Client struct {
	baseURL string
	hc      *http.Client
	session *Session
}

// Option configure le client.
type Option func(*Client)

// WithHTTPClient remplace le client HTTP sous-jacent (tests, proxys).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New construit le client. La session fournit le Bearer Token et reçoit
// l'invalidation sur 401.
func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session renvoie la session portée par le client.
func (c *Client) Session() *Session { return c.session }

// do exécute une requête JSON. in est sérialisé si non nil, out décodé si
// non nil et que le corps n'est pas vide.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("sérialiser la requête: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("construire la requête: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.invalidate()
		return ErrSessionInvalidated
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var er dto.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&er) == nil {
			apiErr.Code = er.Code
			apiErr.Message = er.Message
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("décoder la réponse: %w", err)
	}
	return nil
}

// Login s'authentifie et pose le token dans la session.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	if err := c.session.Set(out.Token); err != nil {
		return nil, fmt.Errorf("persister la session: %w", err)
	}
	return &out, nil
}

// Me renvoie l'utilisateur connecté.
func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSections renvoie les sections d'accueil dans l'ordre d'affichage.
func (c *Client) ListSections(ctx context.Context) (*dto.SectionListResponse, error) {
	var out dto.SectionListResponse
	if err := c.do(ctx, http.MethodGet, "/api/content/home-sections", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReorderSections pousse un ordre complet et renvoie la liste renumérotée.
func (c *Client) ReorderSections(ctx context.Context, in dto.ReorderSectionsRequest) (*dto.SectionListResponse, error) {
	var out dto.SectionListResponse
	if err := c.do(ctx, http.MethodPut, "/api/content/home-sections", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSection modifie partiellement une section.
func (c *Client) UpdateSection(ctx context.Context, id string, in dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	var out dto.SectionResponse
	if err := c.do(ctx, http.MethodPatch, "/api/content/home-sections/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleSectionVisibility bascule la visibilité d'une section.
func (c *Client) ToggleSectionVisibility(ctx context.Context, id string) (*dto.SectionResponse, error) {
	var out dto.SectionResponse
	if err := c.do(ctx, http.MethodPatch, "/api/content/home-sections/"+url.PathEscape(id)+"/visibility", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DuplicateSection duplique une section, la copie arrive masquée en fin de liste.
func (c *Client) DuplicateSection(ctx context.Context, id string) (*dto.SectionResponse, error) {
	var out dto.SectionResponse
	if err := c.do(ctx, http.MethodPost, "/api/content/home-sections/"+url.PathEscape(id)+"/duplicate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSection supprime une section, les suivantes sont renumérotées.
func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/content/home-sections/"+url.PathEscape(id), nil, nil)
}

// GetCollectionItems renvoie items et config carrousel d'une section collection.
func (c *Client) GetCollectionItems(ctx context.Context, sectionID string) (*dto.CollectionItemsResponse, error) {
	var out dto.CollectionItemsResponse
	if err := c.do(ctx, http.MethodGet, "/api/content/home-section/"+url.PathEscape(sectionID)+"/collections", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PutCollectionItems remplace items et config carrousel d'une section collection.
func (c *Client) PutCollectionItems(ctx context.Context, sectionID string, in dto.CollectionItemsRequest) (*dto.CollectionItemsResponse, error) {
	var out dto.CollectionItemsResponse
	if err := c.do(ctx, http.MethodPut, "/api/content/home-section/"+url.PathEscape(sectionID)+"/collections", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetStock pose directement le stock d'un produit ou d'une variante.
func (c *Client) SetStock(ctx context.Context, in dto.SetStockRequest) (*dto.MovementResponse, error) {
	var out dto.MovementResponse
	if err := c.do(ctx, http.MethodPatch, "/api/inventory/stock", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterMovement enregistre un mouvement IN/OUT/ADJUSTMENT.
func (c *Client) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	var out dto.MovementResponse
	if err := c.do(ctx, http.MethodPost, "/api/inventory/movements", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StockAlerts renvoie les produits sous leur seuil, stock croissant.
func (c *Client) StockAlerts(ctx context.Context) ([]dto.StockAlertResponse, error) {
	var out []dto.StockAlertResponse
	if err := c.do(ctx, http.MethodGet, "/api/inventory/alerts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
