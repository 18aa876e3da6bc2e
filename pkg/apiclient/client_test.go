package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/pkg/apiclient"
)

func newClient(t *testing.T, handler http.Handler) (*apiclient.Client, *apiclient.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	session, err := apiclient.NewSession(apiclient.NewMemoryStore())
	require.NoError(t, err)
	return apiclient.New(srv.URL, session), session
}

func TestLogin_PoseLeTokenDansLaSession(t *testing.T) {
	client, session := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "admin@boutique.fr", in.Email)

		json.NewEncoder(w).Encode(dto.LoginResponse{
			Token: "jeton-de-test",
			User:  dto.UserResponse{Email: in.Email, Role: "admin"},
		})
	}))

	resp, err := client.Login(context.Background(), "admin@boutique.fr", "motdepasse")
	require.NoError(t, err)
	assert.Equal(t, "jeton-de-test", resp.Token)
	assert.Equal(t, "jeton-de-test", session.Token())
	assert.True(t, session.Authenticated())
}

func TestClient_InjecteLeBearerToken(t *testing.T) {
	var gotAuth string
	client, session := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(dto.SectionListResponse{})
	}))
	require.NoError(t, session.Set("mon-token"))

	_, err := client.ListSections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer mon-token", gotAuth)
}

func TestClient_401_InvalideLaSessionEtNotifie(t *testing.T) {
	client, session := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalide ou expiré"})
	}))
	require.NoError(t, session.Set("token-perime"))

	notified := false
	session.OnInvalidated(func() { notified = true })

	_, err := client.ListSections(context.Background())
	require.ErrorIs(t, err, apiclient.ErrSessionInvalidated)
	assert.True(t, notified)
	assert.False(t, session.Authenticated())
}

func TestClient_ErreurAPI_DecodeCodeEtMessage(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "NOT_FOUND", Message: "section introuvable"})
	}))

	_, err := client.ListSections(context.Background())
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "section introuvable", apiErr.Message)
}

func TestClient_ContexteAnnule_RetourneErreur(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.SectionListResponse{})
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListSections(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStore_SauvegardeEtRecharge(t *testing.T) {
	path := t.TempDir() + "/session/token"
	store, err := apiclient.NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save("token-persiste"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "token-persiste", loaded)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
