// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxIn0.signature"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// requireAuth fails the test unless the request carries the test token.
func requireAuth(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testToken, r.Header.Get(models.HeaderAuthorization))
}

func testLink(characterID int64, main bool) models.UserCharacter {
	return models.UserCharacter{
		ID:        characterID,
		UserID:    1,
		Character: models.Character{CharacterID: characterID, Name: "pilot"},
		Active:    true,
		Main:      main,
	}
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["name"])
		assert.Equal(t, "secret1", body["password"])

		w.Header().Set(models.HeaderAuthorization, "Bearer "+testToken)
		writeTestJSON(t, w, http.StatusOK, models.User{UserID: 1, Name: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.User{Name: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, testToken, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("name already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Name: "alice"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "name already exists")
	assert.Empty(t, a.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		w.Header().Set(models.HeaderAuthorization, "Bearer "+testToken)
		writeTestJSON(t, w, http.StatusOK, models.User{UserID: 3, Name: "alice", Email: "a@b.c"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Name: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
	assert.Equal(t, "a@b.c", got.Email)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Name: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusOK, models.User{UserID: 3})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Name: "alice", Password: "secret1"})

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── Characters ──────────────────────────────────────────────────────────────

func TestGetCharacters_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		assert.Equal(t, "/api/user/characters", r.URL.Path)
		writeTestJSON(t, w, http.StatusOK, []models.UserCharacter{testLink(10, true), testLink(11, false)})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)
	got, err := a.GetCharacters(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Main)
	assert.Equal(t, int64(11), got[1].Character.CharacterID)
}

func TestGetMainCharacter(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantNil bool
	}{
		{name: "has main", status: http.StatusOK, body: testLink(10, true)},
		{name: "no main", status: http.StatusNoContent, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requireAuth(t, r)
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/user/characters/main", r.URL.Path)
				if tt.body == nil {
					w.WriteHeader(tt.status)
					return
				}
				writeTestJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken(testToken)
			got, err := a.GetMainCharacter(context.Background())

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, int64(10), got.Character.CharacterID)
		})
	}
}

func TestSetMainCharacter_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user/characters/main", r.URL.Path)

		var req models.MainCharacterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.CharacterID)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	require.NoError(t, a.SetMainCharacter(context.Background(), 42))
}

func TestSetMainCharacter_Busy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	assert.ErrorIs(t, a.SetMainCharacter(context.Background(), 42), ErrConflict)
}

func TestGetActiveCharacter_SessionHeader(t *testing.T) {
	tests := []struct {
		name       string
		session    int64
		wantHeader string
	}{
		{name: "with session", session: 11, wantHeader: "11"},
		{name: "without session", session: models.NoCharacter, wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requireAuth(t, r)
				assert.Equal(t, "/api/user/characters/active", r.URL.Path)
				assert.Equal(t, tt.wantHeader, r.Header.Get(models.HeaderSessionCharacterID))
				writeTestJSON(t, w, http.StatusOK, testLink(11, false))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken(testToken)
			got, err := a.GetActiveCharacter(context.Background(), tt.session)

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, int64(11), got.Character.CharacterID)
		})
	}
}

func TestGetLoggedCharacters_Success(t *testing.T) {
	logged := testLink(10, true)
	logged.Log = &models.CharacterLog{SystemID: 30000142, SystemName: "Jita"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		assert.Equal(t, "/api/user/characters/logged", r.URL.Path)
		writeTestJSON(t, w, http.StatusOK, []models.UserCharacter{logged})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)
	got, err := a.GetLoggedCharacters(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Log)
	assert.Equal(t, "Jita", got[0].Log.SystemName)
}

// ── User ────────────────────────────────────────────────────────────────────

func TestGetUserData_Success(t *testing.T) {
	active := testLink(11, false)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, "11", r.Header.Get(models.HeaderSessionCharacterID))
		writeTestJSON(t, w, http.StatusOK, models.UserData{
			ID:         1,
			Name:       "alice",
			Characters: []models.UserCharacter{testLink(10, true), active},
			Character:  &active,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)
	got, err := a.GetUserData(context.Background(), 11)

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Len(t, got.Characters, 2)
	require.NotNil(t, got.Character)
	assert.Equal(t, int64(11), got.Character.Character.CharacterID)
}

func TestUpdateEmail_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user/email", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("invalid data provided"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	assert.ErrorIs(t, a.UpdateEmail(context.Background(), "bad"), ErrBadRequest)
}

func TestGetAPIsAndMaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireAuth(t, r)
		switch r.URL.Path {
		case "/api/user/apis":
			writeTestJSON(t, w, http.StatusOK, []models.UserAPI{{ID: 1, KeyID: 77, Active: true}})
		case "/api/user/maps":
			writeTestJSON(t, w, http.StatusOK, []models.Map{{ID: 5, Name: "home", Active: true}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	apis, err := a.GetAPIs(context.Background())
	require.NoError(t, err)
	require.Len(t, apis, 1)
	assert.Equal(t, int64(77), apis[0].KeyID)

	maps, err := a.GetMaps(context.Background())
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "home", maps[0].Name)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "ok", status: http.StatusOK},
		{name: "storage down", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get(models.HeaderAuthorization))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			err := a.Health(context.Background())

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Health(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
