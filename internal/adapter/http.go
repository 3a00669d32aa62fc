package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-char-keeper/internal/config"
	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/utils"
	"github.com/MKhiriev/go-char-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and applies the
// configured request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// /api/user/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/user/login and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Name: user.Name, Email: user.Email, Password: user.Password}).
		SetResult(&foundUser).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get(models.HeaderAuthorization))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("func", "*httpServerAdapter.authenticate").Int64("user_id", foundUser.UserID).Msg("authenticated")
	return foundUser, nil
}

// GetUserData implements [ServerAdapter]. GET /api/user.
func (h *httpServerAdapter) GetUserData(ctx context.Context, sessionCharacterID int64) (models.UserData, error) {
	var data models.UserData

	resp, err := h.withSession(h.authedRequest(ctx), sessionCharacterID).
		SetResult(&data).
		Get("/api/user")
	if err != nil {
		return models.UserData{}, fmt.Errorf("get user data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserData{}, err
	}

	return data, nil
}

// UpdateEmail implements [ServerAdapter]. PUT /api/user/email.
func (h *httpServerAdapter) UpdateEmail(ctx context.Context, email string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.EmailUpdateRequest{Email: email}).
		Put("/api/user/email")
	if err != nil {
		return fmt.Errorf("update email request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetAPIs(ctx context.Context) ([]models.UserAPI, error) {
	var apis []models.UserAPI
	if err := h.getList(ctx, "/api/user/apis", &apis); err != nil {
		return nil, err
	}
	return apis, nil
}

func (h *httpServerAdapter) GetMaps(ctx context.Context) ([]models.Map, error) {
	var maps []models.Map
	if err := h.getList(ctx, "/api/user/maps", &maps); err != nil {
		return nil, err
	}
	return maps, nil
}

// GetCharacters implements [ServerAdapter]. GET /api/user/characters.
func (h *httpServerAdapter) GetCharacters(ctx context.Context) ([]models.UserCharacter, error) {
	var characters []models.UserCharacter
	if err := h.getList(ctx, "/api/user/characters", &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

// GetLoggedCharacters implements [ServerAdapter]. GET /api/user/characters/logged.
func (h *httpServerAdapter) GetLoggedCharacters(ctx context.Context) ([]models.UserCharacter, error) {
	var characters []models.UserCharacter
	if err := h.getList(ctx, "/api/user/characters/logged", &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

// GetMainCharacter implements [ServerAdapter]. GET /api/user/characters/main;
// 204 No Content maps to a nil character.
func (h *httpServerAdapter) GetMainCharacter(ctx context.Context) (*models.UserCharacter, error) {
	return h.getCharacter(h.authedRequest(ctx), "/api/user/characters/main")
}

// GetActiveCharacter implements [ServerAdapter]. GET /api/user/characters/active.
func (h *httpServerAdapter) GetActiveCharacter(ctx context.Context, sessionCharacterID int64) (*models.UserCharacter, error) {
	return h.getCharacter(h.withSession(h.authedRequest(ctx), sessionCharacterID), "/api/user/characters/active")
}

// SetMainCharacter implements [ServerAdapter]. PUT /api/user/characters/main.
func (h *httpServerAdapter) SetMainCharacter(ctx context.Context, characterID int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.MainCharacterRequest{CharacterID: characterID}).
		Put("/api/user/characters/main")
	if err != nil {
		return fmt.Errorf("set main character request: %w", err)
	}

	return mapHTTPError(resp)
}

// Health implements [ServerAdapter]. GET /api/health.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) getCharacter(req *resty.Request, path string) (*models.UserCharacter, error) {
	var character models.UserCharacter

	resp, err := req.SetResult(&character).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	return &character, nil
}

func (h *httpServerAdapter) getList(ctx context.Context, path string, dst any) error {
	resp, err := h.authedRequest(ctx).SetResult(dst).Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthScheme("Bearer").
		SetAuthToken(h.Token())
}

func (h *httpServerAdapter) withSession(req *resty.Request, sessionCharacterID int64) *resty.Request {
	if sessionCharacterID > models.NoCharacter {
		req.SetHeader(models.HeaderSessionCharacterID, strconv.FormatInt(sessionCharacterID, 10))
	}
	return req
}
