package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-char-keeper/internal/logger"
	"github.com/MKhiriev/go-char-keeper/internal/service"
	"github.com/MKhiriev/go-char-keeper/internal/utils"
	"github.com/MKhiriev/go-char-keeper/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return models.Token{SignedString: tokenString, UserID: testUserID}, nil
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	getUserFn       func(ctx context.Context, userID int64) (models.User, error)
	getUserByNameFn func(ctx context.Context, name string) (models.User, error)
	updateEmailFn   func(ctx context.Context, userID int64, email string) error
	getAPIsFn       func(ctx context.Context, userID int64) ([]models.UserAPI, error)
	getMapsFn       func(ctx context.Context, userID int64) ([]models.Map, error)
	getDataFn       func(ctx context.Context, userID, sessionCharacterID int64) (models.UserData, error)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) GetUserByName(ctx context.Context, name string) (models.User, error) {
	return m.getUserByNameFn(ctx, name)
}

func (m *mockUserService) UpdateEmail(ctx context.Context, userID int64, email string) error {
	return m.updateEmailFn(ctx, userID, email)
}

func (m *mockUserService) GetAPIs(ctx context.Context, userID int64) ([]models.UserAPI, error) {
	return m.getAPIsFn(ctx, userID)
}

func (m *mockUserService) GetMaps(ctx context.Context, userID int64) ([]models.Map, error) {
	return m.getMapsFn(ctx, userID)
}

func (m *mockUserService) GetData(ctx context.Context, userID, sessionCharacterID int64) (models.UserData, error) {
	return m.getDataFn(ctx, userID, sessionCharacterID)
}

type mockCharacterService struct {
	setMainFn       func(ctx context.Context, userID, characterID int64) error
	repairMainFn    func(ctx context.Context, userID int64) error
	getMainFn       func(ctx context.Context, userID int64) (*models.UserCharacter, error)
	getActiveFn     func(ctx context.Context, userID, sessionCharacterID int64) (*models.UserCharacter, error)
	getActiveListFn func(ctx context.Context, userID int64) ([]models.UserCharacter, error)
	getUserCharsFn  func(ctx context.Context, userID int64) ([]models.UserCharacter, error)
}

func (m *mockCharacterService) SetMainCharacter(ctx context.Context, userID, characterID int64) error {
	return m.setMainFn(ctx, userID, characterID)
}

func (m *mockCharacterService) RepairMainCharacter(ctx context.Context, userID int64) error {
	return m.repairMainFn(ctx, userID)
}

func (m *mockCharacterService) GetMainCharacter(ctx context.Context, userID int64) (*models.UserCharacter, error) {
	return m.getMainFn(ctx, userID)
}

func (m *mockCharacterService) GetActiveCharacter(ctx context.Context, userID, sessionCharacterID int64) (*models.UserCharacter, error) {
	return m.getActiveFn(ctx, userID, sessionCharacterID)
}

func (m *mockCharacterService) GetActiveCharacters(ctx context.Context, userID int64) ([]models.UserCharacter, error) {
	return m.getActiveListFn(ctx, userID)
}

func (m *mockCharacterService) GetUserCharacters(ctx context.Context, userID int64) ([]models.UserCharacter, error) {
	return m.getUserCharsFn(ctx, userID)
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(context.Context) error {
	return m.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 7

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.HealthService == nil {
		services.HealthService = &mockHealthService{}
	}
	return NewHandler(services, logger.Nop())
}

// withUser returns r with the authenticated user id in its context, as the
// auth middleware leaves it.
func withUser(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

func withSession(r *http.Request, characterID int64) *http.Request {
	return r.WithContext(utils.WithSessionCharacterID(r.Context(), characterID))
}

func testCharacter(id, characterID int64, main bool) models.UserCharacter {
	return models.UserCharacter{
		ID:        id,
		UserID:    testUserID,
		Character: models.Character{ID: id * 100, CharacterID: characterID, Name: "Pilot"},
		Active:    true,
		Main:      main,
	}
}
