package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rockschool/internal/model"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, user *model.User) (*model.User, bool, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.Bool(1), args.Error(2)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserService) RoleByEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) GrantRole(ctx context.Context, id uint, role string) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func postUser(t *testing.T, h *UserHandler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.CreateUser(c)
}

func TestUserHandler_CreateUser_DuplicateScenario(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)

	// first POST inserts
	svc.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(&model.User{ID: 1, Email: "a@x.com"}, true, nil).Once()

	rec, err := postUser(t, h, `{"email":"a@x.com","name":"A"}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created model.User
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.ID)

	// second POST with the same identity is a no-op
	svc.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.User")).
		Return(&model.User{ID: 1, Email: "a@x.com"}, false, nil).Once()

	rec, err = postUser(t, h, `{"email":"a@x.com","name":"A"}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user already exists", resp["message"])

	svc.AssertExpectations(t)
}

func TestUserHandler_CreateUser_MissingEmail(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)

	_, err := postUser(t, h, `{"name":"A"}`)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUserHandler_CheckAdmin(t *testing.T) {
	svc := new(MockUserService)
	svc.On("IsAdmin", mock.Anything, "a@x.com").Return(true, nil)
	h := NewUserHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/admin/a@x.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	assert.NoError(t, h.CheckAdmin(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp["admin"])
}
