package handlers_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pennyledger/pkg/handlers"
	"pennyledger/pkg/user"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) SignUp(name, email, password string) (*user.User, error) {
	args := m.Called(name, email, password)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) SignIn(email, password string) (*user.User, string, error) {
	args := m.Called(email, password)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
}

func TestSignUpHandler(t *testing.T) {
	m := new(mockUserService)

	m.On("SignUp", "A", "a@x.com", "p1").
		Return(&user.User{ID: "uid1", Name: "A", Email: "a@x.com"}, nil).Once()
	m.On("SignUp", "A", "a@x.com", "p1").Return(nil, user.ErrEmailTaken)
	m.On("SignUp", "", "a@x.com", "p1").Return(nil, user.ErrValidation)

	handler := handlers.NewUserHandler(m, testLogger())

	tests := []struct {
		name           string
		body           string
		contentType    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "created",
			body:           `{"name":"A","email":"a@x.com","password":"p1","repeatPassword":"p1"}`,
			contentType:    "application/json",
			expectedStatus: http.StatusCreated,
			expectedBody:   `"email":"a@x.com"`,
		},
		{
			name:           "email taken",
			body:           `{"name":"A","email":"a@x.com","password":"p1","repeatPassword":"p1"}`,
			contentType:    "application/json",
			expectedStatus: http.StatusConflict,
			expectedBody:   "email already registered",
		},
		{
			name:           "missing name",
			body:           `{"email":"a@x.com","password":"p1","repeatPassword":"p1"}`,
			contentType:    "application/json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid sign-up data",
		},
		{
			name:           "password mismatch",
			body:           `{"name":"A","email":"a@x.com","password":"p1","repeatPassword":"p2"}`,
			contentType:    "application/json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "passwords do not match",
		},
		{
			name:           "bad content-type",
			body:           `{"name":"A","email":"a@x.com","password":"p1","repeatPassword":"p1"}`,
			contentType:    "text/plain",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid Content-Type",
		},
		{
			name:           "bad json",
			body:           `{"name" oops`,
			contentType:    "application/json",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "bad json",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/sign-up", strings.NewReader(test.body))
			r.Header.Set("Content-Type", test.contentType)
			w := httptest.NewRecorder()

			handler.SignUp(w, r)

			assert.Equal(t, test.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), test.expectedBody)
			// password hash never leaks
			assert.NotContains(t, w.Body.String(), "passwordHash")
		})
	}
}

func TestSignInHandler(t *testing.T) {
	m := new(mockUserService)

	m.On("SignIn", "a@x.com", "p1").
		Return(&user.User{ID: "uid1", Name: "A", Email: "a@x.com"}, "opaque-token", nil)
	m.On("SignIn", "ghost@x.com", "p1").Return(nil, "", user.ErrNotFound)
	m.On("SignIn", "a@x.com", "wrong").Return(nil, "", user.ErrBadPassword)
	m.On("SignIn", "", "p1").Return(nil, "", user.ErrValidation)

	handler := handlers.NewUserHandler(m, testLogger())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success returns name and token",
			body:           `{"email":"a@x.com","password":"p1"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"opaque-token"`,
		},
		{
			name:           "unknown email",
			body:           `{"email":"ghost@x.com","password":"p1"}`,
			expectedStatus: http.StatusNotFound,
			expectedBody:   "user not found",
		},
		{
			name:           "wrong password",
			body:           `{"email":"a@x.com","password":"wrong"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid password",
		},
		{
			name:           "missing email",
			body:           `{"password":"p1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad json",
			body:           `{"email" oops`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "bad json",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/sign-in", strings.NewReader(test.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.SignIn(w, r)

			assert.Equal(t, test.expectedStatus, w.Code)
			if test.expectedBody != "" {
				assert.Contains(t, w.Body.String(), test.expectedBody)
			}
		})
	}
}
