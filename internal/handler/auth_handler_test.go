package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "taskriser/internal/errors"
	"taskriser/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// serve runs an echo handler against a JSON request body and renders any
// returned error the way the real server would.
func serve(e *echo.Echo, h echo.HandlerFunc, method, target, body string, setup func(echo.Context)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockAuthService)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"email":"bob@x.com","password":"pw1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "bob@x.com", "pw1").
					Return("TOKEN", &model.User{ID: 3, Username: "bob", Email: "bob@x.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"bob@x.com","password":"wrong"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "bob@x.com", "wrong").
					Return("", nil, apperrors.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			e := newTestEcho()
			h := NewAuthHandler(mockSvc)
			rec := serve(e, h.Login, http.MethodPost, "/api/auth/login", tt.body, nil)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp LoginResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "TOKEN", resp.AccessToken)
				assert.Equal(t, "bob", resp.User.Username)
			} else {
				var resp apperrors.ErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "Invalid credentials", resp.Message)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(*MockAuthService)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"username":"bob","email":"bob@x.com","password":"pw1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "bob", "bob@x.com", "pw1").
					Return(&model.User{ID: 3, Username: "bob"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing fields",
			body:         `{"username":"bob"}`,
			setupMock:    func(m *MockAuthService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "conflict",
			body: `{"username":"bob","email":"bob@x.com","password":"pw1"}`,
			setupMock: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "bob", "bob@x.com", "pw1").
					Return(nil, apperrors.ErrUserExists)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockAuthService)
			tt.setupMock(mockSvc)

			e := newTestEcho()
			h := NewAuthHandler(mockSvc)
			rec := serve(e, h.Register, http.MethodPost, "/api/auth/register", tt.body, nil)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				var resp MessageResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "User registered successfully", resp.Message)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_GoogleAuth(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(new(MockAuthService))
	rec := serve(e, h.GoogleAuth, http.MethodPost, "/api/auth/google", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Google Auth endpoint (to be implemented)", resp.Message)
}
