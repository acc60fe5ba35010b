package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "taskriser/internal/errors"
	"taskriser/internal/model"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uint, update *model.UserUpdate) (*model.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateExp(ctx context.Context, userID uint, exp *int) (*model.User, error) {
	args := m.Called(ctx, userID, exp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestUserHandler_GetMe(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("GetProfile", mock.Anything, uint(3)).Return(&model.User{ID: 3, Username: "bob"}, nil)

		e := newTestEcho()
		h := NewUserHandler(mockSvc)
		rec := serve(e, h.GetMe, http.MethodGet, "/api/users/me", "", asUser(3))

		assert.Equal(t, http.StatusOK, rec.Code)

		var user model.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "bob", user.Username)
		mockSvc.AssertExpectations(t)
	})

	t.Run("identity no longer exists", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("GetProfile", mock.Anything, uint(3)).Return(nil, apperrors.ErrUserNotFound)

		e := newTestEcho()
		h := NewUserHandler(mockSvc)
		rec := serve(e, h.GetMe, http.MethodGet, "/api/users/me", "", asUser(3))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp apperrors.ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User not found", resp.Message)
		mockSvc.AssertExpectations(t)
	})
}

func TestUserHandler_UpdateMe(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("UpdateProfile", mock.Anything, uint(3), mock.MatchedBy(func(u *model.UserUpdate) bool {
		return u.Avatar != nil && *u.Avatar == "new.png" && u.Username == nil && u.Email == nil
	})).Return(&model.User{ID: 3, Username: "bob", Avatar: "new.png"}, nil)

	e := newTestEcho()
	h := NewUserHandler(mockSvc)
	rec := serve(e, h.UpdateMe, http.MethodPut, "/api/users/me", `{"avatar":"new.png"}`, asUser(3))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp UserResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Profile updated successfully", resp.Message)
	assert.Equal(t, "new.png", resp.User.Avatar)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_UpdateExp(t *testing.T) {
	t.Run("exp present", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("UpdateExp", mock.Anything, uint(3), mock.MatchedBy(func(exp *int) bool {
			return exp != nil && *exp == 40
		})).Return(&model.User{ID: 3, TotalExp: 40}, nil)

		e := newTestEcho()
		h := NewUserHandler(mockSvc)
		rec := serve(e, h.UpdateExp, http.MethodPost, "/api/users/update-exp", `{"exp":40}`, asUser(3))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "EXP updated successfully", resp.Message)
		assert.Equal(t, 40, resp.User.TotalExp)
		mockSvc.AssertExpectations(t)
	})

	t.Run("exp omitted still returns the record", func(t *testing.T) {
		mockSvc := new(MockUserService)
		mockSvc.On("UpdateExp", mock.Anything, uint(3), (*int)(nil)).
			Return(&model.User{ID: 3, TotalExp: 90}, nil)

		e := newTestEcho()
		h := NewUserHandler(mockSvc)
		rec := serve(e, h.UpdateExp, http.MethodPost, "/api/users/update-exp", `{}`, asUser(3))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 90, resp.User.TotalExp)
		mockSvc.AssertExpectations(t)
	})
}
