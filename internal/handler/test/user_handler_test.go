package test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gameborrow/internal/models"
)

func TestSignUpHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func(*MockUserService)
		expectedStatus int
		shouldCallMock bool
	}{
		{
			name: "created",
			body: map[string]any{"email": "a@b.com", "password": "Abc12345!", "role": "user"},
			mockSetup: func(s *MockUserService) {
				s.On("SignUp", anyCtx, models.SignUpRequest{Email: "a@b.com", Password: "Abc12345!", Role: models.RoleUser}).
					Return(&models.User{ID: "627d4bb8f5fc25bef742f650"}, nil)
			},
			expectedStatus: http.StatusCreated,
			shouldCallMock: true,
		},
		{
			name:           "weak password",
			body:           map[string]any{"email": "a@b.com", "password": "abc12345", "role": "user"},
			mockSetup:      func(s *MockUserService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "passwords do not match",
			body:           map[string]any{"email": "a@b.com", "password": "Abc12345!", "checkPassword": "Abc12345?", "role": "user"},
			mockSetup:      func(s *MockUserService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown role",
			body:           map[string]any{"email": "a@b.com", "password": "Abc12345!", "role": "superuser"},
			mockSetup:      func(s *MockUserService) {},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "duplicate email",
			body: map[string]any{"email": "a@b.com", "password": "Abc12345!", "role": "user"},
			mockSetup: func(s *MockUserService) {
				s.On("SignUp", anyCtx, mock.Anything).Return(nil, models.ErrConflict)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			shouldCallMock: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th := newTestHandlers()
			tc.mockSetup(th.users)
			rr := httptest.NewRecorder()

			th.h.SignUp(rr, newRequest(t, http.MethodPost, "/api/sign-up", tc.body, nil, ""))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.shouldCallMock {
				th.users.AssertExpectations(t)
			} else {
				th.users.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestSignUpHandler_ReturnsUserID(t *testing.T) {
	th := newTestHandlers()
	th.users.On("SignUp", anyCtx, mock.Anything).Return(&models.User{ID: "627d4bb8f5fc25bef742f650"}, nil)
	rr := httptest.NewRecorder()

	th.h.SignUp(rr, newRequest(t, http.MethodPost, "/api/sign-up",
		map[string]any{"email": "a@b.com", "password": "Abc12345!", "role": "user"}, nil, ""))

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeResponse(t, rr)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	user := resp.Data.(map[string]any)["user"].(map[string]any)
	assert.Equal(t, "627d4bb8f5fc25bef742f650", user["_id"])
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"token issued", nil, http.StatusOK},
		{"invalid credentials", models.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unverified", models.ErrEmailNotVerified, http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th := newTestHandlers()
			token := ""
			if tc.serviceErr == nil {
				token = "signed.jwt.token"
			}
			th.users.On("Login", anyCtx, "a@b.com", "Abc12345!").Return(token, tc.serviceErr)
			rr := httptest.NewRecorder()

			th.h.Login(rr, newRequest(t, http.MethodPost, "/api/login",
				map[string]any{"email": "a@b.com", "password": "Abc12345!"}, nil, ""))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.serviceErr == nil {
				resp := decodeResponse(t, rr)
				assert.Equal(t, "signed.jwt.token", resp.Data.(map[string]any)["token"])
			}
		})
	}
}

func TestVerifyEmailHandler(t *testing.T) {
	th := newTestHandlers()
	th.users.On("VerifyEmail", anyCtx, "good").Return(nil)
	th.users.On("VerifyEmail", anyCtx, "bad").Return(models.ErrInvalidToken)

	rr := httptest.NewRecorder()
	th.h.VerifyEmail(rr, newRequest(t, http.MethodPut, "/api/user/verified/good", nil, map[string]string{"token": "good"}, ""))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	th.h.VerifyEmail(rr, newRequest(t, http.MethodPut, "/api/user/verified/bad", nil, map[string]string{"token": "bad"}, ""))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPasswordHandlers(t *testing.T) {
	t.Run("token requested", func(t *testing.T) {
		th := newTestHandlers()
		th.users.On("RequestPasswordReset", anyCtx, "a@b.com").Return(nil)
		rr := httptest.NewRecorder()

		th.h.RequestPasswordToken(rr, newRequest(t, http.MethodPut, "/api/password-token", map[string]any{"email": "a@b.com"}, nil, ""))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("token still live", func(t *testing.T) {
		th := newTestHandlers()
		th.users.On("RequestPasswordReset", anyCtx, "a@b.com").Return(models.ErrTokenNotYetExpired)
		rr := httptest.NewRecorder()

		th.h.RequestPasswordToken(rr, newRequest(t, http.MethodPut, "/api/password-token", map[string]any{"email": "a@b.com"}, nil, ""))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("expired reset token", func(t *testing.T) {
		th := newTestHandlers()
		th.users.On("ResetPassword", anyCtx, "tok", "New12345!").Return(models.ErrTokenExpired)
		rr := httptest.NewRecorder()

		th.h.ResetPassword(rr, newRequest(t, http.MethodPut, "/api/password/tok",
			map[string]any{"password": "New12345!", "checkPassword": "New12345!"}, map[string]string{"token": "tok"}, ""))

		assert.Equal(t, http.StatusPaymentRequired, rr.Code)
		assert.Equal(t, "Token has expired.", decodeResponse(t, rr).Message)
	})

	t.Run("password reset", func(t *testing.T) {
		th := newTestHandlers()
		th.users.On("ResetPassword", anyCtx, "tok", "New12345!").Return(nil)
		rr := httptest.NewRecorder()

		th.h.ResetPassword(rr, newRequest(t, http.MethodPut, "/api/password/tok",
			map[string]any{"password": "New12345!"}, map[string]string{"token": "tok"}, ""))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
