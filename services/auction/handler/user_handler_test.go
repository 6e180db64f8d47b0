package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"plate-auction/internal/auctionerrors"
	model "plate-auction/internal/models"
	"plate-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test RegisterHandler
func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuthServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/users", handler.RegisterHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "s3cret",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "s3cret", false).
					Return(model.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user registered successfully",
		},
		{
			name: "success_staff",
			requestBody: helpers.RegisterRequest{
				Username: "admin",
				Email:    "admin@example.com",
				Password: "s3cret",
				IsStaff:  true,
			},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "admin", "admin@example.com", "s3cret", true).
					Return(model.User{ID: 2, Username: "admin", Email: "admin@example.com", IsStaff: true}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user registered successfully",
		},
		{
			name: "username_taken",
			requestBody: helpers.RegisterRequest{
				Username: "alice",
				Email:    "other@example.com",
				Password: "s3cret",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Register(gomock.Any(), "alice", "other@example.com", "s3cret", false).
					Return(model.User{}, auctionerrors.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "username already registered",
		},
		{
			name: "invalid_email",
			requestBody: helpers.RegisterRequest{
				Username: "alice",
				Email:    "not-an-email",
				Password: "s3cret",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_fields",
			requestBody:    helpers.RegisterRequest{Username: "alice"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.NotContains(t, data, "hashed_password")
				require.NotContains(t, data, "password")
			}
		})
	}
}

// Test LoginHandler
func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuthServiceInterface(ctrl)
	handler := NewUserHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/login", handler.LoginHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success",
			requestBody: helpers.LoginRequest{Username: "alice", Password: "s3cret"},
			mockSetup: func() {
				mockService.EXPECT().
					Login(gomock.Any(), "alice", "s3cret").
					Return("signed.jwt.token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "login successful",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "signed.jwt.token", data["access_token"])
				require.Equal(t, "bearer", data["token_type"])
			},
		},
		{
			name:        "bad_credentials",
			requestBody: helpers.LoginRequest{Username: "alice", Password: "wrong"},
			mockSetup: func() {
				mockService.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return("", auctionerrors.ErrBadCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "incorrect username or password",
		},
		{
			name:           "missing_password",
			requestBody:    helpers.LoginRequest{Username: "alice"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}
