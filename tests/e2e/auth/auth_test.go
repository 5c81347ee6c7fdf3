//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotelcore/internal/domain/staff"
	"hotelcore/internal/handler/dto/request"
	"hotelcore/internal/usecase/queries"
	"hotelcore/tests/common/authtest"
	"hotelcore/tests/common/dbtest"
	"hotelcore/tests/common/httptest"
	"hotelcore/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestStaff(s.T(), s.DB, "frontdesk@example.com", string(staff.RoleReceptionist))
	dbtest.CreateTestStaff(s.T(), s.DB, "retired@example.com", string(staff.RoleReceptionist))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE staff SET is_active = false WHERE email = 'retired@example.com'")
	require.NoError(s.T(), err)
}

func (s *AuthSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "frontdesk@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown email",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "frontdesk@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "retired@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "frontdesk@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				access := httptest.ExtractCookie(w, "access_token")
				refresh := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(t, access)
				require.NotEmpty(t, access.Value)
				require.NotNil(t, refresh)
				require.NotEmpty(t, refresh.Value)
			}
		})
	}
}

func (s *AuthSuite) TestMe() {
	s.Run("returns the authenticated staff member", func() {
		t := s.T()

		token := authtest.LoginStaff(t, s.Router, "frontdesk@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me queries.AuthorizedStaffView
		httptest.DecodeResponseBody(t, w.Body, &me)
		require.Equal(t, "frontdesk@example.com", me.Email)
		require.Equal(t, "receptionist", me.Role)
	})

	s.Run("rejects requests without a token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects garbage tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("clears the session cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "frontdesk@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutStaff(t, s.Router, httptest.ExtractCookies(w))
	})
}
