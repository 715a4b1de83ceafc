//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"parkhub/internal/domain/user"
	"parkhub/internal/handler/dto/request"
	"parkhub/tests/common/authtest"
	"parkhub/tests/common/dbtest"
	"parkhub/tests/common/httptest"
	"parkhub/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "driver@example.com", string(user.RoleDriver))
	dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleOwner))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleDriver))

	// 非アクティブユーザーを作成
	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		email          string
		password       string
		role           string
		expectedStatus int
		description    string
	}{
		{
			name:           "ドライバー登録",
			email:          "newdriver@example.com",
			password:       "password123",
			role:           "driver",
			expectedStatus: http.StatusCreated,
			description:    "ドライバーアカウントを登録できること",
		},
		{
			name:           "オーナー登録",
			email:          "newowner@example.com",
			password:       "password123",
			role:           "owner",
			expectedStatus: http.StatusCreated,
			description:    "オーナーアカウントを登録できること",
		},
		{
			name:           "管理者ロールは拒否",
			email:          "sneaky@example.com",
			password:       "password123",
			role:           "admin",
			expectedStatus: http.StatusBadRequest,
			description:    "管理者ロールでのセルフ登録は拒否されること",
		},
		{
			name:           "既存メールアドレス",
			email:          "driver@example.com",
			password:       "password123",
			role:           "driver",
			expectedStatus: http.StatusConflict,
			description:    "既に使われているメールアドレスは拒否されること",
		},
		{
			name:           "短すぎるパスワード",
			email:          "short@example.com",
			password:       "short",
			role:           "driver",
			expectedStatus: http.StatusBadRequest,
			description:    "8文字未満のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RegisterRequest{
				Email:    tt.email,
				Password: tt.password,
				Role:     tt.role,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				// 登録直後にログインできること
				token := authtest.LoginUser(t, s.Router, tt.email, tt.password)
				require.NotEmpty(t, token)
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "driver@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "driver@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "driver@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				// トークンはクッキーで返ること
				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "アクセストークンのクッキーがない")
				require.NotEmpty(t, accessCookie.Value)

				refreshCookie := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(t, refreshCookie, "リフレッシュトークンのクッキーがない")
				require.NotEmpty(t, refreshCookie.Value)

				// last_loginが更新されることを確認
				var lastLogin interface{}
				err := s.DB.QueryRow(s.T().Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
		description       string
	}{
		{
			name: "正常なリフレッシュ",
			setupRefreshToken: func() string {
				reqBody := request.LoginRequest{
					Email:    "driver@example.com",
					Password: "password123",
				}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				refreshCookie := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(s.T(), refreshCookie)
				return refreshCookie.Value
			},
			expectedStatus: http.StatusNoContent,
			description:    "有効なリフレッシュトークンでトークンが更新されること",
		},
		{
			name: "無効なリフレッシュトークン",
			setupRefreshToken: func() string {
				return "invalid-refresh-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なリフレッシュトークンは拒否されること",
		},
		{
			name: "リフレッシュトークンなし",
			setupRefreshToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "リフレッシュトークンなしは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			refreshToken := tt.setupRefreshToken()
			var cookies []*http.Cookie
			if refreshToken != "" {
				cookies = append(cookies, &http.Cookie{Name: "refresh_token", Value: refreshToken})
			}

			w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusNoContent {
				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie, "新しいアクセストークンが発行されていない")
				require.NotEmpty(t, accessCookie.Value)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "driver@example.com", "password123")
		cookies := []*http.Cookie{{Name: "access_token", Value: token}}
		authtest.LogoutUser(t, s.Router, cookies)
	})

	s.Run("トークンなし", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "トークンなしでログアウトできないこと")
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "ドライバーユーザーの情報取得",
			setupUser: func() (string, string, string) {
				email := "driver2@example.com"
				role := string(user.RoleDriver)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "ドライバーユーザーの情報が取得できること",
		},
		{
			name: "オーナーユーザーの情報取得",
			setupUser: func() (string, string, string) {
				email := "owner2@example.com"
				role := string(user.RoleOwner)
				token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "オーナーユーザーの情報が取得できること",
		},
		{
			name: "無効なトークン",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "無効なトークンでは情報取得できないこと",
		},
		{
			name: "トークンなし",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "トークンなしでは情報取得できないこと",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email, "レスポンスにメールアドレスが含まれていない")
				require.Contains(t, responseBody, role, "レスポンスにロールが含まれていない")
				require.NotContains(t, responseBody, "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleDriver))

		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleDriver)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})

	s.Run("有効期限内のトークンは受理される", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "fresh@example.com", string(user.RoleDriver))

		token := s.jwtHelper.GenerateToken(t, userID, user.RoleDriver)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("認証が必要なエンドポイント", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/reservations"},
			{http.MethodGet, "/api/sessions"},
			{http.MethodGet, "/api/subscriptions"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "認証なしでは拒否されるべき")
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		t := s.T()

		email := "concurrent@example.com"
		dbtest.CreateTestUser(t, s.DB, email, string(user.RoleDriver))

		// 複数回ログイン
		token1 := authtest.LoginUser(t, s.Router, email, "password123")
		token2 := authtest.LoginUser(t, s.Router, email, "password123")

		// 両方のトークンが有効であることを確認
		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code, "最初のトークンが無効")
		require.Equal(t, http.StatusOK, w2.Code, "二番目のトークンが無効")
	})
}
