package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"metro-homes/internal/auth"
	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testSecret = []byte("handler-test-secret")

type fakeUserGetter struct {
	users map[string]*models.User
}

func (f *fakeUserGetter) GetUserByEmail(email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func authRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{AuthRequired(testSecret)}
	if guard != nil {
		chain = append(chain, guard)
	}
	chain = append(chain, func(c *gin.Context) {
		claims, _ := ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	r.GET("/protected", chain...)
	return r
}

func doGet(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	w := doGet(authRouter(nil), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	w := doGet(authRouter(nil), "Bearer")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(authRouter(nil), "Bearer ")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBadToken(t *testing.T) {
	w := doGet(authRouter(nil), "Bearer not-a-real-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	token, err := auth.SignToken("buyer@example.com", testSecret)
	require.NoError(t, err)

	w := doGet(authRouter(nil), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "buyer@example.com")
}

func TestRoleGuards(t *testing.T) {
	users := &fakeUserGetter{users: map[string]*models.User{
		"admin@example.com": {Email: "admin@example.com", Role: models.RoleAdmin},
		"agent@example.com": {Email: "agent@example.com", Role: models.RoleAgent},
		"buyer@example.com": {Email: "buyer@example.com"},
	}}

	cases := []struct {
		name  string
		guard gin.HandlerFunc
		email string
		want  int
	}{
		{"admin passes admin guard", AdminRequired(users), "admin@example.com", http.StatusOK},
		{"agent fails admin guard", AdminRequired(users), "agent@example.com", http.StatusForbidden},
		{"agent passes agent guard", AgentRequired(users), "agent@example.com", http.StatusOK},
		{"buyer without role fails agent guard", AgentRequired(users), "buyer@example.com", http.StatusForbidden},
		{"unknown user fails admin guard", AdminRequired(users), "ghost@example.com", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := auth.SignToken(tc.email, testSecret)
			require.NoError(t, err)

			w := doGet(authRouter(tc.guard), "Bearer "+token)
			require.Equal(t, tc.want, w.Code)
		})
	}
}
