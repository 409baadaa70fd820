package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(basePath string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	store.Options(sessions.Options{
		Path:     basePath,
		MaxAge:   3600,
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions("portfolio-session", store))
	engine.Use(func(c *gin.Context) {
		c.Set("base_path", basePath)
	})
	return engine
}

func sessionCookies(t *testing.T, w *httptest.ResponseRecorder) []*http.Cookie {
	t.Helper()
	var found []*http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "portfolio-session" {
			found = append(found, ck)
		}
	}
	require.NotEmpty(t, found)
	return found
}

func TestSetMaxAgeKeepsCookieOnBasePath(t *testing.T) {
	engine := testEngine("/panel/")
	engine.GET("/panel/login", func(c *gin.Context) {
		require.NoError(t, SetMaxAge(c, 3600))
		require.NoError(t, SetLoginUser(c, Claims{UserId: 1, DisplayName: "alice"}))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panel/login", nil))

	for _, ck := range sessionCookies(t, w) {
		assert.Equal(t, "/panel/", ck.Path)
	}
}

func TestClearSessionExpiresCookieOnBasePath(t *testing.T) {
	engine := testEngine("/panel/")
	engine.GET("/panel/logout", func(c *gin.Context) {
		require.NoError(t, ClearSession(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panel/logout", nil))

	cookies := sessionCookies(t, w)
	last := cookies[len(cookies)-1]
	assert.Equal(t, "/panel/", last.Path)
	assert.Less(t, last.MaxAge, 0)
}
