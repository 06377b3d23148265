package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/logger"
	"github.com/pageza/recipebox/backend/internal/middleware"
	"github.com/pageza/recipebox/backend/internal/service"
	"github.com/pageza/recipebox/backend/internal/session"
	"github.com/pageza/recipebox/backend/internal/testhelpers"
	"github.com/pageza/recipebox/backend/internal/web"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testApp struct {
	router   *gin.Engine
	db       *gorm.DB
	auth     *service.AuthService
	recipes  *service.RecipeService
	sessions *session.Manager
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLite(t)
	app := &testApp{
		db:       db,
		auth:     service.NewAuthService(db).WithBcryptCost(bcrypt.MinCost),
		recipes:  service.NewRecipeService(db),
		sessions: session.NewManager(testSecret, time.Hour, false),
	}

	app.router = newRouter(t, Dependencies{
		Auth:        app.auth,
		Comments:    service.NewCommentService(db),
		Recipes:     app.recipes,
		Ingredients: service.NewIngredientService(db),
		Sessions:    app.sessions,
		HealthCheck: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	})
	return app
}

func newRouter(t *testing.T, deps Dependencies) *gin.Engine {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.RequestLogger(logger.Nop()), middleware.Recovery())
	router.SetHTMLTemplate(tmpl)
	RegisterRoutes(router, deps)
	return router
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return a.do(req)
}

func (a *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return a.do(req)
}

// signup registers username and logs in, returning the session cookie
func (a *testApp) signup(t *testing.T, username string) *http.Cookie {
	t.Helper()
	_, err := a.auth.Register(context.Background(), username, username+"@example.com", "password123")
	require.NoError(t, err)

	w := a.postForm("/login", url.Values{"username": {username}, "password": {"password123"}})
	require.Equal(t, http.StatusFound, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	return cookie
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}
