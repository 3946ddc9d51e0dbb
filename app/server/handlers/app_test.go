package handlers

import (
	"encoding/json"
	"fmt"
	"hiking-gear-tracker/app/server/jwt"
	"hiking-gear-tracker/app/server/middlewares"
	"hiking-gear-tracker/app/server/models"
	"hiking-gear-tracker/app/server/types"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestApp 组装一个与生产完全相同形状的服务：真实的 echo 路由、
// 认证中间件、 GORM （内存 sqlite ）与 Redis （ miniredis ）
func newTestApp(t *testing.T) (*echo.Echo, *App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	j, err := jwt.New("test-signature-secret")
	require.NoError(t, err)

	l := zap.NewNop()
	a := NewApp(l, db, rdb, j)

	e := echo.New()
	RegisterRoutes(e, a, middlewares.Auth(db, rdb, j, l))

	return e, a
}

func doJSON(t *testing.T, e *echo.Echo, method string, path string, token string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func registerAndLogin(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/auth/register", "",
		fmt.Sprintf(`{"email":%q,"password":"testpass123","name":"Test User"}`, email))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, e, http.MethodPost, "/auth/login", "",
		fmt.Sprintf(`{"email":%q,"password":"testpass123"}`, email))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res types.LoginToken
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.Token)
	require.NotEmpty(t, *res.Token)

	return *res.Token
}
