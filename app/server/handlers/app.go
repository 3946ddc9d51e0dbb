package handlers

import (
	"hiking-gear-tracker/app/server/identity"
	"hiking-gear-tracker/app/server/inventory"
	"hiking-gear-tracker/app/server/jwt"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l   *zap.Logger   // 日志
	db  *gorm.DB      // 数据库
	rdb *redis.Client // Redis
	jwt *jwt.JWT      // JWT ，用于无状态验证

	identity  *identity.Store    // 用户身份存储
	inventory *inventory.Service // 装备访问服务
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		jwt: j,

		identity:  identity.New(db),
		inventory: inventory.New(db),
	}
}

// RegisterRoutes 绑定全部路由，认证中间件只挂在需要登录的路由上
func RegisterRoutes(e *echo.Echo, a *App, auth []echo.MiddlewareFunc) {
	e.GET("/healthcheck", a.HealthCheck)

	e.POST("/auth/register", a.AuthRegister)
	e.POST("/auth/login", a.AuthLogin)

	e.GET("/users/me", a.UserInfoGetSelf, auth...)

	e.GET("/items/", a.ItemList, auth...)
	e.POST("/items/", a.ItemCreate, auth...)
}
