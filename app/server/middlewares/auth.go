package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"
	"hiking-gear-tracker/app/server/constants"
	appjwt "hiking-gear-tracker/app/server/jwt"
	"hiking-gear-tracker/app/server/models"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// ContextKeyToken echo-jwt 校验后的令牌存放的 key
	ContextKeyToken = "token"
	// ContextKeyUser 加载完成的当前用户存放的 key
	ContextKeyUser = "user"
)

// Auth 校验 Bearer JWT 并加载对应的用户，存入 context 供 handler 使用。
// 用户记录带 Redis 缓存，减少每个请求的数据库查询。
func Auth(db *gorm.DB, rdb *redis.Client, j *appjwt.JWT, l *zap.Logger) []echo.MiddlewareFunc {
	// 第一步：令牌签名与有效期校验
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey: j.Key(),
		ContextKey: ContextKeyToken,
		ErrorHandler: func(c echo.Context, err error) error {
			// 缺失或无效的令牌一律按未认证处理
			return c.NoContent(http.StatusUnauthorized)
		},
	})

	// 第二步：解析声明并加载用户
	load := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rctx := c.Request().Context()

			token, ok := c.Get(ContextKeyToken).(*jwt.Token)
			if !ok {
				return c.NoContent(http.StatusUnauthorized)
			}

			jwtUser, err := j.UserFromToken(token)
			if err != nil {
				return c.NoContent(http.StatusUnauthorized)
			}

			var user models.User

			// 查询缓存
			cacheKey := fmt.Sprintf(constants.CacheKeyUserInfo, jwtUser.ID)
			if cacheBytes, err := rdb.Get(rctx, cacheKey).Bytes(); err != nil {
				if !errors.Is(err, redis.Nil) {
					l.Error("failed to query cache for user info", zap.Uint("id", jwtUser.ID), zap.Error(err))
				}
			} else if err = json.Unmarshal(cacheBytes, &user); err != nil {
				l.Error("failed to unmarshal user info", zap.Uint("id", jwtUser.ID), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
				// 可能是无效的缓存，清理掉
				rdb.Del(rctx, cacheKey)
			} else {
				// 成功拉取到并格式化
				if !user.IsActive {
					return c.NoContent(http.StatusUnauthorized)
				}

				// 设置 context
				c.Set(ContextKeyUser, &user)

				// 继续处理
				return next(c)
			}

			// 查询数据库
			if err = db.WithContext(rctx).First(&user, "id = ?", jwtUser.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.NoContent(http.StatusUnauthorized)
				} else {
					l.Error("failed to query user", zap.Uint("id", jwtUser.ID), zap.Error(err))
					return c.NoContent(http.StatusInternalServerError)
				}
			}

			// 格式化并加入缓存，方便下一次查询
			if cacheBytes, err := json.Marshal(&user); err != nil {
				l.Error("failed to marshal user info", zap.Uint("id", jwtUser.ID), zap.Error(err))
			} else {
				rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireUserInfo)
			}

			if !user.IsActive {
				return c.NoContent(http.StatusUnauthorized)
			}

			// 设置 context
			c.Set(ContextKeyUser, &user)

			// 继续处理
			return next(c)
		}
	}

	return []echo.MiddlewareFunc{verify, load}
}
