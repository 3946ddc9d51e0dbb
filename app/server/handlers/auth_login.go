package handlers

import (
	"errors"
	"hiking-gear-tracker/app/server/constants"
	"hiking-gear-tracker/app/server/identity"
	"hiking-gear-tracker/app/server/jwt"
	"hiking-gear-tracker/app/server/types"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写邮箱或密码
	if req.Email == nil || req.Password == nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 校验凭据
	user, err := a.identity.VerifyCredentials(rctx, *req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return a.er(c, http.StatusUnauthorized)
		}
		a.l.Error("failed to verify credentials", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 停用的账户不能登录
	if !user.IsActive {
		return a.er(c, http.StatusUnauthorized)
	}

	// 签出 JWT
	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.SignToken(&jwt.User{
		ID:      user.ID,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusOK, &types.LoginToken{
		Token: &token,
	})
}
