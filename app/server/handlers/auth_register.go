package handlers

import (
	"errors"
	"hiking-gear-tracker/app/server/identity"
	"hiking-gear-tracker/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req types.RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Password == nil {
		return a.erFields(c, http.StatusBadRequest, map[string]string{"password": "may not be blank"})
	}

	var email string
	if req.Email != nil {
		email = *req.Email
	}

	extra := &identity.Extra{}
	if req.Name != nil {
		extra.Name = *req.Name
	}

	// 创建用户
	user, err := a.identity.CreateUser(rctx, email, *req.Password, extra)
	if err != nil {
		var ve *identity.ValidationError
		if errors.As(err, &ve) {
			return a.erFields(c, http.StatusBadRequest, map[string]string{ve.Field: ve.Reason})
		}
		a.l.Error("failed to create user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, &types.UserInfo{
		Id:    &user.ID,
		Email: &user.Email,
		Name:  &user.Name,
	})
}
