package handlers

import (
	"hiking-gear-tracker/app/server/middlewares"
	"hiking-gear-tracker/app/server/models"
	"hiking-gear-tracker/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserInfoGetSelf 对用户本身的查询，目标用户直接来自认证中间件
func (a *App) UserInfoGetSelf(c echo.Context) error {
	user, ok := c.Get(middlewares.ContextKeyUser).(*models.User)
	if !ok {
		return a.er(c, http.StatusUnauthorized)
	}

	return c.JSON(http.StatusOK, &types.UserInfo{
		Id:      &user.ID,
		Email:   &user.Email,
		Name:    &user.Name,
		IsStaff: &user.IsStaff,
	})
}
