package handlers

import (
	"hiking-gear-tracker/app/server/types"
	"hiking-gear-tracker/app/server/utils"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: utils.P(http.StatusText(statusCode)),
	})
}

// erFields 带字段级别信息的校验失败返回
func (a *App) erFields(c echo.Context, statusCode int, fields map[string]string) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: utils.P(http.StatusText(statusCode)),
		Fields:  fields,
	})
}
