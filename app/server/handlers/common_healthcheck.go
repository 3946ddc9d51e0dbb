package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) HealthCheck(c echo.Context) error {
	rctx := c.Request().Context()

	// 数据库
	if sqlDB, err := a.db.DB(); err != nil {
		a.l.Error("failed to get database handle", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	} else if err = sqlDB.PingContext(rctx); err != nil {
		a.l.Error("failed to ping database", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	// Redis
	if err := a.rdb.Ping(rctx).Err(); err != nil {
		a.l.Error("failed to ping redis", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
