package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"hiking-gear-tracker/app/server/constants"
	"hiking-gear-tracker/app/server/inventory"
	"hiking-gear-tracker/app/server/middlewares"
	"hiking-gear-tracker/app/server/models"
	"hiking-gear-tracker/app/server/types"
	"hiking-gear-tracker/app/server/utils"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (a *App) itemInfo(item *models.Item) types.ItemInfoWithID {
	return types.ItemInfoWithID{
		Id:     &item.ID,
		Name:   &item.Name,
		Notes:  &item.Notes,
		Weight: utils.P(item.Weight.StringFixed(2)),
	}
}

func (a *App) ItemList(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, ok := c.Get(middlewares.ContextKeyUser).(*models.User)
	if !ok {
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyUserItems, user.ID)
	if cacheBytes, err := a.rdb.Get(rctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for item list", zap.Uint("id", user.ID), zap.Error(err))
		}
	} else {
		var cached []types.ItemInfoWithID
		if err = json.Unmarshal(cacheBytes, &cached); err != nil {
			a.l.Error("failed to unmarshal item list", zap.Uint("id", user.ID), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
			// 可能是无效的缓存，清理掉
			a.rdb.Del(rctx, cacheKey)
		} else {
			return c.JSON(http.StatusOK, cached)
		}
	}

	// 查询数据库，只包含请求者自己的装备
	items, err := a.inventory.List(rctx, user.ID)
	if err != nil {
		a.l.Error("failed to get item list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resItems := []types.ItemInfoWithID{}
	for i := range items {
		resItems = append(resItems, a.itemInfo(&items[i]))
	}

	// 格式化并加入缓存，方便下一次查询
	if cacheBytes, err := json.Marshal(resItems); err != nil {
		a.l.Error("failed to marshal item list", zap.Uint("id", user.ID), zap.Error(err))
	} else {
		a.rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireUserItems)
	}

	return c.JSON(http.StatusOK, resItems)
}

func (a *App) ItemCreate(c echo.Context) error {
	// 抓取 user 信息（认证）
	user, ok := c.Get(middlewares.ContextKeyUser).(*models.User)
	if !ok {
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req types.ItemInfoInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	var (
		name   string
		notes  string
		weight = decimal.Zero
	)
	if req.Name != nil {
		name = *req.Name
	}
	if req.Notes != nil {
		notes = *req.Notes
	}
	if req.Weight != nil {
		weight = *req.Weight
	}

	// 创建，拥有者固定为请求者本人
	item, err := a.inventory.Create(rctx, user.ID, name, notes, weight)
	if err != nil {
		var ve *inventory.ValidationError
		if errors.As(err, &ve) {
			return a.erFields(c, http.StatusBadRequest, map[string]string{ve.Field: ve.Reason})
		}
		a.l.Error("failed to create item", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 清理列表缓存
	a.rdb.Del(rctx, fmt.Sprintf(constants.CacheKeyUserItems, user.ID))

	return c.JSON(http.StatusCreated, a.itemInfo(item))
}
