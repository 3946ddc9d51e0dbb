package inventory

import (
	"context"
	"fmt"
	"hiking-gear-tracker/app/server/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	NameMaxLength  = 100 // 名称最大长度
	NotesMaxLength = 255 // 备注最大长度
)

// 重量共 7 位有效数字、小数 2 位，整数部分最多 5 位
var weightMax = decimal.New(1, 5)

// ValidationError 字段校验失败，对外表现为 400 级别的拒绝
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Service 装备访问服务，所有读写都以拥有者为范围
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List 返回拥有者名下的全部装备，按名称倒序。
// 过滤在查询层完成，其他用户的装备不会出现在结果里。
func (s *Service) List(ctx context.Context, ownerID uint) ([]models.Item, error) {
	items := []models.Item{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// Create 创建装备，拥有者一定是请求者本人，调用方传入的其他归属信息一概无效
func (s *Service) Create(ctx context.Context, ownerID uint, name string, notes string, weight decimal.Decimal) (*models.Item, error) {
	if err := validate(name, notes, weight); err != nil {
		return nil, err
	}

	item := models.Item{
		Name:   name,
		Notes:  notes,
		Weight: weight,
		UserID: ownerID,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return &item, nil
}

func validate(name string, notes string, weight decimal.Decimal) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "may not be blank"}
	}
	if len(name) > NameMaxLength {
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("no more than %d characters", NameMaxLength)}
	}
	if len(notes) > NotesMaxLength {
		return &ValidationError{Field: "notes", Reason: fmt.Sprintf("no more than %d characters", NotesMaxLength)}
	}
	// 零重量视为无效输入
	if !weight.IsPositive() {
		return &ValidationError{Field: "weight", Reason: "must be a positive number"}
	}
	if !weight.Equal(weight.Round(2)) {
		return &ValidationError{Field: "weight", Reason: "no more than 2 decimal places"}
	}
	if !weight.LessThan(weightMax) {
		return &ValidationError{Field: "weight", Reason: "no more than 7 digits in total"}
	}

	return nil
}
