package identity

import (
	"context"
	"errors"
	"fmt"
	"hiking-gear-tracker/app/server/models"

	"github.com/alexedwards/argon2id"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 邮箱不存在或密码不匹配，对外统一表现为未认证
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError 字段校验失败，对外表现为 400 级别的拒绝
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Extra 创建用户时的可选资料字段
type Extra struct {
	Name     string
	IsActive *bool // 不指定时默认启用
}

// Store 用户身份存储，负责用户的创建、规范化与凭据校验
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateUser 创建用户：邮箱必填且全局唯一，密码在持久化之前完成哈希
func (s *Store) CreateUser(ctx context.Context, email string, password string, extra *Extra) (*models.User, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "must have an email address"}
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:    NormalizeEmail(email),
		Password: passwordHash,
		IsActive: true,
	}
	if extra != nil {
		user.Name = extra.Name
		if extra.IsActive != nil {
			user.IsActive = *extra.IsActive
		}
	}

	// 唯一性由数据库的唯一索引保证，避免先查再插的竞争
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ValidationError{Field: "email", Reason: "already registered"}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// CreateSuperuser 创建超级用户：先按普通流程创建，再补充 staff 与 superuser 标记
func (s *Store) CreateSuperuser(ctx context.Context, email string, password string) (*models.User, error) {
	user, err := s.CreateUser(ctx, email, password, nil)
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.db.WithContext(ctx).Model(user).Updates(map[string]interface{}{
		"is_staff":     true,
		"is_superuser": true,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update superuser flags: %w", err)
	}

	return user, nil
}

// VerifyCredentials 按规范化邮箱查找用户并校验密码哈希
func (s *Store) VerifyCredentials(ctx context.Context, email string, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		return nil, fmt.Errorf("failed to check password: %w", err)
	} else if !match {
		// 密码不一致
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
