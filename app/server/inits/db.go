package inits

import (
	"context"
	"fmt"
	"hiking-gear-tracker/app/server/identity"
	"hiking-gear-tracker/app/server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string, adminEmail string, adminPassword string) (db *gorm.DB, err error) {
	// 打开连接（ TranslateError 让唯一索引冲突可以被识别为 gorm.ErrDuplicatedKey ）
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, adminEmail, adminPassword); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Item{},
	)
}

func initData(db *gorm.DB, adminEmail string, adminPassword string) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化超级用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // 没有任何用户，添加初始超级用户
		if _, err = identity.New(db).CreateSuperuser(context.Background(), adminEmail, adminPassword); err != nil {
			return fmt.Errorf("failed to create initial superuser: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
