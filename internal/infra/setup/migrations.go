package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"student-helper/internal/domain"
)

// MigrateDB 创建或更新全部数据表。
// 三个板块使用同构的独立表，逐表迁移同一个 Question 模型。
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	for _, category := range []domain.Category{
		domain.CategoryEmployment,
		domain.CategoryStudy,
		domain.CategoryDaily,
	} {
		if err := db.Table(category.TableName()).AutoMigrate(&domain.Question{}); err != nil {
			return fmt.Errorf("failed to migrate table %s: %w", category.TableName(), err)
		}
	}

	if err := db.AutoMigrate(&domain.Submission{}, &domain.User{}); err != nil {
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}

	logrus.Info("Database migration completed successfully")
	return nil
}
