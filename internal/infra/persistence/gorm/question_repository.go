package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"student-helper/internal/domain"
	"student-helper/internal/repository"
)

// GormQuestionRepository 是 QuestionRepository 接口的 GORM 实现
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewGormQuestionRepository 创建 GormQuestionRepository 实例
func NewGormQuestionRepository(db *gorm.DB) *GormQuestionRepository {
	if db == nil {
		panic("database connection cannot be nil for GormQuestionRepository")
	}
	return &GormQuestionRepository{db: db}
}

// FindBySlug 在指定板块的表中根据 slug 查找内容
func (r *GormQuestionRepository) FindBySlug(ctx context.Context, category domain.Category, slug string) (*domain.Question, error) {
	table := category.TableName()
	if table == "" {
		// 未知板块与内容缺失一样映射为未找到
		return nil, repository.ErrQuestionNotFound
	}

	var question domain.Question
	err := r.db.WithContext(ctx).Table(table).Where("slug = ?", slug).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("gorm: find question '%s/%s': %w", category, slug, err)
	}
	return &question, nil
}
