package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"student-helper/internal/domain"
	"student-helper/internal/repository"
)

// GormSubmissionRepository 是 SubmissionRepository 接口的 GORM 实现
type GormSubmissionRepository struct {
	db *gorm.DB
}

// NewGormSubmissionRepository 创建 GormSubmissionRepository 实例
func NewGormSubmissionRepository(db *gorm.DB) *GormSubmissionRepository {
	if db == nil {
		panic("database connection cannot be nil for GormSubmissionRepository")
	}
	return &GormSubmissionRepository{db: db}
}

// FindAll 返回全部投稿，最新在前
func (r *GormSubmissionRepository) FindAll(ctx context.Context) ([]domain.Submission, error) {
	var submissions []domain.Submission
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list submissions: %w", err)
	}
	return submissions, nil
}

// Create 持久化一条新投稿，GORM 回填 ID 和 CreatedAt
func (r *GormSubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("gorm: create submission: %w", err)
	}
	return nil
}

// DeleteByID 删除指定 ID 的投稿
func (r *GormSubmissionRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Submission{}, id)
	if result.Error != nil {
		return fmt.Errorf("gorm: delete submission %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubmissionNotFound
	}
	return nil
}

// DeleteAll 清空投稿表，返回删除的行数
func (r *GormSubmissionRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Submission{})
	if result.Error != nil {
		return 0, fmt.Errorf("gorm: delete all submissions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
