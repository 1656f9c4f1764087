package repository

import (
	"context"

	"student-helper/internal/domain"
)

// SubmissionRepository 定义了用户投稿的存储操作。
type SubmissionRepository interface {
	// FindAll 返回全部投稿，按 created_at 降序排列（最新在前）。
	FindAll(ctx context.Context) ([]domain.Submission, error)

	// Create 持久化一条新投稿，数据库负责分配 ID 和 created_at。
	Create(ctx context.Context, submission *domain.Submission) error

	// DeleteByID 删除指定 ID 的投稿。
	// 投稿不存在时返回 ErrSubmissionNotFound。
	DeleteByID(ctx context.Context, id uint) error

	// DeleteAll 删除全部投稿，返回删除的行数。
	DeleteAll(ctx context.Context) (int64, error)
}
