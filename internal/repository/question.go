package repository

import (
	"context"

	"student-helper/internal/domain"
)

// QuestionRepository 定义了板块内容的只读检索操作。
type QuestionRepository interface {
	// FindBySlug 在指定板块的表中根据 slug 查找内容。
	// 内容不存在时返回 ErrQuestionNotFound。
	FindBySlug(ctx context.Context, category domain.Category, slug string) (*domain.Question, error)
}
