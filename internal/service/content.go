package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"student-helper/internal/domain"
	"student-helper/internal/repository"
)

// ContentService 负责板块内容的只读查询。
type ContentService struct {
	questionRepo repository.QuestionRepository
}

// NewContentService 创建 ContentService 实例。
func NewContentService(questionRepo repository.QuestionRepository) *ContentService {
	if questionRepo == nil {
		panic("QuestionRepository cannot be nil for ContentService")
	}
	return &ContentService{questionRepo: questionRepo}
}

// Lookup 根据板块名和 slug 返回内容。
// 未知板块或 slug 都返回 ErrNotFound。
func (s *ContentService) Lookup(ctx context.Context, categoryName, slug string) (*domain.Question, error) {
	category, ok := domain.ParseCategory(categoryName)
	if !ok {
		return nil, ErrNotFound
	}

	question, err := s.questionRepo.FindBySlug(ctx, category, slug)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, ErrNotFound
		}
		logrus.WithError(err).WithFields(logrus.Fields{"category": categoryName, "slug": slug}).
			Error("Database error during content lookup")
		return nil, ErrInternalServer
	}
	return question, nil
}
