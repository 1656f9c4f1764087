package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"student-helper/internal/domain"
	"student-helper/internal/repository"
)

// SubmissionService 负责用户投稿的业务逻辑。
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
}

// NewSubmissionService 创建 SubmissionService 实例。
func NewSubmissionService(submissionRepo repository.SubmissionRepository) *SubmissionService {
	if submissionRepo == nil {
		panic("SubmissionRepository cannot be nil for SubmissionService")
	}
	return &SubmissionService{submissionRepo: submissionRepo}
}

// List 返回全部投稿，最新在前。
func (s *SubmissionService) List(ctx context.Context) ([]domain.Submission, error) {
	submissions, err := s.submissionRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Database error while listing submissions")
		return nil, ErrInternalServer
	}
	return submissions, nil
}

// Create 创建一条投稿。message 为必填项，name 和 title 可选。
func (s *SubmissionService) Create(ctx context.Context, name, title, message string) (*domain.Submission, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrInvalidInput
	}

	submission := &domain.Submission{
		Name:    name,
		Title:   title,
		Message: message,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		logrus.WithError(err).Error("Database error while creating submission")
		return nil, ErrInternalServer
	}

	logrus.WithField("submission_id", submission.ID).Info("Submission created")
	return submission, nil
}

// Delete 删除指定 ID 的投稿。
func (s *SubmissionService) Delete(ctx context.Context, id uint) error {
	if err := s.submissionRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return ErrNotFound
		}
		logrus.WithError(err).WithField("submission_id", id).Error("Database error while deleting submission")
		return ErrInternalServer
	}
	logrus.WithField("submission_id", id).Info("Submission deleted")
	return nil
}

// DeleteAll 清空投稿表，返回删除的条数。
func (s *SubmissionService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.submissionRepo.DeleteAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Database error while deleting all submissions")
		return 0, ErrInternalServer
	}
	logrus.WithField("deleted", deleted).Info("All submissions deleted")
	return deleted, nil
}
