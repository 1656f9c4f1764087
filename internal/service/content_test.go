package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"student-helper/internal/domain"
	"student-helper/internal/repository"
	"student-helper/internal/repository/mocks"
	"student-helper/internal/service"
)

func TestContentService_Lookup_Success(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(mocks.QuestionRepository)
	contentService := service.NewContentService(mockQuestionRepo)
	ctx := context.Background()

	seeded := &domain.Question{ID: 1, Slug: "how", Title: "如何就业", Content: "<p>投递简历、面试准备与职业定位建议。</p>"}
	mockQuestionRepo.On("FindBySlug", ctx, domain.CategoryEmployment, "how").Return(seeded, nil).Once()

	// Act
	question, err := contentService.Lookup(ctx, "employment", "how")

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, "如何就业", question.Title, "应返回种子数据中的标题")
	assert.Equal(t, seeded.Content, question.Content, "应返回种子数据中的内容")

	mockQuestionRepo.AssertExpectations(t)
}

func TestContentService_Lookup_UnknownCategory(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(mocks.QuestionRepository)
	contentService := service.NewContentService(mockQuestionRepo)

	// Act
	question, err := contentService.Lookup(context.Background(), "gaming", "how")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound), "未知板块应返回 ErrNotFound")
	assert.Nil(t, question)

	// 未知板块不应触发数据库查询
	mockQuestionRepo.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything, mock.Anything)
}

func TestContentService_Lookup_UnknownSlug(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(mocks.QuestionRepository)
	contentService := service.NewContentService(mockQuestionRepo)
	ctx := context.Background()

	mockQuestionRepo.On("FindBySlug", ctx, domain.CategoryStudy, "missing").
		Return(nil, repository.ErrQuestionNotFound).Once()

	// Act
	question, err := contentService.Lookup(ctx, "study", "missing")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNotFound), "未知 slug 应返回 ErrNotFound")
	assert.Nil(t, question)

	mockQuestionRepo.AssertExpectations(t)
}

func TestContentService_Lookup_StorageError(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(mocks.QuestionRepository)
	contentService := service.NewContentService(mockQuestionRepo)
	ctx := context.Background()

	mockQuestionRepo.On("FindBySlug", ctx, domain.CategoryDaily, "school").
		Return(nil, errors.New("gorm: connection refused")).Once()

	// Act
	_, err := contentService.Lookup(ctx, "daily", "school")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInternalServer), "数据库故障应映射为 ErrInternalServer")

	mockQuestionRepo.AssertExpectations(t)
}
