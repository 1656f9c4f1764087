package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"student-helper/internal/domain"
	httpHandler "student-helper/internal/handler/http"
	"student-helper/internal/middleware"
	"student-helper/internal/repository"
	"student-helper/internal/repository/mocks"
	"student-helper/internal/service"
)

const testSessionSecret = "test-session-secret"

// newTestRouter 组装一条真实的 handler→service 链路，只有存储层是 mock
func newTestRouter(submissionRepo *mocks.SubmissionRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	submissionService := service.NewSubmissionService(submissionRepo)
	submissionHandler := httpHandler.NewSubmissionHandler(submissionService)

	router := gin.New()
	router.Use(middleware.CurrentUser(testSessionSecret))
	api := router.Group("/api")
	{
		api.GET("/submissions", submissionHandler.List)
		api.POST("/submissions", submissionHandler.Create)
		api.DELETE("/submissions/:id", submissionHandler.DeleteOne)
		api.DELETE("/submissions", middleware.RequireAuth(), submissionHandler.DeleteAll)
	}
	return router
}

// sessionCookie 为测试签发一个有效的会话 cookie
func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  1,
		"username": "admin",
		"exp":      time.Now().Add(time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	})
	tokenStr, err := token.SignedString([]byte(testSessionSecret))
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: tokenStr}
}

func TestCreateSubmission_JSON(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)
	createdAt := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Submission) bool {
		return s.Name == "A" && s.Title == "T" && s.Message == "hi"
	})).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*domain.Submission)
			s.ID = 1
			s.CreatedAt = createdAt
		}).
		Return(nil).
		Once()

	// Act
	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name":"A","title":"T","message":"hi"}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/submissions", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		ID        uint   `json:"id"`
		CreatedAt string `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, createdAt.Format(time.RFC3339), resp.CreatedAt, "created_at 应为 ISO 格式")

	mockRepo.AssertExpectations(t)
}

func TestCreateSubmission_Form(t *testing.T) {
	// 非 JSON 请求按表单解析
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Submission) bool {
		return s.Message == "表单投稿"
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Submission).ID = 2
		}).
		Return(nil).
		Once()

	form := url.Values{}
	form.Set("message", "表单投稿")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreateSubmission_MissingMessage(t *testing.T) {
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name":"A","message":""}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/submissions", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message is required")

	// 校验失败不应创建任何行
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListSubmissions(t *testing.T) {
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)

	mockRepo.On("FindAll", mock.Anything).Return([]domain.Submission{
		{ID: 2, Name: "B", Message: "newer", CreatedAt: time.Now()},
		{ID: 1, Name: "A", Message: "older", CreatedAt: time.Now().Add(-time.Hour)},
	}, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/submissions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, float64(2), resp[0]["id"], "最新的投稿应排在最前")

	mockRepo.AssertExpectations(t)
}

func TestDeleteSubmission_NotFound(t *testing.T) {
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)

	mockRepo.On("DeleteByID", mock.Anything, uint(99)).Return(repository.ErrSubmissionNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/submissions/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")

	mockRepo.AssertExpectations(t)
}

func TestDeleteSubmission_InvalidID(t *testing.T) {
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/submissions/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestDeleteSubmission_Success(t *testing.T) {
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)

	mockRepo.On("DeleteByID", mock.Anything, uint(3)).Return(nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/submissions/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": 1}`, w.Body.String())

	mockRepo.AssertExpectations(t)
}

func TestDeleteAllSubmissions_RequiresSession(t *testing.T) {
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/submissions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "匿名请求不允许清空投稿")
	mockRepo.AssertNotCalled(t, "DeleteAll", mock.Anything)
}

func TestDeleteAllSubmissions_WithSession(t *testing.T) {
	mockRepo := new(mocks.SubmissionRepository)
	router := newTestRouter(mockRepo)

	mockRepo.On("DeleteAll", mock.Anything).Return(int64(4), nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/submissions", nil)
	req.AddCookie(sessionCookie(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": 4}`, w.Body.String())

	mockRepo.AssertExpectations(t)
}
