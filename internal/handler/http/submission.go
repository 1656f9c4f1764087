package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"student-helper/internal/service"
)

// SubmissionHandler 封装了投稿页面和投稿 API 的 HTTP 处理逻辑
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler 创建 SubmissionHandler 实例
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// ShowSubmitForm 渲染投稿表单页
func (h *SubmissionHandler) ShowSubmitForm(c *gin.Context) {
	c.HTML(http.StatusOK, "submit.html", gin.H{
		"CurrentMain": "submit",
		"CurrentSub":  "",
		"Username":    currentUsername(c),
		"Flash":       takeFlash(c),
	})
}

// submissionRequest 定义创建投稿的请求体。
// JSON 请求体优先：Content-Type 为 application/json 时按 JSON 解析，
// 其余情况按表单解析。
type submissionRequest struct {
	Name    string `json:"name" form:"name"`
	Title   string `json:"title" form:"title"`
	Message string `json:"message" form:"message"`
}

// createSubmissionResponse 定义创建投稿成功的响应结构体
type createSubmissionResponse struct {
	ID        uint   `json:"id"`
	CreatedAt string `json:"created_at"`
}

// List 以 JSON 返回全部投稿，最新在前
func (h *SubmissionHandler) List(c *gin.Context) {
	submissions, err := h.submissionService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, submissions)
}

// Create 处理创建投稿的请求
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req submissionRequest
	var err error
	if strings.HasPrefix(c.ContentType(), "application/json") {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBind(&req)
	}
	if err != nil {
		logrus.WithError(err).Warn("Handler.CreateSubmission: invalid request body")
		ErrorResponse(c, http.StatusBadRequest, "message is required")
		return
	}

	submission, err := h.submissionService.Create(c.Request.Context(), req.Name, req.Title, req.Message)
	if err != nil {
		if err == service.ErrInvalidInput {
			ErrorResponse(c, http.StatusBadRequest, "message is required")
			return
		}
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, createSubmissionResponse{
		ID:        submission.ID,
		CreatedAt: submission.CreatedAt.Format(time.RFC3339),
	})
}

// DeleteOne 删除指定 ID 的投稿
func (h *SubmissionHandler) DeleteOne(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		ErrorResponse(c, http.StatusNotFound, "not found")
		return
	}

	if err := h.submissionService.Delete(c.Request.Context(), uint(id)); err != nil {
		if err == service.ErrNotFound {
			ErrorResponse(c, http.StatusNotFound, "not found")
			return
		}
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"deleted": 1})
}

// DeleteAll 清空全部投稿。路由上要求已登录会话。
func (h *SubmissionHandler) DeleteAll(c *gin.Context) {
	deleted, err := h.submissionService.DeleteAll(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"deleted": deleted})
}
