package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-helper/internal/service"
)

// ContentHandler 封装了板块内容页面的 HTTP 处理逻辑
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler 创建 ContentHandler 实例
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Index 处理首页请求，跳转到默认内容页（就业 -> 如何就业）
func (h *ContentHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/employment/how")
}

// Subpage 渲染指定板块和 slug 的内容页
func (h *ContentHandler) Subpage(c *gin.Context) {
	categoryName := c.Param("category")
	slug := c.Param("slug")

	question, err := h.contentService.Lookup(c.Request.Context(), categoryName, slug)
	if err != nil {
		// 未知板块和未知 slug 一律 404，其余为服务器错误
		if err == service.ErrNotFound {
			c.HTML(http.StatusNotFound, "404.html", gin.H{
				"CurrentMain": "",
				"CurrentSub":  "",
				"Username":    currentUsername(c),
				"Flash":       "",
			})
			return
		}
		c.String(http.StatusInternalServerError, "服务器内部错误")
		return
	}

	c.HTML(http.StatusOK, "subpage.html", gin.H{
		"Title":       question.Title,
		"ContentHTML": template.HTML(question.Content), // 内容为站方录入的 HTML
		"CurrentMain": categoryName,
		"CurrentSub":  slug,
		"Username":    currentUsername(c),
		"Flash":       takeFlash(c),
	})
}
