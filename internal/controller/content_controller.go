package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/service"
	"sofreh_salawat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
	StorageService *service.StorageService
}

func NewContentController(contentService *service.ContentService, storageService *service.StorageService) *ContentController {
	return &ContentController{
		ContentService: contentService,
		StorageService: storageService,
	}
}

// List godoc
// @Summary Paginated active content, optionally by type
// @Tags content
// @Produce json
// @Param type query string false "DUA|HADITH|SALAWAT_TEXT|SALAWAT_AUDIO|ETIQUETTE"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/content [get]
func (c *ContentController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx)
	contentType := model.ContentType(ctx.Query("type"))

	items, total, err := c.ContentService.List(ctx.Request.Context(), contentType, page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"content":    items,
		"pagination": util.NewPagination(page, limit, total),
	})
}

// GetByType godoc
// @Summary All active content of one type
// @Tags content
// @Produce json
// @Param type path string true "content type"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/content/{type} [get]
func (c *ContentController) GetByType(ctx *gin.Context) {
	items, err := c.ContentService.ListByType(model.ContentType(ctx.Param("type")))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"content": items})
}

// swagger:model CreateContentRequest
type CreateContentRequest struct {
	Title    string            `json:"title" binding:"required"`
	Content  string            `json:"content" binding:"required"`
	Type     model.ContentType `json:"type" binding:"required"`
	AudioURL string            `json:"audioUrl"`
	ImageURL string            `json:"imageUrl"`
	IsActive *bool             `json:"isActive"`
}

// Create godoc
// @Summary Create content (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateContentRequest true "content payload"
// @Success 201 {object} util.Response
// @Router /api/admin/content [post]
func (c *ContentController) Create(ctx *gin.Context) {
	var req CreateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	content := &model.ReligiousContent{
		Title:    req.Title,
		Content:  req.Content,
		Type:     req.Type,
		AudioURL: req.AudioURL,
		ImageURL: req.ImageURL,
		IsActive: isActive,
	}

	if err := c.ContentService.Create(content); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, "محتوا با موفقیت ایجاد شد", gin.H{"content": content})
}

type UpdateContentRequest struct {
	Title    *string            `json:"title"`
	Content  *string            `json:"content"`
	Type     *model.ContentType `json:"type"`
	AudioURL *string            `json:"audioUrl"`
	ImageURL *string            `json:"imageUrl"`
	IsActive *bool              `json:"isActive"`
}

// Update godoc
// @Summary Update content (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "content id"
// @Success 200 {object} util.Response
// @Router /api/admin/content/{id} [put]
func (c *ContentController) Update(ctx *gin.Context) {
	var req UpdateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.ContentService.Update(ctx.Param("id"), func(m *model.ReligiousContent) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Content != nil {
			m.Content = *req.Content
		}
		if req.Type != nil {
			m.Type = *req.Type
		}
		if req.AudioURL != nil {
			m.AudioURL = *req.AudioURL
		}
		if req.ImageURL != nil {
			m.ImageURL = *req.ImageURL
		}
		if req.IsActive != nil {
			m.IsActive = *req.IsActive
		}
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "محتوا با موفقیت بروزرسانی شد", gin.H{"content": content})
}

// Delete godoc
// @Summary Delete content (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "content id"
// @Success 200 {object} util.Response
// @Router /api/admin/content/{id} [delete]
func (c *ContentController) Delete(ctx *gin.Context) {
	if err := c.ContentService.Delete(ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "محتوا با موفقیت حذف شد", nil)
}

// UploadAudio godoc
// @Summary Attach an audio file to a content row (admin)
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "content id"
// @Param file formData file true "audio file"
// @Success 200 {object} util.Response
// @Router /api/admin/content/{id}/audio [post]
func (c *ContentController) UploadAudio(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "فایل صوتی ارائه نشده است")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("audio/%d%s", time.Now().UnixNano(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	content, err := c.ContentService.SetAudioURL(ctx.Param("id"), url)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "فایل صوتی با موفقیت بارگذاری شد", gin.H{"content": content})
}
