package controller

import (
	"strconv"
	"time"

	"sofreh_salawat_backend/internal/model"
	"sofreh_salawat_backend/internal/service"
	"sofreh_salawat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PrayerController struct {
	PrayerService *service.PrayerService
}

func NewPrayerController(prayerService *service.PrayerService) *PrayerController {
	return &PrayerController{PrayerService: prayerService}
}

// parsePagination reads ?page=&limit= with the catalog defaults.
func parsePagination(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// swagger:model CreatePrayerRequest
type CreatePrayerRequest struct {
	Title       string     `json:"title" binding:"required,min=3"`
	Description string     `json:"description"`
	Intention   string     `json:"intention" binding:"required,min=5"`
	TargetCount int64      `json:"targetCount" binding:"required,min=1"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
	IsPublic    *bool      `json:"isPublic"`
}

// Create godoc
// @Summary Create a salawat campaign
// @Tags prayers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreatePrayerRequest true "campaign payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/prayers [post]
func (c *PrayerController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	var req CreatePrayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prayer, err := c.PrayerService.Create(claims.UserID, service.CreatePrayerInput{
		Title:       req.Title,
		Description: req.Description,
		Intention:   req.Intention,
		TargetCount: req.TargetCount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, "ختم صلوات با موفقیت ایجاد شد", gin.H{"prayer": prayer})
}

// List godoc
// @Summary Paginated public campaigns
// @Tags prayers
// @Produce json
// @Param status query string false "ACTIVE|COMPLETED|PAUSED|CANCELLED"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/prayers [get]
func (c *PrayerController) List(ctx *gin.Context) {
	page, limit := parsePagination(ctx)
	status := model.PrayerStatus(ctx.Query("status"))

	prayers, total, err := c.PrayerService.List(status, page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"prayers":    prayers,
		"pagination": util.NewPagination(page, limit, total),
	})
}

// Get godoc
// @Summary Campaign detail with creator, stats and recent participations
// @Tags prayers
// @Produce json
// @Param id path string true "campaign id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/prayers/{id} [get]
func (c *PrayerController) Get(ctx *gin.Context) {
	prayer, err := c.PrayerService.GetByID(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"prayer": prayer})
}

// swagger:model UpdatePrayerRequest
type UpdatePrayerRequest struct {
	Title       *string             `json:"title" binding:"omitempty,min=3"`
	Description *string             `json:"description"`
	Intention   *string             `json:"intention" binding:"omitempty,min=5"`
	TargetCount *int64              `json:"targetCount" binding:"omitempty,min=1"`
	EndDate     *time.Time          `json:"endDate"`
	Status      *model.PrayerStatus `json:"status"`
	IsPublic    *bool               `json:"isPublic"`
}

// Update godoc
// @Summary Update a campaign (owner only)
// @Tags prayers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "campaign id"
// @Param body body UpdatePrayerRequest true "fields to change"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/prayers/{id} [put]
func (c *PrayerController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	var req UpdatePrayerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prayer, err := c.PrayerService.Update(ctx.Param("id"), claims.UserID, service.UpdatePrayerInput{
		Title:       req.Title,
		Description: req.Description,
		Intention:   req.Intention,
		TargetCount: req.TargetCount,
		EndDate:     req.EndDate,
		Status:      req.Status,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "ختم صلوات با موفقیت بروزرسانی شد", gin.H{"prayer": prayer})
}

// Delete godoc
// @Summary Delete a campaign (owner only)
// @Tags prayers
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "campaign id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/prayers/{id} [delete]
func (c *PrayerController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	if err := c.PrayerService.Delete(ctx.Param("id"), claims.UserID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "ختم صلوات با موفقیت حذف شد", nil)
}

// swagger:model ParticipateRequest
type ParticipateRequest struct {
	Count int64 `json:"count" binding:"required,min=1"`
}

// Participate godoc
// @Summary Contribute a count to an active campaign
// @Tags prayers
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "campaign id"
// @Param body body ParticipateRequest true "count"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/prayers/{id}/participate [post]
func (c *PrayerController) Participate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	var req ParticipateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	participation, err := c.PrayerService.Participate(claims.UserID, ctx.Param("id"), req.Count)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "مشارکت شما با موفقیت ثبت شد", gin.H{"participation": participation})
}

// GetStats godoc
// @Summary Aggregate stats for a campaign
// @Tags prayers
// @Produce json
// @Param id path string true "campaign id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/prayers/{id}/stats [get]
func (c *PrayerController) GetStats(ctx *gin.Context) {
	stats, prayer, err := c.PrayerService.GetStats(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"stats": gin.H{
			"id":                stats.ID,
			"prayerId":          stats.PrayerID,
			"totalParticipants": stats.TotalParticipants,
			"averageDailyCount": stats.AverageDailyCount,
			"completionRate":    stats.CompletionRate,
			"prayer": gin.H{
				"title":        prayer.Title,
				"targetCount":  prayer.TargetCount,
				"currentCount": prayer.CurrentCount,
				"status":       prayer.Status,
			},
		},
	})
}
