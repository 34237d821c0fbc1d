package controller

import (
	"sofreh_salawat_backend/internal/service"
	"sofreh_salawat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetStats godoc
// @Summary Running totals for the current user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/stats [get]
func (c *UserController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	stats, err := c.UserService.GetStats(claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"stats": stats})
}

// GetParticipations godoc
// @Summary Paginated participation history for the current user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/users/participations [get]
func (c *UserController) GetParticipations(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx, "")
		return
	}

	page, limit := parsePagination(ctx)
	participations, total, err := c.UserService.GetParticipations(claims.UserID, page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"participations": participations,
		"pagination":     util.NewPagination(page, limit, total),
	})
}

// ListUsers godoc
// @Summary List users (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, limit := parsePagination(ctx)
	users, total, err := c.UserService.ListUsers(page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"users":      users,
		"pagination": util.NewPagination(page, limit, total),
	})
}

// DisableUser godoc
// @Summary Deactivate a user account (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id}/disable [post]
func (c *UserController) DisableUser(ctx *gin.Context) {
	if err := c.UserService.DisableUser(ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "حساب کاربری غیرفعال شد", nil)
}
