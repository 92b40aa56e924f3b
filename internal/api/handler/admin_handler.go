package handler

import (
	"byfort-go/internal/api/response"
	"byfort-go/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// GetStats 获取平台统计
// @Summary 获取平台统计
// @Description 获取用户、视频、点赞、评论、关注的实时总量
// @Tags 管理后台
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.StatsData} "获取成功"
// @Failure 403 {object} response.ErrorResponse "需要管理员权限"
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	response.OK(c, "获取成功", h.adminService.GetStats())
}

// GetTrendingVideos 获取热门视频
// @Summary 获取热门视频
// @Description 获取公开视频中点赞数最高的视频列表
// @Tags 管理后台
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回数量" default(10)
// @Success 200 {object} response.Response{data=[]dto.VideoInfo} "获取成功"
// @Failure 403 {object} response.ErrorResponse "需要管理员权限"
// @Router /admin/trending [get]
func (h *AdminHandler) GetTrendingVideos(c *gin.Context) {
	limit, _ := parseLimitOffset(c)
	response.OK(c, "获取成功", h.adminService.GetTrendingVideos(limit))
}

// GetTopCreators 获取头部创作者
// @Summary 获取头部创作者
// @Description 获取粉丝数最高的创作者列表，不含管理员账号
// @Tags 管理后台
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回数量" default(10)
// @Success 200 {object} response.Response{data=[]dto.UserInfo} "获取成功"
// @Failure 403 {object} response.ErrorResponse "需要管理员权限"
// @Router /admin/creators [get]
func (h *AdminHandler) GetTopCreators(c *gin.Context) {
	limit, _ := parseLimitOffset(c)
	response.OK(c, "获取成功", h.adminService.GetTopCreators(limit))
}
