package handler

import (
	"errors"
	"strconv"

	"byfort-go/internal/api/dto"
	"byfort-go/internal/api/middleware"
	"byfort-go/internal/api/response"
	"byfort-go/internal/service"
	"byfort-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// GetFeed 获取视频流
// @Summary 获取视频流
// @Description 获取公开视频列表，按发布时间倒序
// @Tags 视频
// @Produce json
// @Param limit query int false "返回数量" default(10)
// @Param offset query int false "跳过数量" default(0)
// @Success 200 {object} response.Response{data=[]dto.VideoInfo} "获取成功"
// @Router /videos [get]
func (h *VideoHandler) GetFeed(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	videos := h.videoService.GetFeed(limit, offset)
	response.OK(c, "获取成功", videos)
}

// GetVideo 获取视频详情
// @Summary 获取视频详情
// @Description 根据视频 ID 获取视频详情，每次访问观看次数加一
// @Tags 视频
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	videoInfo, err := h.videoService.GetDetail(videoID)
	if err != nil {
		h.handleVideoError(c, err, videoID)
		return
	}

	response.OK(c, "获取成功", videoInfo)
}

// Create 发布视频
// @Summary 发布视频
// @Description 发布新视频，可见性缺省为公开
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VideoCreateRequest true "视频信息"
// @Success 201 {object} response.Response{data=dto.VideoInfo} "发布成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.VideoCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	videoInfo := h.videoService.Create(userID, &req)
	response.Created(c, "发布成功", videoInfo)
}

// Update 更新视频信息
// @Summary 更新视频信息
// @Description 更新视频信息，仅作者本人可操作
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.VideoUpdateRequest true "更新信息"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "更新成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	videoInfo, err := h.videoService.Update(videoID, userID, &req)
	if err != nil {
		h.handleVideoError(c, err, videoID)
		return
	}

	response.OK(c, "更新成功", videoInfo)
}

// Delete 删除视频
// @Summary 删除视频
// @Description 删除视频，仅作者本人可操作
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	if err := h.videoService.Delete(videoID, userID); err != nil {
		h.handleVideoError(c, err, videoID)
		return
	}

	response.OK(c, "删除成功", nil)
}

// handleVideoError 视频模块统一错误处理
func (h *VideoHandler) handleVideoError(c *gin.Context, err error, videoID int64) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNoPermission):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err), zap.Int64("video_id", videoID))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}

// parseLimitOffset 解析列表查询参数，缺省 limit=10 offset=0
func parseLimitOffset(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
