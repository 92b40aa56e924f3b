package handler

import (
	"errors"
	"strconv"

	"byfort-go/internal/api/middleware"
	"byfort-go/internal/api/response"
	"byfort-go/internal/service"
	"byfort-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// Like 点赞视频
// @Summary 点赞视频
// @Description 点赞指定视频，重复点赞返回 409
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 201 {object} response.Response{data=dto.LikeInfo} "点赞成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Failure 409 {object} response.ErrorResponse "已点赞过该视频"
// @Router /videos/{id}/like [post]
func (h *LikeHandler) Like(c *gin.Context) {
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

	likeInfo, likesCount, err := h.likeService.Like(userID, videoID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVideoNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrAlreadyLiked):
			response.Conflict(c, err.Error())
		default:
			logger.Error("Like failed", zap.Error(err), zap.Int64("video_id", videoID))
			response.InternalError(c, "点赞失败，请稍后重试")
		}
		return
	}

	response.Created(c, "点赞成功", gin.H{
		"like":        likeInfo,
		"likes_count": likesCount,
	})
}

// Unlike 取消点赞
// @Summary 取消点赞
// @Description 取消对指定视频的点赞
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response "取消成功"
// @Failure 404 {object} response.ErrorResponse "尚未点赞该视频"
// @Router /videos/{id}/like [delete]
func (h *LikeHandler) Unlike(c *gin.Context) {
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

	likesCount, err := h.likeService.Unlike(userID, videoID)
	if err != nil {
		if errors.Is(err, service.ErrNotLiked) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Unlike failed", zap.Error(err), zap.Int64("video_id", videoID))
		response.InternalError(c, "取消点赞失败，请稍后重试")
		return
	}

	response.OK(c, "取消成功", gin.H{
		"likes_count": likesCount,
	})
}
