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

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow 关注用户
// @Summary 关注用户
// @Description 关注指定用户，不能关注自己，重复关注返回 409
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 201 {object} response.Response{data=dto.FollowInfo} "关注成功"
// @Failure 400 {object} response.ErrorResponse "不能关注自己"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Failure 409 {object} response.ErrorResponse "已关注该用户"
// @Router /users/{id}/follow [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	followInfo, err := h.followService.Follow(userID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCannotFollowSelf):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrAlreadyFollowing):
			response.Conflict(c, err.Error())
		default:
			logger.Error("Follow failed", zap.Error(err), zap.Int64("target_id", targetID))
			response.InternalError(c, "关注失败，请稍后重试")
		}
		return
	}

	response.Created(c, "关注成功", followInfo)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Description 取消对指定用户的关注
// @Tags 关注
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response "取消成功"
// @Failure 404 {object} response.ErrorResponse "尚未关注该用户"
// @Router /users/{id}/follow [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.followService.Unfollow(userID, targetID); err != nil {
		if errors.Is(err, service.ErrNotFollowing) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Unfollow failed", zap.Error(err), zap.Int64("target_id", targetID))
		response.InternalError(c, "取消关注失败，请稍后重试")
		return
	}

	response.OK(c, "取消成功", nil)
}

// GetFollowers 获取粉丝列表
// @Summary 获取粉丝列表
// @Description 获取指定用户的粉丝列表
// @Tags 关注
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.UserInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/followers [get]
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	followers, err := h.followService.GetFollowers(userID)
	if err != nil {
		h.handleFollowError(c, err, userID)
		return
	}

	response.OK(c, "获取成功", followers)
}

// GetFollowing 获取关注列表
// @Summary 获取关注列表
// @Description 获取指定用户关注的用户列表
// @Tags 关注
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.UserInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id}/following [get]
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	following, err := h.followService.GetFollowing(userID)
	if err != nil {
		h.handleFollowError(c, err, userID)
		return
	}

	response.OK(c, "获取成功", following)
}

func (h *FollowHandler) handleFollowError(c *gin.Context, err error, userID int64) {
	if errors.Is(err, service.ErrUserNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	logger.Error("Follow list failed", zap.Error(err), zap.Int64("user_id", userID))
	response.InternalError(c, "获取失败，请稍后重试")
}
