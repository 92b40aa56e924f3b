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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser 获取用户公开信息
// @Summary 获取用户信息
// @Description 根据用户 ID 获取用户公开信息
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	userInfo, err := h.userService.GetUser(userID)
	if err != nil {
		h.handleUserError(c, err, userID)
		return
	}

	response.OK(c, "获取成功", userInfo)
}

// GetUserVideos 获取用户发布的视频列表
// @Summary 获取用户视频列表
// @Description 获取指定用户发布的所有视频（含私密视频）
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} response.Response{data=[]dto.VideoInfo} "获取成功"
// @Router /users/{id}/videos [get]
func (h *UserHandler) GetUserVideos(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	videos := h.userService.GetUserVideos(userID)
	response.OK(c, "获取成功", videos)
}

// UpdateMe 更新当前用户资料
// @Summary 更新个人资料
// @Description 更新当前登录用户的资料，未提供的字段保持不变
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UserUpdateRequest true "更新信息"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Failure 409 {object} response.ErrorResponse "邮箱或用户名已被占用"
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	var req dto.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	userInfo, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) || errors.Is(err, service.ErrUsernameExists) {
			response.Conflict(c, err.Error())
			return
		}
		h.handleUserError(c, err, userID)
		return
	}

	response.OK(c, "更新成功", userInfo)
}

// handleUserError 用户模块统一错误处理
func (h *UserHandler) handleUserError(c *gin.Context, err error, userID int64) {
	if errors.Is(err, service.ErrUserNotFound) {
		response.NotFound(c, err.Error())
		return
	}
	logger.Error("User operation failed", zap.Error(err), zap.Int64("user_id", userID))
	response.InternalError(c, "操作失败，请稍后重试")
}
