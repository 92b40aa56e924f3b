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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List 获取视频评论列表
// @Summary 获取评论列表
// @Description 获取指定视频的评论列表，最新优先
// @Tags 评论
// @Produce json
// @Param id path int true "视频ID"
// @Success 200 {object} response.Response{data=[]dto.CommentInfo} "获取成功"
// @Router /videos/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	comments := h.commentService.ListByVideo(videoID)
	response.OK(c, "获取成功", comments)
}

// Create 发表评论
// @Summary 发表评论
// @Description 对指定视频发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "视频ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} response.Response{data=dto.CommentInfo} "评论成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
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

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	commentInfo, err := h.commentService.Create(userID, videoID, &req)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("Create comment failed", zap.Error(err), zap.Int64("video_id", videoID))
		response.InternalError(c, "评论失败，请稍后重试")
		return
	}

	response.Created(c, "评论成功", commentInfo)
}

// Delete 删除评论
// @Summary 删除评论
// @Description 删除评论，仅评论者本人可操作
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 403 {object} response.ErrorResponse "没有权限"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "无法获取用户信息")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	if err := h.commentService.Delete(commentID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrCommentNoPermission):
			response.Forbidden(c, err.Error())
		default:
			logger.Error("Delete comment failed", zap.Error(err), zap.Int64("comment_id", commentID))
			response.InternalError(c, "删除失败，请稍后重试")
		}
		return
	}

	response.OK(c, "删除成功", nil)
}
