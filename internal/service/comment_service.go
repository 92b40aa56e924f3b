package service

import (
	"errors"

	"byfort-go/internal/api/dto"
	"byfort-go/internal/model"
	"byfort-go/internal/repository"
)

var (
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrCommentNoPermission = errors.New("没有权限操作该评论")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	userRepo    *repository.UserRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, videoRepo *repository.VideoRepository, userRepo *repository.UserRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, videoRepo: videoRepo, userRepo: userRepo}
}

// ListByVideo 获取视频评论列表（最新优先，含评论者信息）
func (s *CommentService) ListByVideo(videoID int64) []dto.CommentInfo {
	comments := s.commentRepo.ListByVideo(videoID)

	items := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		info := toCommentInfo(&comments[i])
		if user, err := s.userRepo.GetByID(comments[i].UserID); err == nil {
			info.User = &dto.AuthorBrief{
				ID:          user.ID,
				Username:    user.Username,
				DisplayName: user.DisplayName,
				Avatar:      user.Avatar,
				IsVerified:  user.IsVerified,
			}
		}
		items = append(items, *info)
	}
	return items
}

// Create 发表评论
func (s *CommentService) Create(userID, videoID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		UserID:  userID,
		VideoID: videoID,
		Content: req.Content,
	}
	s.commentRepo.Create(comment)

	return toCommentInfo(comment), nil
}

// Delete 删除评论（仅评论者本人）
func (s *CommentService) Delete(commentID, currentUserID int64) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.UserID != currentUserID {
		return ErrCommentNoPermission
	}

	if !s.commentRepo.Delete(commentID) {
		return ErrCommentNotFound
	}
	return nil
}

func toCommentInfo(c *model.Comment) *dto.CommentInfo {
	return &dto.CommentInfo{
		ID:         c.ID,
		UserID:     c.UserID,
		VideoID:    c.VideoID,
		Content:    c.Content,
		LikesCount: c.LikesCount,
		CreatedAt:  c.CreatedAt,
	}
}
