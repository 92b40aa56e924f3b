package service

import (
	"errors"

	"byfort-go/internal/api/dto"
	"byfort-go/internal/model"
	"byfort-go/internal/repository"
)

var (
	ErrVideoNotFound     = errors.New("视频不存在")
	ErrVideoNoPermission = errors.New("没有权限操作该视频")
)

type VideoService struct {
	videoRepo *repository.VideoRepository
	userRepo  *repository.UserRepository
}

func NewVideoService(videoRepo *repository.VideoRepository, userRepo *repository.UserRepository) *VideoService {
	return &VideoService{videoRepo: videoRepo, userRepo: userRepo}
}

// GetFeed 获取视频流（仅公开视频，最新优先，含作者信息）
func (s *VideoService) GetFeed(limit, offset int) []dto.VideoInfo {
	videos := s.videoRepo.ListFeed(limit, offset)

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfo(&videos[i], s.lookupAuthor(videos[i].UserID)))
	}
	return items
}

// GetDetail 获取视频详情（自动增加观看次数，私密视频也可按 ID 直接访问）
func (s *VideoService) GetDetail(videoID int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	s.videoRepo.IncrementViewCount(videoID)
	video.ViewsCount++

	return toVideoInfo(video, s.lookupAuthor(video.UserID)), nil
}

// Create 发布视频，可见性缺省为公开
func (s *VideoService) Create(userID int64, req *dto.VideoCreateRequest) *dto.VideoInfo {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	video := &model.Video{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		Tags:         req.Tags,
		IsPublic:     isPublic,
	}
	s.videoRepo.Create(video)

	return toVideoInfo(video, nil)
}

// Update 更新视频信息（仅作者本人）
func (s *VideoService) Update(videoID, currentUserID int64, req *dto.VideoUpdateRequest) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.UserID != currentUserID {
		return nil, ErrVideoNoPermission
	}

	updated, err := s.videoRepo.Update(videoID, repository.VideoUpdates{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		Tags:         req.Tags,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	return toVideoInfo(updated, nil), nil
}

// Delete 删除视频（仅作者本人）。关联的点赞和评论不级联删除。
func (s *VideoService) Delete(videoID, currentUserID int64) error {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	if video.UserID != currentUserID {
		return ErrVideoNoPermission
	}

	if !s.videoRepo.Delete(videoID) {
		return ErrVideoNotFound
	}
	return nil
}

// lookupAuthor 解析视频作者摘要，作者已不存在时返回 nil
func (s *VideoService) lookupAuthor(userID int64) *dto.AuthorBrief {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil
	}
	return &dto.AuthorBrief{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Avatar:      user.Avatar,
		IsVerified:  user.IsVerified,
	}
}

// toVideoInfo 将 model.Video 转换为 dto.VideoInfo
func toVideoInfo(video *model.Video, author *dto.AuthorBrief) *dto.VideoInfo {
	return &dto.VideoInfo{
		ID:            video.ID,
		UserID:        video.UserID,
		Title:         video.Title,
		Description:   video.Description,
		VideoURL:      video.VideoURL,
		ThumbnailURL:  video.ThumbnailURL,
		Duration:      video.Duration,
		LikesCount:    video.LikesCount,
		CommentsCount: video.CommentsCount,
		SharesCount:   video.SharesCount,
		ViewsCount:    video.ViewsCount,
		Tags:          video.Tags,
		IsPublic:      video.IsPublic,
		CreatedAt:     video.CreatedAt,
		User:          author,
	}
}
