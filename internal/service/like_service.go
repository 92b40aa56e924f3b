package service

import (
	"errors"

	"byfort-go/internal/api/dto"
	"byfort-go/internal/model"
	"byfort-go/internal/repository"
)

var (
	ErrAlreadyLiked = errors.New("您已经点赞过该视频了")
	ErrNotLiked     = errors.New("您尚未点赞该视频")
)

type LikeService struct {
	likeRepo  *repository.LikeRepository
	videoRepo *repository.VideoRepository
}

func NewLikeService(likeRepo *repository.LikeRepository, videoRepo *repository.VideoRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, videoRepo: videoRepo}
}

// Like 点赞视频，返回点赞记录和最新点赞数
func (s *LikeService) Like(userID, videoID int64) (*dto.LikeInfo, int64, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, ErrVideoNotFound
		}
		return nil, 0, err
	}

	like, err := s.likeRepo.Create(userID, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, 0, ErrAlreadyLiked
		}
		return nil, 0, err
	}

	return toLikeInfo(like), s.likesCount(videoID), nil
}

// Unlike 取消点赞，返回最新点赞数
func (s *LikeService) Unlike(userID, videoID int64) (int64, error) {
	if !s.likeRepo.Delete(userID, videoID) {
		return 0, ErrNotLiked
	}
	return s.likesCount(videoID), nil
}

func (s *LikeService) likesCount(videoID int64) int64 {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		return 0
	}
	return video.LikesCount
}

func toLikeInfo(l *model.Like) *dto.LikeInfo {
	return &dto.LikeInfo{
		ID:        l.ID,
		UserID:    l.UserID,
		VideoID:   l.VideoID,
		CreatedAt: l.CreatedAt,
	}
}
