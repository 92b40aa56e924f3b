package service

import (
	"byfort-go/internal/api/dto"
	"byfort-go/internal/repository"
)

type AdminService struct {
	statsRepo *repository.StatsRepository
	videoRepo *repository.VideoRepository
	userRepo  *repository.UserRepository
}

func NewAdminService(statsRepo *repository.StatsRepository, videoRepo *repository.VideoRepository, userRepo *repository.UserRepository) *AdminService {
	return &AdminService{statsRepo: statsRepo, videoRepo: videoRepo, userRepo: userRepo}
}

// GetStats 获取平台实时统计
func (s *AdminService) GetStats() *dto.StatsData {
	totals := s.statsRepo.Totals()
	return &dto.StatsData{
		TotalUsers:    totals.TotalUsers,
		TotalVideos:   totals.TotalVideos,
		TotalLikes:    totals.TotalLikes,
		TotalComments: totals.TotalComments,
		TotalFollows:  totals.TotalFollows,
	}
}

// GetTrendingVideos 获取热门视频（按点赞数降序，含作者信息）
func (s *AdminService) GetTrendingVideos(limit int) []dto.VideoInfo {
	videos := s.videoRepo.Trending(limit)

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		var author *dto.AuthorBrief
		if user, err := s.userRepo.GetByID(videos[i].UserID); err == nil {
			author = &dto.AuthorBrief{
				ID:          user.ID,
				Username:    user.Username,
				DisplayName: user.DisplayName,
				Avatar:      user.Avatar,
				IsVerified:  user.IsVerified,
			}
		}
		items = append(items, *toVideoInfo(&videos[i], author))
	}
	return items
}

// GetTopCreators 获取头部创作者（非管理员，按粉丝数降序）
func (s *AdminService) GetTopCreators(limit int) []dto.UserInfo {
	return toUserInfoList(s.userRepo.TopCreators(limit))
}
