package service

import (
	"errors"

	"byfort-go/internal/api/dto"
	"byfort-go/internal/repository"
	"byfort-go/pkg/utils"
)

type UserService struct {
	userRepo  *repository.UserRepository
	videoRepo *repository.VideoRepository
}

func NewUserService(userRepo *repository.UserRepository, videoRepo *repository.VideoRepository) *UserService {
	return &UserService{userRepo: userRepo, videoRepo: videoRepo}
}

// GetUser 获取用户公开信息
func (s *UserService) GetUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// GetUserVideos 获取用户的全部视频（含私密）
func (s *UserService) GetUserVideos(userID int64) []dto.VideoInfo {
	videos := s.videoRepo.ListByUser(userID)

	items := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		items = append(items, *toVideoInfo(&videos[i], nil))
	}
	return items
}

// UpdateProfile 更新当前用户资料，新用户名/邮箱不可与他人重复
func (s *UserService) UpdateProfile(userID int64, req *dto.UserUpdateRequest) (*dto.UserInfo, error) {
	if req.Email != nil {
		if other, err := s.userRepo.GetByEmail(*req.Email); err == nil && other.ID != userID {
			return nil, ErrEmailExists
		}
	}
	if req.Username != nil {
		if other, err := s.userRepo.GetByUsername(*req.Username); err == nil && other.ID != userID {
			return nil, ErrUsernameExists
		}
	}

	updates := repository.UserUpdates{
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates.Password = &hashed
	}

	user, err := s.userRepo.Update(userID, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user), nil
}
