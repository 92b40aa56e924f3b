package service

import (
	"errors"

	"byfort-go/internal/api/dto"
	"byfort-go/internal/model"
	"byfort-go/internal/repository"
)

var (
	ErrCannotFollowSelf = errors.New("不能关注自己")
	ErrAlreadyFollowing = errors.New("您已经关注过该用户了")
	ErrNotFollowing     = errors.New("您尚未关注该用户")
)

type FollowService struct {
	followRepo *repository.FollowRepository
	userRepo   *repository.UserRepository
}

func NewFollowService(followRepo *repository.FollowRepository, userRepo *repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow 关注用户。自关注在这里拒绝，仓储层不做校验。
func (s *FollowService) Follow(currentUserID, targetUserID int64) (*dto.FollowInfo, error) {
	if currentUserID == targetUserID {
		return nil, ErrCannotFollowSelf
	}

	if _, err := s.userRepo.GetByID(targetUserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	follow, err := s.followRepo.Create(currentUserID, targetUserID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyFollowing
		}
		return nil, err
	}

	return toFollowInfo(follow), nil
}

// Unfollow 取消关注
func (s *FollowService) Unfollow(currentUserID, targetUserID int64) error {
	if !s.followRepo.Delete(currentUserID, targetUserID) {
		return ErrNotFollowing
	}
	return nil
}

// GetFollowers 获取用户的粉丝列表
func (s *FollowService) GetFollowers(userID int64) ([]dto.UserInfo, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfoList(s.followRepo.GetFollowers(userID)), nil
}

// GetFollowing 获取用户的关注列表
func (s *FollowService) GetFollowing(userID int64) ([]dto.UserInfo, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfoList(s.followRepo.GetFollowing(userID)), nil
}

func toFollowInfo(f *model.Follow) *dto.FollowInfo {
	return &dto.FollowInfo{
		ID:          f.ID,
		FollowerID:  f.FollowerID,
		FollowingID: f.FollowingID,
		CreatedAt:   f.CreatedAt,
	}
}

func toUserInfoList(users []model.User) []dto.UserInfo {
	items := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		items = append(items, *toUserInfo(&users[i]))
	}
	return items
}
