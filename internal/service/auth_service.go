package service

import (
	"errors"

	"byfort-go/internal/api/dto"
	"byfort-go/internal/config"
	"byfort-go/internal/model"
	"byfort-go/internal/repository"
	"byfort-go/pkg/utils"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrEmailExists       = errors.New("该邮箱已被注册")
	ErrUsernameExists    = errors.New("用户名已存在")
	ErrInvalidCredential = errors.New("邮箱或密码错误")
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 用户注册：邮箱和用户名均不可重复
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.TokenData, error) {
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashedPassword,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
	}
	s.userRepo.Create(user)

	return s.issueToken(user)
}

// Login 用户登录，返回 Token 数据
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	return s.issueToken(user)
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *AuthService) GetCurrentUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *AuthService) issueToken(user *model.User) (*dto.TokenData, error) {
	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	expireSeconds := config.GetJWT().ExpireHours * 3600

	return &dto.TokenData{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: expireSeconds,
		User:      *toUserInfo(user),
	}, nil
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		DisplayName:    user.DisplayName,
		Bio:            user.Bio,
		Avatar:         user.Avatar,
		FollowersCount: user.FollowersCount,
		FollowingCount: user.FollowingCount,
		LikesCount:     user.LikesCount,
		IsVerified:     user.IsVerified,
		IsAdmin:        user.IsAdmin,
		CreatedAt:      user.CreatedAt,
	}
}
