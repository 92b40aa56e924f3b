package dto

import "time"

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username    string  `json:"username" binding:"required,min=1,max=255"`
	Email       string  `json:"email" binding:"required,email,max=255"`
	Password    string  `json:"password" binding:"required,min=6,max=255"`
	DisplayName string  `json:"display_name" binding:"required,min=1,max=255"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
	Avatar      *string `json:"avatar" binding:"omitempty,max=500"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// TokenData 注册/登录成功返回的 Token 信息
type TokenData struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}

// UserInfo 用户公开信息（不含密码）
type UserInfo struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"display_name"`
	Bio            *string   `json:"bio"`
	Avatar         *string   `json:"avatar"`
	FollowersCount int64     `json:"followers_count"`
	FollowingCount int64     `json:"following_count"`
	LikesCount     int64     `json:"likes_count"`
	IsVerified     bool      `json:"is_verified"`
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
}
