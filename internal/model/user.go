package model

import "time"

// User 用户模型
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"` // 唯一
	Email          string    `json:"email"`    // 唯一
	Password       string    `json:"-"`        // bcrypt 哈希，序列化时忽略
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
