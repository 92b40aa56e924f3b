package dto

import "time"

// VideoCreateRequest 发布视频请求
type VideoCreateRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=200"`
	Description  *string  `json:"description" binding:"omitempty,max=2000"`
	VideoURL     string   `json:"video_url" binding:"required,max=500"`
	ThumbnailURL *string  `json:"thumbnail_url" binding:"omitempty,max=500"`
	Duration     *int     `json:"duration" binding:"omitempty,min=0"`
	Tags         []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=50"`
	IsPublic     *bool    `json:"is_public"` // 缺省为公开
}

// VideoUpdateRequest 视频信息更新请求，未提供的字段保持不变
type VideoUpdateRequest struct {
	Title        *string  `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string  `json:"description" binding:"omitempty,max=2000"`
	VideoURL     *string  `json:"video_url" binding:"omitempty,max=500"`
	ThumbnailURL *string  `json:"thumbnail_url" binding:"omitempty,max=500"`
	Duration     *int     `json:"duration" binding:"omitempty,min=0"`
	Tags         []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=50"`
	IsPublic     *bool    `json:"is_public"`
}

// AuthorBrief 视频/评论里内嵌的作者摘要
type AuthorBrief struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Avatar      *string `json:"avatar"`
	IsVerified  bool    `json:"is_verified"`
}

// VideoInfo 视频公开信息
type VideoInfo struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"user_id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description"`
	VideoURL      string       `json:"video_url"`
	ThumbnailURL  *string      `json:"thumbnail_url"`
	Duration      *int         `json:"duration"`
	LikesCount    int64        `json:"likes_count"`
	CommentsCount int64        `json:"comments_count"`
	SharesCount   int64        `json:"shares_count"`
	ViewsCount    int64        `json:"views_count"`
	Tags          []string     `json:"tags"`
	IsPublic      bool         `json:"is_public"`
	CreatedAt     time.Time    `json:"created_at"`
	User          *AuthorBrief `json:"user,omitempty"` // 作者已注销时为空
}
