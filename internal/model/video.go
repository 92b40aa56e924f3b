package model

import "time"

// Video 视频模型
type Video struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"` // 作者可能已被删除，不做引用完整性约束
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	VideoURL      string    `json:"video_url"`
	ThumbnailURL  *string   `json:"thumbnail_url"`
	Duration      *int      `json:"duration"` // 秒
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	SharesCount   int64     `json:"shares_count"`
	ViewsCount    int64     `json:"views_count"`
	Tags          []string  `json:"tags"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
}
