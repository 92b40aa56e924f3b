package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentInfo 评论信息
type CommentInfo struct {
	ID         int64        `json:"id"`
	UserID     int64        `json:"user_id"`
	VideoID    int64        `json:"video_id"`
	Content    string       `json:"content"`
	LikesCount int64        `json:"likes_count"`
	CreatedAt  time.Time    `json:"created_at"`
	User       *AuthorBrief `json:"user,omitempty"` // 评论者已注销时为空
}
