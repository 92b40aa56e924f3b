package model

import "time"

// Comment 评论模型
type Comment struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	VideoID    int64     `json:"video_id"`
	Content    string    `json:"content"`
	LikesCount int64     `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
}
