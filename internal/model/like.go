package model

import "time"

// Like 点赞模型，(UserID, VideoID) 组合唯一
type Like struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VideoID   int64     `json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}
