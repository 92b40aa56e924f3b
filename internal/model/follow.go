package model

import "time"

// Follow 关注关系模型，(FollowerID, FollowingID) 组合唯一，方向有意义
type Follow struct {
	ID          int64     `json:"id"`
	FollowerID  int64     `json:"follower_id"`
	FollowingID int64     `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
