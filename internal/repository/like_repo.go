package repository

import (
	"time"

	"byfort-go/internal/model"
)

type LikeRepository struct {
	store *Store
}

func NewLikeRepository(store *Store) *LikeRepository {
	return &LikeRepository{store: store}
}

// Get 组合键查询点赞记录
func (r *LikeRepository) Get(userID, videoID int64) (*model.Like, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	like, ok := r.store.likes[likeKey{UserID: userID, VideoID: videoID}]
	if !ok {
		return nil, ErrNotFound
	}
	l := *like
	return &l, nil
}

// Create 创建点赞并在同一临界区内把视频点赞数 +1。
// 组合键已存在时返回 ErrDuplicate，等价于唯一索引冲突。
// 视频不存在时仅落点赞记录，计数无处可加。
func (r *LikeRepository) Create(userID, videoID int64) (*model.Like, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := likeKey{UserID: userID, VideoID: videoID}
	if _, ok := r.store.likes[key]; ok {
		return nil, ErrDuplicate
	}

	like := &model.Like{
		ID:        nextID(&r.store.likeSeq),
		UserID:    userID,
		VideoID:   videoID,
		CreatedAt: time.Now(),
	}
	r.store.likes[key] = like

	if video, ok := r.store.videos[videoID]; ok {
		video.LikesCount++
	}

	l := *like
	return &l, nil
}

// Delete 删除点赞并把视频点赞数 -1（不低于 0），返回是否删除了记录
func (r *LikeRepository) Delete(userID, videoID int64) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := likeKey{UserID: userID, VideoID: videoID}
	if _, ok := r.store.likes[key]; !ok {
		return false
	}
	delete(r.store.likes, key)

	if video, ok := r.store.videos[videoID]; ok && video.LikesCount > 0 {
		video.LikesCount--
	}
	return true
}
