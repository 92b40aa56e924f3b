package repository

import (
	"sort"
	"time"

	"byfort-go/internal/model"
)

type VideoRepository struct {
	store *Store
}

func NewVideoRepository(store *Store) *VideoRepository {
	return &VideoRepository{store: store}
}

// VideoUpdates 视频部分更新字段，nil 表示不修改
type VideoUpdates struct {
	Title        *string
	Description  *string
	VideoURL     *string
	ThumbnailURL *string
	Duration     *int
	Tags         []string
	IsPublic     *bool
}

// GetByID 根据 ID 获取视频，不区分公开/私密
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	video, ok := r.store.videos[id]
	if !ok {
		return nil, ErrNotFound
	}
	v := *video
	return &v, nil
}

// ListByUser 获取用户的全部视频（含私密）
func (r *VideoRepository) ListByUser(userID int64) []model.Video {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	videos := make([]model.Video, 0)
	for _, video := range r.store.videosByInsertion() {
		if video.UserID == userID {
			videos = append(videos, *video)
		}
	}
	return videos
}

// ListFeed 视频流：仅公开视频，按创建时间降序，[offset, offset+limit) 分页。
// 创建时间相同的按插入顺序排列（稳定排序）。
func (r *VideoRepository) ListFeed(limit, offset int) []model.Video {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	feed := make([]*model.Video, 0, len(r.store.videos))
	for _, video := range r.store.videosByInsertion() {
		if video.IsPublic {
			feed = append(feed, video)
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})

	if offset < 0 {
		offset = 0
	}
	if offset > len(feed) {
		offset = len(feed)
	}
	end := offset + limit
	if limit < 0 || end > len(feed) {
		end = len(feed)
	}

	result := make([]model.Video, 0, end-offset)
	for _, video := range feed[offset:end] {
		result = append(result, *video)
	}
	return result
}

// Create 创建视频：分配 ID，计数清零。IsPublic 由调用方解析（缺省为公开）。
func (r *VideoRepository) Create(video *model.Video) *model.Video {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	video.ID = nextID(&r.store.videoSeq)
	video.LikesCount = 0
	video.CommentsCount = 0
	video.SharesCount = 0
	video.ViewsCount = 0
	video.CreatedAt = time.Now()

	stored := *video
	r.store.videos[video.ID] = &stored
	return video
}

// Update 部分更新视频字段，未提供的字段保持不变
func (r *VideoRepository) Update(id int64, updates VideoUpdates) (*model.Video, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	video, ok := r.store.videos[id]
	if !ok {
		return nil, ErrNotFound
	}

	if updates.Title != nil {
		video.Title = *updates.Title
	}
	if updates.Description != nil {
		video.Description = updates.Description
	}
	if updates.VideoURL != nil {
		video.VideoURL = *updates.VideoURL
	}
	if updates.ThumbnailURL != nil {
		video.ThumbnailURL = updates.ThumbnailURL
	}
	if updates.Duration != nil {
		video.Duration = updates.Duration
	}
	if updates.Tags != nil {
		video.Tags = updates.Tags
	}
	if updates.IsPublic != nil {
		video.IsPublic = *updates.IsPublic
	}

	v := *video
	return &v, nil
}

// Delete 硬删除视频，返回记录是否存在。
// 不级联删除关联的点赞和评论，悬挂引用由读取方容忍。
func (r *VideoRepository) Delete(id int64) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.videos[id]; !ok {
		return false
	}
	delete(r.store.videos, id)
	return true
}

// IncrementViewCount 播放量 +1
func (r *VideoRepository) IncrementViewCount(id int64) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if video, ok := r.store.videos[id]; ok {
		video.ViewsCount++
	}
}

// Trending 热门视频：仅公开视频，按点赞数降序，并列时保持插入顺序
func (r *VideoRepository) Trending(limit int) []model.Video {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	trending := make([]*model.Video, 0, len(r.store.videos))
	for _, video := range r.store.videosByInsertion() {
		if video.IsPublic {
			trending = append(trending, video)
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].LikesCount > trending[j].LikesCount
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(trending) {
		limit = len(trending)
	}

	result := make([]model.Video, 0, limit)
	for _, video := range trending[:limit] {
		result = append(result, *video)
	}
	return result
}
