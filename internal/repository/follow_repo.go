package repository

import (
	"time"

	"byfort-go/internal/model"
)

type FollowRepository struct {
	store *Store
}

func NewFollowRepository(store *Store) *FollowRepository {
	return &FollowRepository{store: store}
}

// Get 组合键查询关注关系
func (r *FollowRepository) Get(followerID, followingID int64) (*model.Follow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	follow, ok := r.store.follows[followKey{FollowerID: followerID, FollowingID: followingID}]
	if !ok {
		return nil, ErrNotFound
	}
	f := *follow
	return &f, nil
}

// GetFollowers 获取关注 userID 的用户列表，无法解析的悬挂引用直接跳过
func (r *FollowRepository) GetFollowers(userID int64) []model.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	followers := make([]model.User, 0)
	for _, follow := range r.store.followsByInsertion() {
		if follow.FollowingID != userID {
			continue
		}
		if user, ok := r.store.users[follow.FollowerID]; ok {
			followers = append(followers, *user)
		}
	}
	return followers
}

// GetFollowing 获取 userID 关注的用户列表，无法解析的悬挂引用直接跳过
func (r *FollowRepository) GetFollowing(userID int64) []model.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	following := make([]model.User, 0)
	for _, follow := range r.store.followsByInsertion() {
		if follow.FollowerID != userID {
			continue
		}
		if user, ok := r.store.users[follow.FollowingID]; ok {
			following = append(following, *user)
		}
	}
	return following
}

// Create 创建关注关系并在同一临界区内维护双方计数：
// 粉丝方关注数 +1，被关注方粉丝数 +1。
// 组合键已存在时返回 ErrDuplicate。自关注由服务层拒绝，此处不校验。
func (r *FollowRepository) Create(followerID, followingID int64) (*model.Follow, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := followKey{FollowerID: followerID, FollowingID: followingID}
	if _, ok := r.store.follows[key]; ok {
		return nil, ErrDuplicate
	}

	follow := &model.Follow{
		ID:          nextID(&r.store.followSeq),
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now(),
	}
	r.store.follows[key] = follow

	if follower, ok := r.store.users[followerID]; ok {
		follower.FollowingCount++
	}
	if following, ok := r.store.users[followingID]; ok {
		following.FollowersCount++
	}

	f := *follow
	return &f, nil
}

// Delete 删除关注关系并回退双方计数（不低于 0），返回是否删除了记录
func (r *FollowRepository) Delete(followerID, followingID int64) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := followKey{FollowerID: followerID, FollowingID: followingID}
	if _, ok := r.store.follows[key]; !ok {
		return false
	}
	delete(r.store.follows, key)

	if follower, ok := r.store.users[followerID]; ok && follower.FollowingCount > 0 {
		follower.FollowingCount--
	}
	if following, ok := r.store.users[followingID]; ok && following.FollowersCount > 0 {
		following.FollowersCount--
	}
	return true
}
