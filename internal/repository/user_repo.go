package repository

import (
	"sort"
	"time"

	"byfort-go/internal/model"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// UserUpdates 用户部分更新字段，nil 表示不修改
type UserUpdates struct {
	Username    *string
	Email       *string
	Password    *string
	DisplayName *string
	Bio         *string
	Avatar      *string
	IsVerified  *bool
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u := *user
	return &u, nil
}

// GetByEmail 根据邮箱查询用户，区分大小写
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.usersByInsertion() {
		if user.Email == email {
			u := *user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// GetByUsername 根据用户名查询用户，区分大小写
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.usersByInsertion() {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建用户：分配 ID，计数清零，角色标记为普通用户。
// Password 由调用方提前哈希。
func (r *UserRepository) Create(user *model.User) *model.User {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user.ID = nextID(&r.store.userSeq)
	user.FollowersCount = 0
	user.FollowingCount = 0
	user.LikesCount = 0
	user.IsVerified = false
	user.IsAdmin = false
	user.CreatedAt = time.Now()

	stored := *user
	r.store.users[user.ID] = &stored
	return user
}

// Update 部分更新用户字段，未提供的字段保持不变
func (r *UserRepository) Update(id int64, updates UserUpdates) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if updates.Username != nil {
		user.Username = *updates.Username
	}
	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Password != nil {
		user.Password = *updates.Password
	}
	if updates.DisplayName != nil {
		user.DisplayName = *updates.DisplayName
	}
	if updates.Bio != nil {
		user.Bio = updates.Bio
	}
	if updates.Avatar != nil {
		user.Avatar = updates.Avatar
	}
	if updates.IsVerified != nil {
		user.IsVerified = *updates.IsVerified
	}

	u := *user
	return &u, nil
}

// TopCreators 非管理员用户按粉丝数降序排列，并列时保持插入顺序
func (r *UserRepository) TopCreators(limit int) []model.User {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	creators := make([]*model.User, 0, len(r.store.users))
	for _, user := range r.store.usersByInsertion() {
		if !user.IsAdmin {
			creators = append(creators, user)
		}
	}

	sort.SliceStable(creators, func(i, j int) bool {
		return creators[i].FollowersCount > creators[j].FollowersCount
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(creators) {
		limit = len(creators)
	}

	result := make([]model.User, 0, limit)
	for _, user := range creators[:limit] {
		result = append(result, *user)
	}
	return result
}
