package repository

import (
	"time"

	"byfort-go/internal/model"
	"byfort-go/pkg/utils"
)

// Seed 写入演示数据（示例创作者、官方管理员和几条公开视频），
// 供本地调试和前端联调使用。仅应在空存储上调用一次。
func (s *Store) Seed() error {
	password, err := utils.HashPassword("password123")
	if err != nil {
		return err
	}
	adminPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	str := func(v string) *string { return &v }
	num := func(v int) *int { return &v }

	users := []*model.User{
		{
			Username:       "dancequeenx",
			Email:          "dance@example.com",
			Password:       password,
			DisplayName:    "Dance Queen",
			Bio:            str("Professional dancer & choreographer"),
			FollowersCount: 2300000,
			FollowingCount: 543,
			LikesCount:     15000000,
			IsVerified:     true,
		},
		{
			Username:       "chefmike",
			Email:          "chef@example.com",
			Password:       password,
			DisplayName:    "Chef Mike",
			Bio:            str("Cooking quick & delicious meals"),
			FollowersCount: 1800000,
			FollowingCount: 287,
			LikesCount:     8500000,
			IsVerified:     true,
		},
		{
			Username:       "travelblogger",
			Email:          "travel@example.com",
			Password:       password,
			DisplayName:    "Travel Blogger",
			Bio:            str("Exploring the world one video at a time"),
			FollowersCount: 1500000,
			FollowingCount: 412,
			LikesCount:     6200000,
			IsVerified:     true,
		},
		{
			Username:       "admin",
			Email:          "admin@byfort.com",
			Password:       adminPassword,
			DisplayName:    "BYFORT Admin",
			Bio:            str("Official BYFORT Admin Account"),
			FollowersCount: 100000,
			IsVerified:     true,
			IsAdmin:        true,
		},
	}

	for _, user := range users {
		user.ID = nextID(&s.userSeq)
		user.CreatedAt = now
		s.users[user.ID] = user
	}

	videos := []*model.Video{
		{
			UserID:        1,
			Title:         "New Dance Challenge",
			Description:   str("New dance trend! Try this at home #DanceChallenge #BYFORT"),
			VideoURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Duration:      num(60),
			LikesCount:    142000,
			CommentsCount: 8200,
			SharesCount:   1500,
			ViewsCount:    2300000,
			Tags:          []string{"dance", "challenge", "trending"},
		},
		{
			UserID:        2,
			Title:         "Quick Pasta Recipe",
			Description:   str("Quick pasta recipe in 60 seconds! #CookingHacks #PastaLove"),
			VideoURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Duration:      num(45),
			LikesCount:    89000,
			CommentsCount: 3100,
			SharesCount:   890,
			ViewsCount:    856000,
			Tags:          []string{"cooking", "recipe", "pasta"},
		},
		{
			UserID:        3,
			Title:         "Hidden Beach Paradise",
			Description:   str("Found this amazing hidden beach! #Travel #Paradise #Beach"),
			VideoURL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Duration:      num(75),
			LikesCount:    67000,
			CommentsCount: 2400,
			SharesCount:   1200,
			ViewsCount:    1200000,
			Tags:          []string{"travel", "beach", "paradise"},
		},
	}

	for _, video := range videos {
		video.ID = nextID(&s.videoSeq)
		video.IsPublic = true
		video.CreatedAt = now
		s.videos[video.ID] = video
	}

	return nil
}
