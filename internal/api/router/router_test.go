package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"byfort-go/internal/api/handler"
	"byfort-go/internal/api/middleware"
	"byfort-go/internal/config"
	"byfort-go/internal/repository"
	"byfort-go/internal/service"
	"byfort-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	config.Set(&config.Config{
		App: config.AppConfig{Name: "byfort-test", Mode: gin.TestMode},
		JWT: config.JWTConfig{Secret: "test-secret", ExpireHours: 1},
	})
	require.NoError(t, logger.Init("error", "json", "stdout", ""))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery())

	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	videoRepo := repository.NewVideoRepository(store)
	likeRepo := repository.NewLikeRepository(store)
	commentRepo := repository.NewCommentRepository(store)
	followRepo := repository.NewFollowRepository(store)
	statsRepo := repository.NewStatsRepository(store)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, videoRepo))
	videoHandler := handler.NewVideoHandler(service.NewVideoService(videoRepo, userRepo))
	likeHandler := handler.NewLikeHandler(service.NewLikeService(likeRepo, videoRepo))
	commentHandler := handler.NewCommentHandler(service.NewCommentService(commentRepo, videoRepo, userRepo))
	followHandler := handler.NewFollowHandler(service.NewFollowService(followRepo, userRepo))
	adminHandler := handler.NewAdminHandler(service.NewAdminService(statsRepo, videoRepo, userRepo))

	adminMiddleware := middleware.AdminRequired(func(userID int64) (bool, error) {
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return false, err
		}
		return user.IsAdmin, nil
	})

	Setup(r, authHandler, userHandler, videoHandler, likeHandler, commentHandler, followHandler, adminHandler, adminMiddleware)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func registerUser(t *testing.T, r *gin.Engine, username, email string) string {
	t.Helper()

	w, parsed := doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":     username,
		"email":        email,
		"password":     "password123",
		"display_name": username,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := parsed["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestLikeLifecycle(t *testing.T) {
	r := newTestServer(t)

	aliceToken := registerUser(t, r, "alice", "alice@example.com")
	bobToken := registerUser(t, r, "bob", "bob@example.com")

	// alice 发布视频
	w, parsed := doRequest(t, r, http.MethodPost, "/api/videos", aliceToken, gin.H{
		"title":     "first clip",
		"video_url": "https://example.com/clip.mp4",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	videoID := parsed["data"].(map[string]interface{})["id"].(float64)
	require.Equal(t, float64(1), videoID)

	// bob 点赞
	w, parsed = doRequest(t, r, http.MethodPost, "/api/videos/1/like", bobToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(1), parsed["data"].(map[string]interface{})["likes_count"].(float64))

	// 重复点赞返回 409
	w, _ = doRequest(t, r, http.MethodPost, "/api/videos/1/like", bobToken, nil)
	require.Equal(t, http.StatusConflict, w.Code)

	// 视频流中可以看到点赞数
	w, parsed = doRequest(t, r, http.MethodGet, "/api/videos", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	feed := parsed["data"].([]interface{})
	require.Len(t, feed, 1)
	require.Equal(t, float64(1), feed[0].(map[string]interface{})["likes_count"].(float64))

	// bob 取消点赞，计数回落
	w, parsed = doRequest(t, r, http.MethodDelete, "/api/videos/1/like", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(0), parsed["data"].(map[string]interface{})["likes_count"].(float64))

	// 再次取消返回 404
	w, _ = doRequest(t, r, http.MethodDelete, "/api/videos/1/like", bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthGuards(t *testing.T) {
	r := newTestServer(t)

	// 未登录不能发视频
	w, _ := doRequest(t, r, http.MethodPost, "/api/videos", "", gin.H{
		"title":     "nope",
		"video_url": "https://example.com/n.mp4",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// 乱写的 Token 也被拒绝
	w, _ = doRequest(t, r, http.MethodGet, "/api/auth/me", "garbage", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterConflicts(t *testing.T) {
	r := newTestServer(t)

	registerUser(t, r, "alice", "alice@example.com")

	w, _ := doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":     "alice2",
		"email":        "alice@example.com",
		"password":     "password123",
		"display_name": "alice2",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username":     "alice",
		"email":        "alice2@example.com",
		"password":     "password123",
		"display_name": "alice",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCommentFlow(t *testing.T) {
	r := newTestServer(t)

	aliceToken := registerUser(t, r, "alice", "alice@example.com")
	bobToken := registerUser(t, r, "bob", "bob@example.com")

	w, _ := doRequest(t, r, http.MethodPost, "/api/videos", aliceToken, gin.H{
		"title":     "clip",
		"video_url": "https://example.com/clip.mp4",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, parsed := doRequest(t, r, http.MethodPost, "/api/videos/1/comments", bobToken, gin.H{
		"content": "great video",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	commentID := parsed["data"].(map[string]interface{})["id"].(float64)

	// 评论列表公开可读，带评论者摘要
	w, parsed = doRequest(t, r, http.MethodGet, "/api/videos/1/comments", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := parsed["data"].([]interface{})
	require.Len(t, comments, 1)
	commenter := comments[0].(map[string]interface{})["user"].(map[string]interface{})
	require.Equal(t, "bob", commenter["username"])

	// alice 不能删除 bob 的评论
	w, _ = doRequest(t, r, http.MethodDelete, "/api/comments/1", aliceToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// bob 本人可以删除
	w, _ = doRequest(t, r, http.MethodDelete, "/api/comments/1", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), commentID)
}

func TestFollowEndpoints(t *testing.T) {
	r := newTestServer(t)

	aliceToken := registerUser(t, r, "alice", "alice@example.com")
	registerUser(t, r, "bob", "bob@example.com")

	// 自关注返回 400
	w, _ := doRequest(t, r, http.MethodPost, "/api/users/1/follow", aliceToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/api/users/2/follow", aliceToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, parsed := doRequest(t, r, http.MethodGet, "/api/users/2/followers", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	followers := parsed["data"].([]interface{})
	require.Len(t, followers, 1)
	require.Equal(t, "alice", followers[0].(map[string]interface{})["username"])

	w, parsed = doRequest(t, r, http.MethodGet, "/api/users/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, float64(1), parsed["data"].(map[string]interface{})["followers_count"].(float64))
}

func TestAdminEndpointsRequireAdmin(t *testing.T) {
	r := newTestServer(t)

	aliceToken := registerUser(t, r, "alice", "alice@example.com")

	w, _ := doRequest(t, r, http.MethodGet, "/api/admin/stats", aliceToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doRequest(t, r, http.MethodGet, "/api/admin/stats", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
