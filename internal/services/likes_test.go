package services

import (
	"errors"
	"os"
	"testing"

	"myblog/internal/db"
	"myblog/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupStore connects to the database named by TEST_DATABASE_URL and
// resets the tables the toggle engine touches. Skipped when the variable
// is unset so the pure-function tests still run everywhere.
func setupStore(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostLike{},
		&models.Moment{},
		&models.MomentLike{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	err = gdb.Exec("TRUNCATE users, posts, post_likes, moments, moment_likes RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
	db.DB = gdb
}

func seedUser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Password: "x", Role: models.RoleGuest}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func seedPost(t *testing.T, userID uint) models.Post {
	t.Helper()
	post := models.Post{UserID: userID, Title: "t", Content: "c"}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func seedMoment(t *testing.T, userID uint) models.Moment {
	t.Helper()
	moment := models.Moment{UserID: userID, Content: "c"}
	if err := db.DB.Create(&moment).Error; err != nil {
		t.Fatalf("create moment: %v", err)
	}
	return moment
}

func storedLikeCount(t *testing.T, postID uint) int {
	t.Helper()
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	return post.LikeCount
}

func TestTogglePostLikePair(t *testing.T) {
	setupStore(t)
	user := seedUser(t, "alice")
	post := seedPost(t, user.ID)

	first, err := TogglePostLike(post.ID, user.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Liked || first.LikeCount != 1 {
		t.Errorf("first toggle = %+v, want liked with count 1", first)
	}
	if got := storedLikeCount(t, post.ID); got != 1 {
		t.Errorf("stored like_count = %d, want 1", got)
	}

	second, err := TogglePostLike(post.ID, user.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Liked || second.LikeCount != 0 {
		t.Errorf("second toggle = %+v, want unliked with count 0", second)
	}
	if got := storedLikeCount(t, post.ID); got != 0 {
		t.Errorf("stored like_count = %d, want 0", got)
	}
}

func TestTogglePostLikeTwoUsers(t *testing.T) {
	setupStore(t)
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	post := seedPost(t, alice.ID)

	result, err := TogglePostLike(post.ID, alice.ID)
	if err != nil {
		t.Fatalf("alice toggle: %v", err)
	}
	if !result.Liked || result.LikeCount != 1 {
		t.Errorf("after alice: %+v, want liked with count 1", result)
	}

	result, err = TogglePostLike(post.ID, bob.ID)
	if err != nil {
		t.Fatalf("bob toggle: %v", err)
	}
	if !result.Liked || result.LikeCount != 2 {
		t.Errorf("after bob: %+v, want liked with count 2", result)
	}

	result, err = TogglePostLike(post.ID, alice.ID)
	if err != nil {
		t.Fatalf("alice second toggle: %v", err)
	}
	if result.Liked || result.LikeCount != 1 {
		t.Errorf("after alice unlike: %+v, want unliked with count 1", result)
	}
}

func TestTogglePostLikeCounterIntegrity(t *testing.T) {
	setupStore(t)
	user := seedUser(t, "alice")
	post := seedPost(t, user.ID)

	for i := 1; i <= 5; i++ {
		result, err := TogglePostLike(post.ID, user.ID)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}

		wantLiked := i%2 == 1
		if result.Liked != wantLiked {
			t.Errorf("toggle %d: liked = %v, want %v", i, result.Liked, wantLiked)
		}

		var live int64
		if err := db.DB.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&live).Error; err != nil {
			t.Fatalf("count live rows: %v", err)
		}
		if result.LikeCount != live {
			t.Errorf("toggle %d: LikeCount = %d, live rows = %d", i, result.LikeCount, live)
		}
		if got := storedLikeCount(t, post.ID); int64(got) != live {
			t.Errorf("toggle %d: stored like_count = %d, live rows = %d", i, got, live)
		}
	}
}

func TestTogglePostLikeCounterFloor(t *testing.T) {
	setupStore(t)
	user := seedUser(t, "alice")
	post := seedPost(t, user.ID)

	// A drifted-low column: a like row exists but the counter reads zero.
	// Unliking must not drive it negative.
	if err := db.DB.Create(&models.PostLike{PostID: post.ID, UserID: user.ID}).Error; err != nil {
		t.Fatalf("seed like row: %v", err)
	}

	result, err := TogglePostLike(post.ID, user.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if result.Liked || result.LikeCount != 0 {
		t.Errorf("toggle = %+v, want unliked with count 0", result)
	}
	if got := storedLikeCount(t, post.ID); got != 0 {
		t.Errorf("stored like_count = %d, want 0", got)
	}
}

func TestTogglePostLikeMissingPost(t *testing.T) {
	setupStore(t)
	user := seedUser(t, "alice")

	if _, err := TogglePostLike(9999, user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestToggleMomentLikePair(t *testing.T) {
	setupStore(t)
	user := seedUser(t, "alice")
	moment := seedMoment(t, user.ID)

	first, err := ToggleMomentLike(moment.ID, user.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Liked || first.LikeCount != 1 {
		t.Errorf("first toggle = %+v, want liked with count 1", first)
	}

	second, err := ToggleMomentLike(moment.ID, user.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Liked || second.LikeCount != 0 {
		t.Errorf("second toggle = %+v, want unliked with count 0", second)
	}
}

func TestToggleMomentLikeMissingMoment(t *testing.T) {
	setupStore(t)
	user := seedUser(t, "alice")

	if _, err := ToggleMomentLike(9999, user.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
