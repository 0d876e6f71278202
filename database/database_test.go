package database

import (
	"testing"
	"time"

	"github.com/inkforge/inkforge-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database migrated with the full schema.
// The pool is pinned to one connection: every connection to ":memory:" is a
// separate database, and a single connection also serializes writes.
func newTestDB(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Comment{},
		&models.Like{},
	))

	return New(db)
}

func seedUser(t *testing.T, d Database, id string, isAdmin bool) *models.User {
	t.Helper()

	email := id + "@example.com"
	user := &models.User{ID: id, Email: &email, IsAdmin: isAdmin}
	require.NoError(t, d.UserRepo().Upsert(user))
	return user
}

func seedBlog(t *testing.T, d Database, authorID string, status models.BlogStatus) *models.Blog {
	t.Helper()

	blog := &models.Blog{
		Title:    "Seed title",
		Content:  "Seed content",
		Category: "technology",
		AuthorID: authorID,
		Status:   status,
	}
	require.NoError(t, d.BlogRepo().Add(blog))

	if status == models.StatusApproved {
		require.NoError(t, d.BlogRepo().SetStatus(blog.ID, models.StatusApproved, nil))
	}
	reloaded, err := d.BlogRepo().FindByID(blog.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	return reloaded
}

func TestUserUpsert(t *testing.T) {
	d := newTestDB(t)

	t.Run("creates on first login", func(t *testing.T) {
		user := seedUser(t, d, "identity-1", false)

		found, err := d.UserRepo().FindByID(user.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, "identity-1@example.com", *found.Email)
	})

	t.Run("updates profile on later logins without touching is_admin", func(t *testing.T) {
		seedUser(t, d, "identity-2", true)

		email := "changed@example.com"
		first := "New"
		require.NoError(t, d.UserRepo().Upsert(&models.User{
			ID:        "identity-2",
			Email:     &email,
			FirstName: &first,
		}))

		found, err := d.UserRepo().FindByID("identity-2")
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, "changed@example.com", *found.Email)
		require.Equal(t, "New", *found.FirstName)
		require.True(t, found.IsAdmin, "login callback must not clear admin")
	})

	t.Run("unknown id resolves to nil without error", func(t *testing.T) {
		found, err := d.UserRepo().FindByID("nobody")
		require.NoError(t, err)
		require.Nil(t, found)
	})
}

func TestCommentRepo(t *testing.T) {
	d := newTestDB(t)
	author := seedUser(t, d, "author", false)
	blog := seedBlog(t, d, author.ID, models.StatusApproved)

	first := &models.Comment{Content: "first", AuthorID: author.ID, BlogID: blog.ID}
	require.NoError(t, d.CommentRepo().Add(first))
	// Force distinct creation times so newest-first ordering is observable.
	time.Sleep(5 * time.Millisecond)
	second := &models.Comment{Content: "second", AuthorID: author.ID, BlogID: blog.ID}
	require.NoError(t, d.CommentRepo().Add(second))

	comments, err := d.CommentRepo().ListByBlog(blog.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "second", comments[0].Content)
	require.Equal(t, "first", comments[1].Content)
	require.NotNil(t, comments[0].Author)
	require.Equal(t, author.ID, comments[0].Author.ID)
}
