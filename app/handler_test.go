package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwellhq/inkwell/internal/userservice"
)

// createTestUser inserts an activated user with the post:write permission
// and logs them in, returning the access token and the user's id.
func createTestUser(app *application, db *sql.DB, name, email string) (*string, string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte("Test_1234!"), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	var userID string

	err = db.QueryRow("INSERT INTO users (name, email, password, activated) VALUES ($1, $2, $3, $4) RETURNING id", name, email, b, true).Scan(&userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	_, err = db.Exec("INSERT INTO user_permissions (user_id, permission) VALUES ($1, $2)", userID, string(userservice.PermissionWritePost))
	if err != nil {
		return nil, "", fmt.Errorf("failed to add user permissions: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token, err := app.userService.LoginUser(ctx, email, "Test_1234!")
	if err != nil {
		return nil, "", fmt.Errorf("failed to login user: %w", err)
	}

	return &token.AccessTokenPlain, userID, nil
}

func cleanupTables(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, table := range []string{"comments", "likes", "posts", "auth_tokens", "tokens", "user_permissions", "users"} {
		_, err := db.Exec("DELETE FROM " + table)
		assert.NoError(t, err)
	}
}

func TestRegisterUserHandler(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	testCases := []struct {
		name       string
		payload    any
		setup      func(db *sql.DB) error
		wantStatus int
		wantBody   envelope
	}{
		{
			name: "Valid Request",
			payload: map[string]any{
				"name":     "Test User",
				"email":    "testuser@example.com",
				"password": "Test_1234!",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Invalid Email",
			payload: map[string]any{
				"name":     "Test User",
				"email":    "test",
				"password": "Test_1234!",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   envelope{"error": map[string]string{"email": "must be a valid email address"}},
		},
		{
			name: "Duplicate Email",
			payload: map[string]any{
				"name":     "Other User",
				"email":    "testuser@example.com",
				"password": "Test_1234!",
			},
			setup: func(db *sql.DB) error {
				randomHash := make([]byte, 16)
				_, err := rand.Read(randomHash)
				if err != nil {
					return err
				}

				_, err = db.Exec("INSERT INTO users (name, email, password) VALUES ($1, $2, $3)", "Test User", "testuser@example.com", randomHash)
				return err
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   envelope{"error": map[string]string{"email": "a user with this email address already exists"}},
		},
		{
			name: "Invalid Password",
			payload: map[string]any{
				"name":     "Test User",
				"email":    "testuser@example.com",
				"password": "password",
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   envelope{"error": map[string]string{"password": "must be between 8 and 72 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one symbol"}},
		},
		{
			name:       "Empty Payload",
			payload:    map[string]any{},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   envelope{"error": map[string]string{"email": "must be provided", "name": "must be provided", "password": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setup != nil {
				err := tc.setup(db)
				assert.NoError(t, err)
			}

			status, _, gotBody := ts.post(t, "/v1/users/register", tc.payload, nil)
			assert.Equal(t, tc.wantStatus, status)
			if tc.wantBody != nil {
				assert.JSONEq(t, tc.wantBody.JSON(), gotBody.JSON())
			}

			t.Cleanup(func() {
				cleanupTables(t, db)
			})
		})
	}
}

func TestLoginUserHandler(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	setup := func(db *sql.DB) error {
		b, err := bcrypt.GenerateFromPassword([]byte("Test_1234!"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		_, err = db.Exec("INSERT INTO users (name, email, password) VALUES ($1, $2, $3)", "Test User", "testuser@example.com", b)
		return err
	}

	testCases := []struct {
		name       string
		payload    any
		setup      func(db *sql.DB) error
		wantStatus int
		wantBody   envelope
	}{
		{
			name: "Valid Request",
			payload: map[string]any{
				"email":    "testuser@example.com",
				"password": "Test_1234!",
			},
			setup:      setup,
			wantStatus: http.StatusOK,
		},
		{
			name: "Unknown Email",
			payload: map[string]any{
				"email":    "nobody@example.com",
				"password": "Test_1234!",
			},
			setup:      setup,
			wantStatus: http.StatusUnauthorized,
			wantBody:   envelope{"error": "invalid authentication credentials"},
		},
		{
			name: "Invalid Password",
			payload: map[string]any{
				"email":    "testuser@example.com",
				"password": "Test1234_!",
			},
			setup:      setup,
			wantStatus: http.StatusUnauthorized,
			wantBody:   envelope{"error": "invalid authentication credentials"},
		},
		{
			name:       "Empty Payload",
			payload:    map[string]any{},
			setup:      setup,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody: envelope{"error": map[string]string{
				"email":    "must be provided",
				"password": "must be provided",
			}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.setup != nil {
				err := tc.setup(db)
				assert.NoError(t, err)
			}

			status, _, gotBody := ts.post(t, "/v1/users/login", tc.payload, nil)
			assert.Equal(t, tc.wantStatus, status)
			if tc.wantBody != nil {
				assert.JSONEq(t, tc.wantBody.JSON(), gotBody.JSON())
			}

			t.Cleanup(func() {
				cleanupTables(t, db)
			})
		})
	}
}

func TestLogoutUserHandler(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	testCases := []struct {
		name       string
		setup      func(db *sql.DB) (*string, error)
		wantStatus int
		wantBody   envelope
	}{
		{
			name: "Valid Request",
			setup: func(db *sql.DB) (*string, error) {
				token, _, err := createTestUser(app, db, "Test User", "testuser@example.com")
				return token, err
			},
			wantStatus: http.StatusOK,
			wantBody:   envelope{"message": "user logged out"},
		},
		{
			name:       "Invalid Token",
			setup:      func(db *sql.DB) (*string, error) { return strptr("invalid-token"), nil },
			wantStatus: http.StatusUnauthorized,
			wantBody:   envelope{"error": "invalid or missing authentication token"},
		},
		{
			name:       "No Token",
			setup:      func(db *sql.DB) (*string, error) { return nil, nil },
			wantStatus: http.StatusUnauthorized,
			wantBody:   envelope{"error": "invalid or missing authentication token"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := tc.setup(db)
			assert.NoError(t, err)

			status, _, gotBody := ts.post(t, "/v1/users/logout", nil, token)

			assert.Equal(t, tc.wantStatus, status)
			if tc.wantBody != nil {
				assert.JSONEq(t, tc.wantBody.JSON(), gotBody.JSON())
			}

			t.Cleanup(func() {
				cleanupTables(t, db)
			})
		})
	}
}

func TestCreatePostHandler(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	t.Run("Valid Request", func(t *testing.T) {
		token, userID, err := createTestUser(app, db, "Test User", "testuser@example.com")
		require.NoError(t, err)

		status, _, body := ts.post(t, "/v1/posts", map[string]any{
			"title":   "Test Post",
			"content": "This is a test post about writing handlers.",
			"tags":    []string{"go", "testing"},
			"status":  "published",
		}, token)
		assert.Equal(t, http.StatusCreated, status)

		id, ok := body["id"].(string)
		require.True(t, ok)

		var (
			authorID   string
			authorName string
			excerpt    string
			readTime   int
		)
		err = db.QueryRow("SELECT author_id, author_name, excerpt, read_time FROM posts WHERE id = $1", id).Scan(&authorID, &authorName, &excerpt, &readTime)
		require.NoError(t, err)
		assert.Equal(t, userID, authorID)
		assert.Equal(t, "Test User", authorName)
		assert.Equal(t, "This is a test post about writing handlers....", excerpt)
		assert.Equal(t, 1, readTime)

		t.Cleanup(func() {
			cleanupTables(t, db)
		})
	})

	t.Run("Invalid Title", func(t *testing.T) {
		token, _, err := createTestUser(app, db, "Test User", "testuser@example.com")
		require.NoError(t, err)

		status, _, body := ts.post(t, "/v1/posts", map[string]any{
			"title":   "",
			"content": "This is a test post.",
		}, token)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.JSONEq(t, envelope{"error": map[string]string{"title": "must be provided"}}.JSON(), body.JSON())

		t.Cleanup(func() {
			cleanupTables(t, db)
		})
	})

	t.Run("No Authentication Token", func(t *testing.T) {
		status, _, body := ts.post(t, "/v1/posts", map[string]any{
			"title":   "Test Post",
			"content": "This is a test post.",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.JSONEq(t, envelope{"error": "invalid or missing authentication token"}.JSON(), body.JSON())
	})

	t.Run("Unactivated User", func(t *testing.T) {
		b, err := bcrypt.GenerateFromPassword([]byte("Test_1234!"), bcrypt.DefaultCost)
		require.NoError(t, err)

		_, err = db.Exec("INSERT INTO users (name, email, password) VALUES ($1, $2, $3)", "Pending User", "pending@example.com", b)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		authToken, err := app.userService.LoginUser(ctx, "pending@example.com", "Test_1234!")
		require.NoError(t, err)

		status, _, body := ts.post(t, "/v1/posts", map[string]any{
			"title":   "Test Post",
			"content": "This is a test post.",
		}, &authToken.AccessTokenPlain)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.JSONEq(t, envelope{"error": "unauthorized access"}.JSON(), body.JSON())

		t.Cleanup(func() {
			cleanupTables(t, db)
		})
	})
}

func TestGetPostHandler(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	t.Cleanup(func() {
		cleanupTables(t, db)
	})

	token, _, err := createTestUser(app, db, "Test User", "testuser@example.com")
	require.NoError(t, err)

	status, _, body := ts.post(t, "/v1/posts", map[string]any{
		"title":   "Test Post",
		"content": "This is a test post.",
		"status":  "published",
	}, token)
	require.Equal(t, http.StatusCreated, status)
	id := body["id"].(string)

	t.Run("Each Read Counts A View", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts/"+id, nil)
		assert.Equal(t, http.StatusOK, status)

		post := body["post"].(map[string]any)
		assert.Equal(t, "Test Post", post["title"])
		assert.Equal(t, float64(1), post["views"])

		status, _, body = ts.get(t, "/v1/posts/"+id, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(2), body["post"].(map[string]any)["views"])
	})

	t.Run("Unknown Id", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts/00000000-0000-0000-0000-000000000000", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.JSONEq(t, envelope{"error": "resource not found"}.JSON(), body.JSON())
	})

	t.Run("Malformed Id", func(t *testing.T) {
		status, _, _ := ts.get(t, "/v1/posts/not-a-uuid", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestListPostsHandler(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	t.Cleanup(func() {
		cleanupTables(t, db)
	})

	token, userID, err := createTestUser(app, db, "Test User", "testuser@example.com")
	require.NoError(t, err)

	seed := []map[string]any{
		{"title": "Go Concurrency Patterns", "content": "Channels and goroutines.", "status": "published", "tags": []string{"go"}},
		{"title": "Cooking With Cast Iron", "content": "Skillet care basics.", "status": "published"},
		{"title": "Unfinished Draft", "content": "Work in progress.", "status": "draft"},
	}
	for _, p := range seed {
		status, _, _ := ts.post(t, "/v1/posts", p, token)
		require.Equal(t, http.StatusCreated, status)
	}

	t.Run("Published Only", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts", nil)
		assert.Equal(t, http.StatusOK, status)

		posts := body["posts"].([]any)
		assert.Len(t, posts, 2)
		for _, p := range posts {
			assert.Equal(t, "published", p.(map[string]any)["status"])
		}
	})

	t.Run("Search By Query", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts?q=concurrency", nil)
		assert.Equal(t, http.StatusOK, status)

		posts := body["posts"].([]any)
		assert.Len(t, posts, 1)
		assert.Equal(t, "Go Concurrency Patterns", posts[0].(map[string]any)["title"])
	})

	t.Run("Search Excludes Drafts", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts?q=unfinished", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, body["posts"].([]any), 0)
	})

	t.Run("Blank Query Rejected", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts?q="+url.QueryEscape("   "), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.JSONEq(t, envelope{"error": map[string]string{"q": "must be provided"}}.JSON(), body.JSON())
	})

	t.Run("By Author Includes Drafts", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts?author="+userID, nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, body["posts"].([]any), 3)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		status, _, _ := ts.get(t, "/v1/posts?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestUpdatePostHandler(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	t.Cleanup(func() {
		cleanupTables(t, db)
	})

	ownerToken, _, err := createTestUser(app, db, "Owner", "owner@example.com")
	require.NoError(t, err)

	otherToken, _, err := createTestUser(app, db, "Other", "other@example.com")
	require.NoError(t, err)

	status, _, body := ts.post(t, "/v1/posts", map[string]any{
		"title":   "Original Title",
		"content": "Original content.",
		"status":  "draft",
	}, ownerToken)
	require.Equal(t, http.StatusCreated, status)
	id := body["id"].(string)

	t.Run("Owner Can Update", func(t *testing.T) {
		status, _, body := ts.patch(t, "/v1/posts/"+id, map[string]any{
			"title": "New Title",
		}, ownerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, envelope{"message": "post updated"}.JSON(), body.JSON())

		var title string
		err := db.QueryRow("SELECT title FROM posts WHERE id = $1", id).Scan(&title)
		assert.NoError(t, err)
		assert.Equal(t, "New Title", title)
	})

	t.Run("Publishing Stamps The Timestamp", func(t *testing.T) {
		status, _, _ := ts.patch(t, "/v1/posts/"+id, map[string]any{
			"status": "published",
		}, ownerToken)
		assert.Equal(t, http.StatusOK, status)

		var publishedAt sql.NullTime
		err := db.QueryRow("SELECT published_at FROM posts WHERE id = $1", id).Scan(&publishedAt)
		assert.NoError(t, err)
		assert.True(t, publishedAt.Valid)
	})

	t.Run("Non Owner Is Rejected", func(t *testing.T) {
		status, _, body := ts.patch(t, "/v1/posts/"+id, map[string]any{
			"title": "Hijacked",
		}, otherToken)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.JSONEq(t, envelope{"error": "unauthorized access"}.JSON(), body.JSON())
	})

	t.Run("Unknown Post", func(t *testing.T) {
		status, _, _ := ts.patch(t, "/v1/posts/00000000-0000-0000-0000-000000000000", map[string]any{
			"title": "New Title",
		}, ownerToken)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("Empty Title Rejected", func(t *testing.T) {
		status, _, body := ts.patch(t, "/v1/posts/"+id, map[string]any{
			"title": "",
		}, ownerToken)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.JSONEq(t, envelope{"error": map[string]string{"title": "must be provided"}}.JSON(), body.JSON())
	})
}

func TestDeletePostHandler(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	t.Cleanup(func() {
		cleanupTables(t, db)
	})

	ownerToken, _, err := createTestUser(app, db, "Owner", "owner@example.com")
	require.NoError(t, err)

	otherToken, _, err := createTestUser(app, db, "Other", "other@example.com")
	require.NoError(t, err)

	status, _, body := ts.post(t, "/v1/posts", map[string]any{
		"title":   "Doomed Post",
		"content": "This post will be deleted.",
		"status":  "published",
	}, ownerToken)
	require.Equal(t, http.StatusCreated, status)
	id := body["id"].(string)

	t.Run("Non Owner Is Rejected", func(t *testing.T) {
		status, _, _ := ts.delete(t, "/v1/posts/"+id, otherToken)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Owner Can Delete", func(t *testing.T) {
		status, _, body := ts.delete(t, "/v1/posts/"+id, ownerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, envelope{"message": "post deleted"}.JSON(), body.JSON())

		status, _, _ = ts.get(t, "/v1/posts/"+id, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCommentHandlers(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	t.Cleanup(func() {
		cleanupTables(t, db)
	})

	authorToken, _, err := createTestUser(app, db, "Author", "author@example.com")
	require.NoError(t, err)

	readerToken, _, err := createTestUser(app, db, "Reader", "reader@example.com")
	require.NoError(t, err)

	status, _, body := ts.post(t, "/v1/posts", map[string]any{
		"title":   "Commented Post",
		"content": "A post that accumulates comments.",
		"status":  "published",
	}, authorToken)
	require.Equal(t, http.StatusCreated, status)
	postID := body["id"].(string)

	var commentID string

	t.Run("Create Comment", func(t *testing.T) {
		status, _, body := ts.post(t, "/v1/posts/"+postID+"/comments", map[string]any{
			"content": "  Great write-up!  ",
		}, readerToken)
		assert.Equal(t, http.StatusCreated, status)

		id, ok := body["id"].(string)
		require.True(t, ok)
		commentID = id
	})

	t.Run("List Comments", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts/"+postID+"/comments", nil)
		assert.Equal(t, http.StatusOK, status)

		comments := body["comments"].([]any)
		require.Len(t, comments, 1)

		comment := comments[0].(map[string]any)
		assert.Equal(t, "Great write-up!", comment["content"])
		assert.Equal(t, "Reader", comment["author_name"])
	})

	t.Run("Blank Comment Rejected", func(t *testing.T) {
		status, _, body := ts.post(t, "/v1/posts/"+postID+"/comments", map[string]any{
			"content": "   ",
		}, readerToken)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.JSONEq(t, envelope{"error": map[string]string{"content": "must be provided"}}.JSON(), body.JSON())
	})

	t.Run("Overlong Comment Rejected", func(t *testing.T) {
		status, _, body := ts.post(t, "/v1/posts/"+postID+"/comments", map[string]any{
			"content": strings.Repeat("a", 501),
		}, readerToken)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.JSONEq(t, envelope{"error": map[string]string{"content": "must not be more than 500 characters long"}}.JSON(), body.JSON())
	})

	t.Run("Comment On Unknown Post", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/posts/00000000-0000-0000-0000-000000000000/comments", map[string]any{
			"content": "Hello?",
		}, readerToken)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("Unauthenticated Comment Rejected", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/posts/"+postID+"/comments", map[string]any{
			"content": "Anonymous drive-by.",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("Only The Author Can Delete", func(t *testing.T) {
		status, _, _ := ts.delete(t, "/v1/comments/"+commentID, authorToken)
		assert.Equal(t, http.StatusNotFound, status)

		status, _, body := ts.delete(t, "/v1/comments/"+commentID, readerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, envelope{"message": "comment deleted"}.JSON(), body.JSON())
	})
}

func TestLikeHandlers(t *testing.T) {
	app, db := newTestApplication(t)

	ts := newTestServer(t, app.routes())

	t.Cleanup(func() {
		cleanupTables(t, db)
	})

	authorToken, _, err := createTestUser(app, db, "Author", "author@example.com")
	require.NoError(t, err)

	readerToken, _, err := createTestUser(app, db, "Reader", "reader@example.com")
	require.NoError(t, err)

	status, _, body := ts.post(t, "/v1/posts", map[string]any{
		"title":   "Likable Post",
		"content": "A post collecting likes.",
		"status":  "published",
	}, authorToken)
	require.Equal(t, http.StatusCreated, status)
	postID := body["id"].(string)

	t.Run("Toggle On", func(t *testing.T) {
		status, _, body := ts.post(t, "/v1/posts/"+postID+"/like", nil, readerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["liked"])
		assert.Equal(t, float64(1), body["likes_count"])
	})

	t.Run("Like Status", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts/"+postID+"/like", readerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, body["liked"])

		status, _, body = ts.get(t, "/v1/posts/"+postID+"/like", authorToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["liked"])
	})

	t.Run("Anonymous Like Status", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/posts/"+postID+"/like", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["liked"])
	})

	t.Run("Liked Posts Listing", func(t *testing.T) {
		status, _, body := ts.get(t, "/v1/users/liked-posts", readerToken)
		assert.Equal(t, http.StatusOK, status)

		posts := body["posts"].([]any)
		require.Len(t, posts, 1)
		assert.Equal(t, "Likable Post", posts[0].(map[string]any)["title"])
	})

	t.Run("Toggle Off", func(t *testing.T) {
		status, _, body := ts.post(t, "/v1/posts/"+postID+"/like", nil, readerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, false, body["liked"])
		assert.Equal(t, float64(0), body["likes_count"])

		status, _, body = ts.get(t, "/v1/users/liked-posts", readerToken)
		assert.Equal(t, http.StatusOK, status)
		assert.Len(t, body["posts"].([]any), 0)
	})

	t.Run("Unknown Post", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/posts/00000000-0000-0000-0000-000000000000/like", nil, readerToken)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("Unauthenticated Toggle Rejected", func(t *testing.T) {
		status, _, _ := ts.post(t, "/v1/posts/"+postID+"/like", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}
