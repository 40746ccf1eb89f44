package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwellhq/inkwell/internal/userservice"
)

func strptr(s string) *string {
	return &s
}

func TestRecoverPanic(t *testing.T) {
	app := &application{
		logger: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, res.Code, http.StatusInternalServerError)
}

func TestAuthenticate(t *testing.T) {
	app, db := newTestApplication(t)

	setup := func(db *sql.DB) (*string, error) {
		hash, err := bcrypt.GenerateFromPassword([]byte("Test_1234!"), 12)
		if err != nil {
			return nil, err
		}

		var userID string

		err = db.QueryRow("INSERT INTO users (name, email, password, activated) VALUES ($1, $2, $3, $4) RETURNING id", "Test User", "testuser@example.com", hash, true).Scan(&userID)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err = db.ExecContext(ctx, "INSERT INTO user_permissions (user_id, permission) VALUES ($1, $2)", userID, userservice.PermissionWritePost)
		if err != nil {
			return nil, err
		}

		token, err := app.userService.LoginUser(ctx, "testuser@example.com", "Test_1234!")
		if err != nil {
			return nil, err
		}

		return &token.AccessTokenPlain, nil
	}

	tests := []struct {
		name           string
		authHeader     func(db *sql.DB) (*string, error)
		expectedStatus int
	}{
		{
			name:           "No Authentication Header",
			authHeader:     func(db *sql.DB) (*string, error) { return nil, nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid Authentication Header",
			authHeader:     func(db *sql.DB) (*string, error) { return strptr("invalid-token"), nil },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Valid Authentication Header",
			authHeader:     setup,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			middleware := app.authenticate(handler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != nil {
				token, err := tt.authHeader(db)
				assert.NoError(t, err)

				if token != nil {
					req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
				}
			}

			res := httptest.NewRecorder()

			middleware.ServeHTTP(res, req)

			assert.Equal(t, res.Code, tt.expectedStatus)

			t.Cleanup(func() {
				_, err := db.Exec("DELETE FROM users")
				assert.NoError(t, err)
			})
		})
	}
}

func TestEnableCORS(t *testing.T) {
	app := &application{
		config: &Config{
			TrustedOrigins: []string{"http://example.com"},
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := app.enableCORS(handler)

	tests := []struct {
		name                       string
		origin                     string
		method                     string
		accessControlRequestMethod *string
		expectedStatus             int
	}{
		{
			name:           "Valid Origin and Method",
			origin:         "http://example.com",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:                       "Valid Origin and Preflight Request",
			origin:                     "http://example.com",
			method:                     http.MethodOptions,
			accessControlRequestMethod: strptr(http.MethodPut),
			expectedStatus:             http.StatusOK,
		},
		{
			name:           "Invalid Origin",
			origin:         "http://invalid.com",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.accessControlRequestMethod != nil {
				req.Header.Set("Access-Control-Request-Method", *tt.accessControlRequestMethod)
			}

			res := httptest.NewRecorder()

			middleware.ServeHTTP(res, req)

			assert.Equal(t, tt.expectedStatus, res.Code)

			if tt.origin == "http://example.com" {
				assert.Equal(t, tt.origin, res.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, res.Header().Get("Access-Control-Allow-Origin"))
			}

			if tt.accessControlRequestMethod != nil {
				assert.Equal(t, "OPTIONS, PUT, PATCH, DELETE", res.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "Authorization, Content-Type", res.Header().Get("Access-Control-Allow-Headers"))
			} else {
				assert.Empty(t, res.Header().Get("Access-Control-Allow-Methods"))
				assert.Empty(t, res.Header().Get("Access-Control-Allow-Headers"))
			}
		})
	}
}
