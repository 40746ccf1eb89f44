package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkwellhq/inkwell/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("unauthorized access")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, c *common.Cache) *UserService {
	return &UserService{
		m:  newUserModel(db),
		mb: mb,
		c:  c,
	}
}

type RegisterUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Telegram *string `json:"telegram"`
	Phone    *string `json:"phone"`
}

// normalizeEmail lowercases and trims the address so uniqueness is
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUser creates a new user account, issues an activation token and
// publishes a user.created event for the mail consumer.
func (s *UserService) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*User, error) {
	email := normalizeEmail(req.Email)

	v := common.NewValidator()
	validateName(v, req.Name)
	validateEmail(v, email)
	validatePassword(v, req.Password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Name:     req.Name,
		Email:    email,
		Password: Password{Plain: req.Password},
		Telegram: req.Telegram,
		Phone:    req.Phone,
	}

	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}

	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	token, err := s.m.createToken(ctx, u.ID, ActivationTokenTime, TokenScopeActivate)
	if err != nil {
		return nil, err
	}

	data := struct {
		Name  string
		Email string
		Token string
	}{
		Name:  u.Name,
		Email: u.Email,
		Token: token.Plain,
	}

	emailData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	err = s.mb.Publish(ctx, emailData, common.UserCreatedKey, common.UserExchange)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// ActivateUser activates the account behind the token, burns the token and
// grants the post:write permission, all in one transaction.
func (s *UserService) ActivateUser(ctx context.Context, token string) error {
	v := common.NewValidator()
	ValidateToken(v, token)
	if !v.Valid() {
		return v.ValidationError()
	}

	hash := hashToken(token)

	user, err := s.m.getUser(ctx, TokenScopeActivate, hash)
	if err != nil {
		return err
	}

	tx, err := s.m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = s.m.activateUserAccount(tx, ctx, user.ID, user.Version)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	err = s.m.deleteToken(tx, ctx, user.ID, TokenScopeActivate)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	err = s.m.addUserPermission(tx, ctx, user.ID, PermissionWritePost)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// LoginUser verifies the credentials and returns an auth token pair,
// reusing an unexpired pair when one exists.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*AuthToken, error) {
	email = normalizeEmail(email)

	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getUserByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrAuthenticationFailure
	}

	dbToken, err := s.m.getAuthToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if dbToken != nil && dbToken.AccessTokenExpiry.After(time.Now()) && dbToken.RefreshTokenExpiry.After(time.Now()) {
		return dbToken, nil
	}

	tx, err := s.m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	if dbToken != nil {
		if err := s.m.deleteAuthToken(tx, ctx, user.ID); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}

	authToken, err := s.m.createAuthToken(tx, ctx, user.ID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return authToken, nil
}

// GetUserByAccessToken resolves the requesting identity behind a bearer
// token, with a short-lived cache in front of the database.
func (s *UserService) GetUserByAccessToken(ctx context.Context, token string) (*User, error) {
	v := common.NewValidator()
	ValidateToken(v, token)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	hash := hashToken(token)
	key := common.CacheKeyUserByAccessToken(hash)

	if cached, ok := s.c.Get(key); ok {
		return cached.(*User), nil
	}

	user, err := s.m.getUserByAccessToken(ctx, hash)
	if err != nil {
		return nil, err
	}

	s.c.Set(key, user, 5*time.Minute)

	return user, nil
}

// LogoutUser revokes the user's auth tokens and evicts the cached identity.
func (s *UserService) LogoutUser(ctx context.Context, userID uuid.UUID, token string) error {
	tx, err := s.m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = s.m.deleteAuthToken(tx, ctx, userID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if token != "" {
		s.c.Delete(common.CacheKeyUserByAccessToken(hashToken(token)))
	}

	return nil
}

// GetUserByID returns the stored profile.
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.m.getUserByID(ctx, id)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}

func (u *User) IsActivated() bool {
	return u.Activated
}

func (u *User) HasPermission(permission Permission) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}

	return false
}
