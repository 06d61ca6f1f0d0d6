package service

import (
	"context"
	"errors"
	"time"

	"github.com/khadamat/backend/internal/models"
	"github.com/khadamat/backend/internal/repository"
	"github.com/khadamat/backend/internal/validate"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	users    repository.UserRepo
	hasher   PasswordHasher
	tokens   TokenProvider
	sessions SessionStore
	now      func() time.Time
	log      *zap.Logger
}

func NewAuthService(users repository.UserRepo, hasher PasswordHasher, tokens TokenProvider, sessions SessionStore, log *zap.Logger) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		sessions: sessions,
		now:      time.Now,
		log:      log,
	}
}

type SignUpInput struct {
	Username        string
	MobileNumber    string
	Password        string
	PasswordConfirm string
	Email           string
}

// SignUp creates an account and opens a session for it, mirroring the
// sign-in-after-signup flow of the frontend.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*models.User, string, error) {
	if in.Username == "" {
		return nil, "", invalid("username", ErrFieldRequired)
	}
	mobile := validate.SanitizeMobileNumber(in.MobileNumber)
	if mobile == "" {
		return nil, "", invalid("mobile_number", ErrFieldRequired)
	}
	if !validate.IsValidMobileNumber(mobile) {
		return nil, "", invalid("mobile_number", ErrInvalidMobileNumber)
	}
	if in.Password == "" {
		return nil, "", invalid("password", ErrFieldRequired)
	}
	if in.Password != in.PasswordConfirm {
		return nil, "", invalid("password", ErrPasswordMismatch)
	}
	if in.Email != "" && !validate.IsValidEmail(in.Email) {
		return nil, "", invalid("email", ErrInvalidEmail)
	}

	exists, err := s.users.ExistsByMobileNumber(ctx, mobile)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", invalid("mobile_number", ErrDuplicateMobileNumber)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username:     in.Username,
		MobileNumber: mobile,
		PasswordHash: hash,
		Email:        in.Email,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index on mobile_number is the real guard; the exists
		// check above can lose a race against a concurrent signup.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", invalid("mobile_number", ErrDuplicateMobileNumber)
		}
		return nil, "", err
	}
	s.log.Info("user signed up", zap.Uint("user_id", user.ID))

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate is the bare credential check: it reports only grant or
// no-grant, leaving the caller-facing failure reason to SignIn. An unknown
// number still pays for one hash comparison so its response timing matches
// the wrong-password path.
func (s *AuthService) Authenticate(ctx context.Context, mobileNumber, password string) (*models.User, error) {
	user, err := s.users.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.hasher.DummyCompare(password)
		return nil, nil
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, nil
	}
	return user, nil
}

// SignIn grants a session via Authenticate; when that refuses, a diagnostic
// existence lookup reconstructs the reason for the caller's error message.
func (s *AuthService) SignIn(ctx context.Context, mobileNumber, password string) (*models.User, string, error) {
	if mobileNumber == "" {
		return nil, "", invalid("mobile_number", ErrFieldRequired)
	}
	if password == "" {
		return nil, "", invalid("password", ErrFieldRequired)
	}
	// Accounts are stored with the sanitized number, so the input must be
	// sanitized the same way before any lookup.
	mobile := validate.SanitizeMobileNumber(mobileNumber)

	user, err := s.Authenticate(ctx, mobile, password)
	if err != nil {
		return nil, "", err
	}
	if user != nil {
		if !user.IsActive {
			return nil, "", ErrAccountDisabled
		}
		token, err := s.openSession(ctx, user)
		if err != nil {
			return nil, "", err
		}
		return user, token, nil
	}

	exists, err := s.users.ExistsByMobileNumber(ctx, mobile)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", ErrUserNotFound
	}
	return nil, "", ErrBadPassword
}

func (s *AuthService) SignOut(ctx context.Context, jti string) error {
	return s.sessions.Delete(ctx, jti)
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

type UpdateProfileInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		if *in.Username == "" {
			return nil, invalid("username", ErrFieldRequired)
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		if *in.Email != "" && !validate.IsValidEmail(*in.Email) {
			return nil, invalid("email", ErrInvalidEmail)
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return invalid("password", ErrFieldRequired)
	}
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Compare(user.PasswordHash, oldPassword) {
		return ErrInvalidOldPassword
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.UpdatePassword(ctx, user)
}

// ListUsers backs the dev-only debug listing.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListAll(ctx)
}

func (s *AuthService) openSession(ctx context.Context, user *models.User) (string, error) {
	token, jti, expires, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Put(ctx, jti, user.ID, expires.Sub(s.now())); err != nil {
		return "", err
	}
	return token, nil
}
