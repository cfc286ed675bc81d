// Package services contains the credential business logic. This file
// implements UserService: registration, login, profile updates, account
// deletion and the saved "keep me logged in" session.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cheftube/internal/auth"
	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/config"
	"github.com/dmitrijs2005/cheftube/internal/cryptox"
	"github.com/dmitrijs2005/cheftube/internal/dbx"
	"github.com/dmitrijs2005/cheftube/internal/logging"
	"github.com/dmitrijs2005/cheftube/internal/models"
	"github.com/dmitrijs2005/cheftube/internal/repositories/repomanager"
	"github.com/dmitrijs2005/cheftube/internal/repositories/users"
	"github.com/dmitrijs2005/cheftube/internal/validation"
	"github.com/google/uuid"
)

// RegisterRequest is the raw sign-up input. A nil Confirmation skips the
// repeat-password check.
type RegisterRequest struct {
	Username     string
	Email        string
	Password     string
	Confirmation *string
}

// ProfileUpdate is the raw profile-save input. NewPassword and
// Confirmation are both left empty when the password is not being changed.
type ProfileUpdate struct {
	UserID          string
	Username        string
	Email           string
	CurrentPassword string
	NewPassword     string
	Confirmation    string
}

type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	validator       *validation.Validator
	log             logging.Logger
	sessionSecret   []byte
	sessionValidity time.Duration

	now   func() time.Time
	newID func() string
}

// NewUserService constructs a UserService using repositories and config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		db:              db,
		repomanager:     m,
		validator:       validation.New(),
		log:             log.With("component", "user_service"),
		sessionSecret:   []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
		now:             time.Now,
		newID:           uuid.NewString,
	}
}

// Register validates the candidate, reports every violated field at once as
// common.FieldErrors and stores the new record. It returns the fresh id.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	confirmation := password
	if req.Confirmation != nil {
		confirmation = strings.TrimSpace(*req.Confirmation)
	}

	errs := common.FieldErrors{}
	s.validator.Struct(validation.Signup{
		Username:     username,
		Email:        email,
		Password:     password,
		Confirmation: confirmation,
	}, errs)

	if err := s.checkDuplicates(ctx, errs, username, email, nil); err != nil {
		return "", err
	}
	if err := errs.Err(); err != nil {
		return "", err
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w: %w", common.ErrorInternal, err)
	}

	user := &models.User{
		ID:           s.newID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := s.repomanager.Users(tx).Create(ctx, user)
		return err
	})
	if err != nil {
		if fe := duplicateFieldError(err); fe != nil {
			return "", fe
		}
		s.log.Error(ctx, "register failed", "op", "register", "error", err)
		return "", err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user.ID, nil
}

// Validate returns the record whose username or email equals identity and
// whose password matches. A miss is (nil, nil); only storage failures are
// errors.
func (s *UserService) Validate(ctx context.Context, identity, password string) (*models.User, error) {
	candidates, err := s.repomanager.Users(s.db).FindByIdentity(ctx, strings.TrimSpace(identity))
	if err != nil {
		s.log.Error(ctx, "credential lookup failed", "op", "validate", "error", err)
		return nil, err
	}

	for _, u := range candidates {
		ok, err := cryptox.VerifyPassword(u.PasswordHash, password)
		if err != nil {
			s.log.Warn(ctx, "unreadable password hash", "user_id", u.ID, "error", err)
			continue
		}
		if ok {
			return u, nil
		}
	}
	return nil, nil
}

// Login validates the credentials and, when keep is set, remembers the
// session for AutoLogin. Any mismatch is reported as the single
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, identity, password string, keep bool) (*models.User, error) {
	u, err := s.Validate(ctx, identity, password)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrInvalidCredentials
	}

	if keep {
		err = s.saveSession(ctx, u.ID)
	} else {
		err = s.Logout(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user logged in", "user_id", u.ID, "keep_session", keep)
	return u, nil
}

func (s *UserService) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.repomanager.Users(s.db).ExistsByUsername(ctx, strings.TrimSpace(username))
}

func (s *UserService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repomanager.Users(s.db).ExistsByEmail(ctx, strings.TrimSpace(email))
}

// Update overwrites the identity fields of userID and, when newPassword is
// not nil, its password. It does not validate input; common.ErrorNotFound
// is returned for an unknown id.
func (s *UserService) Update(ctx context.Context, userID, newUsername, newEmail string, newPassword *string) error {
	var hash string
	if newPassword != nil {
		h, err := cryptox.HashPassword(*newPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w: %w", common.ErrorInternal, err)
		}
		hash = h
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		u, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		u.Username = strings.TrimSpace(newUsername)
		u.Email = strings.TrimSpace(newEmail)
		if newPassword != nil {
			u.PasswordHash = hash
		}
		return repo.Update(ctx, u)
	})
	if err != nil && !errors.Is(err, common.ErrorNotFound) && duplicateFieldError(err) == nil {
		s.log.Error(ctx, "update failed", "op", "update", "user_id", userID, "error", err)
	}
	return err
}

// UpdateProfile runs the profile-save flow: the current password must be
// correct, identity fields are validated and checked for duplicates against
// other users only, and an optional new password must be confirmed.
func (s *UserService) UpdateProfile(ctx context.Context, p ProfileUpdate) (*models.User, error) {
	current, err := s.repomanager.Users(s.db).GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(p.Username)
	email := strings.TrimSpace(p.Email)

	errs := common.FieldErrors{}
	s.validator.Struct(validation.Identity{Username: username, Email: email}, errs)

	if strings.TrimSpace(p.CurrentPassword) == "" {
		errs.Add(common.FieldCurrentPassword, common.ErrRequiredFieldMissing)
	} else if ok, _ := cryptox.VerifyPassword(current.PasswordHash, p.CurrentPassword); !ok {
		errs.Add(common.FieldCurrentPassword, common.ErrWrongCurrentPassword)
	}

	var newPassword *string
	np := strings.TrimSpace(p.NewPassword)
	if np != "" || strings.TrimSpace(p.Confirmation) != "" {
		s.validator.Struct(validation.NewPassword{
			Password:     np,
			Confirmation: strings.TrimSpace(p.Confirmation),
		}, errs)
		newPassword = &p.NewPassword
	}

	if err := s.checkDuplicates(ctx, errs, username, email, current); err != nil {
		return nil, err
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	if err := s.Update(ctx, current.ID, username, email, newPassword); err != nil {
		if fe := duplicateFieldError(err); fe != nil {
			return nil, fe
		}
		return nil, err
	}

	s.log.Info(ctx, "profile updated", "user_id", current.ID, "password_changed", newPassword != nil)
	return s.repomanager.Users(s.db).GetByID(ctx, current.ID)
}

// DeleteAccount removes userID and its favourites after re-checking its
// password and forgets any saved session.
func (s *UserService) DeleteAccount(ctx context.Context, userID, currentPassword string) error {
	u, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if ok, _ := cryptox.VerifyPassword(u.PasswordHash, currentPassword); !ok {
		return common.ErrWrongCurrentPassword
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Favourites(tx).Clear(ctx, userID); err != nil {
			return err
		}
		if err := s.repomanager.Users(tx).Delete(ctx, userID); err != nil {
			return err
		}
		return s.repomanager.Preferences(tx).Delete(ctx, common.SessionPreferenceKey)
	})
	if err != nil {
		s.log.Error(ctx, "delete account failed", "op", "delete_account", "user_id", userID, "error", err)
		return err
	}

	s.log.Info(ctx, "account deleted", "user_id", userID)
	return nil
}

// AutoLogin restores the saved session. It returns (nil, nil) when nothing
// is saved. An expired or unusable token is forgotten and reported as
// common.ErrTokenExpired or common.ErrInvalidToken.
func (s *UserService) AutoLogin(ctx context.Context) (*models.User, error) {
	prefs := s.repomanager.Preferences(s.db)

	token, err := prefs.Get(ctx, common.SessionPreferenceKey)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	userID, err := auth.GetUserIDFromToken(string(token), s.sessionSecret)
	if err != nil {
		return nil, s.dropSession(ctx, err)
	}

	u, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, s.dropSession(ctx, common.ErrInvalidToken)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Logout forgets the saved session, if any.
func (s *UserService) Logout(ctx context.Context) error {
	return s.repomanager.Preferences(s.db).Delete(ctx, common.SessionPreferenceKey)
}

// --- helpers below ---

func (s *UserService) saveSession(ctx context.Context, userID string) error {
	token, err := auth.GenerateToken(userID, s.sessionSecret, s.sessionValidity)
	if err != nil {
		return fmt.Errorf("sign session: %w: %w", common.ErrorInternal, err)
	}
	return s.repomanager.Preferences(s.db).Set(ctx, common.SessionPreferenceKey, []byte(token))
}

func (s *UserService) dropSession(ctx context.Context, cause error) error {
	s.log.Info(ctx, "saved session discarded", "reason", cause)
	if err := s.Logout(ctx); err != nil {
		return err
	}
	return cause
}

// checkDuplicates adds duplicate errors for username and email. Fields that
// already failed validation are skipped, as are values equal to self's own.
func (s *UserService) checkDuplicates(ctx context.Context, errs common.FieldErrors, username, email string, self *models.User) error {
	repo := s.repomanager.Users(s.db)

	if !errs.Has(common.FieldUsername) && (self == nil || users.Key(username) != users.Key(self.Username)) {
		taken, err := repo.ExistsByUsername(ctx, username)
		if err != nil {
			s.log.Error(ctx, "duplicate check failed", "op", "exists_by_username", "error", err)
			return err
		}
		if taken {
			errs.Add(common.FieldUsername, common.ErrDuplicateUsername)
		}
	}

	if !errs.Has(common.FieldEmail) && (self == nil || users.Key(email) != users.Key(self.Email)) {
		taken, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			s.log.Error(ctx, "duplicate check failed", "op", "exists_by_email", "error", err)
			return err
		}
		if taken {
			errs.Add(common.FieldEmail, common.ErrDuplicateEmail)
		}
	}
	return nil
}

// duplicateFieldError converts a unique index violation raised by the store
// into the per-field form used by validation.
func duplicateFieldError(err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		return common.FieldErrors{common.FieldUsername: common.ErrDuplicateUsername}
	case errors.Is(err, common.ErrDuplicateEmail):
		return common.FieldErrors{common.FieldEmail: common.ErrDuplicateEmail}
	default:
		return nil
	}
}
