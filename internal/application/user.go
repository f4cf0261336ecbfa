package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/api/middleware"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/domain/audit"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/identity"
	"github.com/linskybing/scholarship-go/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos    *repository.Repos
	verifier identity.Verifier
}

func NewUserService(repos *repository.Repos, verifier identity.Verifier) *UserService {
	return &UserService{
		Repos:    repos,
		verifier: verifier,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isReservedAdmin(u user.User) bool {
	return config.ReservedAdminEmail != "" && u.Email == config.ReservedAdminEmail
}

func tokenTTL() time.Duration {
	if config.TokenTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(config.TokenTTLHours) * time.Hour
}

func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	email := normalizeEmail(input.Email)
	taken, err := s.Repos.User.ExistsByEmail(email)
	if err != nil {
		return user.User{}, err
	}
	if taken {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}
	hash := string(hashed)

	usr := user.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: &hash,
		PhotoURL: input.PhotoURL,
		Provider: user.ProviderPassword,
		Role:     user.RoleUser,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) LoginUser(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if usr.Password == nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	return s.issue(usr)
}

// LoginWithGoogle verifies idToken and signs the caller in, creating the
// account on first sight or linking it to an existing one with the same email.
func (s *UserService) LoginWithGoogle(ctx context.Context, idToken string) (user.User, string, error) {
	if s.verifier == nil {
		return user.User{}, "", ErrFederatedLogin
	}
	id, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return user.User{}, "", fmt.Errorf("%w: %v", ErrFederatedLogin, err)
	}
	// an unverified email must never link to an existing account
	if !id.EmailVerified {
		return user.User{}, "", fmt.Errorf("%w: %v", ErrFederatedLogin, identity.ErrEmailNotVerified)
	}

	usr, err := s.Repos.User.GetUserByGoogleSub(id.Subject)
	if err == nil {
		return s.issue(usr)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, "", err
	}

	usr, err = s.Repos.User.GetUserByEmail(id.Email)
	switch {
	case err == nil:
		sub := id.Subject
		usr.GoogleSub = &sub
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := id.Subject
		name := id.Name
		if name == "" {
			name = strings.Split(id.Email, "@")[0]
		}
		usr = user.User{
			Name:      name,
			Email:     id.Email,
			Provider:  user.ProviderGoogle,
			GoogleSub: &sub,
			Role:      user.RoleUser,
		}
	default:
		return user.User{}, "", err
	}
	return s.issue(usr)
}

// issue records the sign-in and returns a fresh token.
func (s *UserService) issue(usr user.User) (user.User, string, error) {
	now := timeNow()
	usr.LastLoginAt = &now
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, "", err
	}
	token, err := middleware.GenerateToken(usr, tokenTTL())
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, ErrUserNotFound
	}
	return usr, err
}

func (s *UserService) EmailExists(email string) (bool, error) {
	return s.Repos.User.ExistsByEmail(normalizeEmail(email))
}

func (s *UserService) ListUsers(role *user.Role) ([]user.User, error) {
	return s.Repos.User.ListUsers(role)
}

func (s *UserService) ListUserByPaging(page, limit int) ([]user.User, int64, error) {
	return s.Repos.User.ListUsersPaging(page, limit)
}

func (s *UserService) UpdateUser(id uint, input user.UpdateUserInput) (user.User, error) {
	usr, err := s.FindUserByID(id)
	if err != nil {
		return user.User{}, err
	}

	if input.Password != nil {
		// federated accounts without a password may set one directly
		if usr.Password != nil {
			if input.OldPassword == nil {
				return user.User{}, ErrMissingOldPassword
			}
			if err := bcrypt.CompareHashAndPassword([]byte(*usr.Password), []byte(*input.OldPassword)); err != nil {
				return user.User{}, ErrIncorrectPassword
			}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.User{}, ErrPasswordHashFailure
		}
		hash := string(hashed)
		usr.Password = &hash
	}

	if input.Name != nil {
		usr.Name = strings.TrimSpace(*input.Name)
	}
	if input.PhotoURL != nil {
		usr.PhotoURL = *input.PhotoURL
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) UpdateRole(c *gin.Context, id uint, raw string) (user.User, error) {
	role, err := user.ParseRole(raw)
	if err != nil {
		return user.User{}, err
	}
	usr, err := s.FindUserByID(id)
	if err != nil {
		return user.User{}, err
	}
	if isReservedAdmin(usr) && role != user.RoleAdmin {
		return user.User{}, ErrReservedAdminUser
	}

	before := usr
	usr.Role = role
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}

	utils.LogAuditWithConsole(c, audit.ActionUpdate, "user", strconv.Itoa(int(id)),
		user.ToDTO(before), user.ToDTO(usr), "role changed to "+string(role), s.Repos.Audit)
	return usr, nil
}

func (s *UserService) RemoveUser(c *gin.Context, id uint) error {
	usr, err := s.FindUserByID(id)
	if err != nil {
		return err
	}
	if isReservedAdmin(usr) {
		return ErrReservedAdminUser
	}
	if err := s.Repos.User.DeleteUser(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, audit.ActionDelete, "user", strconv.Itoa(int(id)),
		user.ToDTO(usr), nil, "deleted user "+usr.Email, s.Repos.Audit)
	return nil
}

// EnsureReservedAdmin creates the configured admin account, or restores its
// role if someone changed it directly in the database.
func (s *UserService) EnsureReservedAdmin() error {
	email := config.ReservedAdminEmail
	if email == "" {
		return nil
	}

	usr, err := s.Repos.User.GetUserByEmail(email)
	if err == nil {
		if usr.Role == user.RoleAdmin {
			return nil
		}
		usr.Role = user.RoleAdmin
		return s.Repos.User.SaveUser(&usr)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if config.ReservedAdminPassword == "" {
		return errors.New("RESERVED_ADMIN_PASSWORD is required to create " + email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.ReservedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	hash := string(hashed)
	return s.Repos.User.SaveUser(&user.User{
		Name:     "Administrator",
		Email:    email,
		Password: &hash,
		Provider: user.ProviderPassword,
		Role:     user.RoleAdmin,
	})
}
