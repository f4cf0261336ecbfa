package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/scholarship-go/internal/api/middleware"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/domain/user"
	"github.com/linskybing/scholarship-go/pkg/identity"
	identitymock "github.com/linskybing/scholarship-go/pkg/identity/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func stubToken(t *testing.T) {
	old := middleware.GenerateToken
	middleware.GenerateToken = func(u user.User, exp time.Duration) (string, error) {
		return "token-" + u.Email, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = old })
}

func hashOf(t *testing.T, pw string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func withReservedAdmin(t *testing.T, email, password string) {
	oldEmail, oldPw := config.ReservedAdminEmail, config.ReservedAdminPassword
	config.ReservedAdminEmail, config.ReservedAdminPassword = email, password
	t.Cleanup(func() { config.ReservedAdminEmail, config.ReservedAdminPassword = oldEmail, oldPw })
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)

	m.user.EXPECT().ExistsByEmail("jane@example.com").Return(false, nil)
	m.user.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.RoleUser, u.Role)
		require.NotNil(t, u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte("secret1")))
		u.ID = 3
		return nil
	})

	u, err := svc.RegisterUser(user.CreateUserInput{Name: " Jane ", Email: "Jane@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), u.ID)
	assert.Equal(t, "Jane", u.Name)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)

	m.user.EXPECT().ExistsByEmail("jane@example.com").Return(true, nil)

	_, err := svc.RegisterUser(user.CreateUserInput{Name: "Jane", Email: "jane@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)
	stubToken(t)

	usr := user.User{ID: 1, Email: "bob@example.com", Password: hashOf(t, "123456"), Role: user.RoleUser}
	m.user.EXPECT().GetUserByEmail("bob@example.com").Return(usr, nil)
	m.user.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		require.NotNil(t, u.LastLoginAt)
		assert.Equal(t, fixedNow, *u.LastLoginAt)
		return nil
	})

	u, token, err := svc.LoginUser("BOB@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	assert.Equal(t, "token-bob@example.com", token)
}

func TestLoginUser_Failures(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)

	m.user.EXPECT().GetUserByEmail("bob@example.com").Return(user.User{ID: 1, Password: hashOf(t, "123456")}, nil)
	_, token, err := svc.LoginUser("bob@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)

	m.user.EXPECT().GetUserByEmail("nobody@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	_, _, err = svc.LoginUser("nobody@example.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// federated account without a password
	m.user.EXPECT().GetUserByEmail("g@example.com").Return(user.User{ID: 2, Provider: user.ProviderGoogle}, nil)
	_, _, err = svc.LoginUser("g@example.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- LoginWithGoogle ---------------------
func TestLoginWithGoogle_CreatesUser(t *testing.T) {
	m := setupServiceMocks(t)
	verifier := identitymock.NewMockVerifier(m.ctrl)
	svc := NewUserService(m.repos, verifier)
	stubToken(t)

	verifier.EXPECT().Verify(gomock.Any(), "id-token").Return(identity.Identity{Subject: "sub-1", Email: "new@example.com", EmailVerified: true, Name: "New Person"}, nil)
	m.user.EXPECT().GetUserByGoogleSub("sub-1").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().GetUserByEmail("new@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.ProviderGoogle, u.Provider)
		assert.Equal(t, user.RoleUser, u.Role)
		require.NotNil(t, u.GoogleSub)
		assert.Equal(t, "sub-1", *u.GoogleSub)
		assert.Nil(t, u.Password)
		u.ID = 10
		return nil
	})

	u, token, err := svc.LoginWithGoogle(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, uint(10), u.ID)
	assert.Equal(t, "token-new@example.com", token)
}

func TestLoginWithGoogle_LinksExistingEmail(t *testing.T) {
	m := setupServiceMocks(t)
	verifier := identitymock.NewMockVerifier(m.ctrl)
	svc := NewUserService(m.repos, verifier)
	stubToken(t)

	existing := user.User{ID: 4, Email: "jane@example.com", Role: user.RoleModerator, Password: hashOf(t, "pw1234")}
	verifier.EXPECT().Verify(gomock.Any(), "tok").Return(identity.Identity{Subject: "sub-2", Email: "jane@example.com", EmailVerified: true}, nil)
	m.user.EXPECT().GetUserByGoogleSub("sub-2").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().GetUserByEmail("jane@example.com").Return(existing, nil)
	m.user.EXPECT().SaveUser(gomock.Any()).Return(nil)

	u, _, err := svc.LoginWithGoogle(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, user.RoleModerator, u.Role)
	require.NotNil(t, u.GoogleSub)
	assert.Equal(t, "sub-2", *u.GoogleSub)
}

func TestLoginWithGoogle_InvalidToken(t *testing.T) {
	m := setupServiceMocks(t)
	verifier := identitymock.NewMockVerifier(m.ctrl)
	svc := NewUserService(m.repos, verifier)

	verifier.EXPECT().Verify(gomock.Any(), "bad").Return(identity.Identity{}, identity.ErrInvalidIDToken)
	_, _, err := svc.LoginWithGoogle(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrFederatedLogin)

	_, _, err = NewUserService(m.repos, nil).LoginWithGoogle(context.Background(), "x")
	assert.ErrorIs(t, err, ErrFederatedLogin)
}

func TestLoginWithGoogle_UnverifiedEmailDoesNotLink(t *testing.T) {
	m := setupServiceMocks(t)
	verifier := identitymock.NewMockVerifier(m.ctrl)
	svc := NewUserService(m.repos, verifier)

	verifier.EXPECT().Verify(gomock.Any(), "tok").Return(identity.Identity{Subject: "sub-9", Email: "admin@scholarship.local"}, nil)
	m.user.EXPECT().GetUserByGoogleSub(gomock.Any()).Times(0)
	m.user.EXPECT().GetUserByEmail(gomock.Any()).Times(0)
	m.user.EXPECT().SaveUser(gomock.Any()).Times(0)

	_, token, err := svc.LoginWithGoogle(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrFederatedLogin)
	assert.ErrorContains(t, err, identity.ErrEmailNotVerified.Error())
	assert.Empty(t, token)
}

// --------------------- UpdateUser ---------------------
func TestUpdateUser_ChangePassword(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)

	existing := user.User{ID: 1, Password: hashOf(t, "oldpass")}
	m.user.EXPECT().GetUserByID(uint(1)).Return(existing, nil).Times(3)
	m.user.EXPECT().SaveUser(gomock.Any()).Return(nil)

	_, err := svc.UpdateUser(1, user.UpdateUserInput{Password: ptr("newpass")})
	assert.ErrorIs(t, err, ErrMissingOldPassword)

	_, err = svc.UpdateUser(1, user.UpdateUserInput{Password: ptr("newpass"), OldPassword: ptr("nope")})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	u, err := svc.UpdateUser(1, user.UpdateUserInput{Password: ptr("newpass"), OldPassword: ptr("oldpass"), Name: ptr("Bob")})
	require.NoError(t, err)
	assert.Equal(t, "Bob", u.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte("newpass")))
}

func TestUpdateUser_NotFound(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)

	m.user.EXPECT().GetUserByID(uint(99)).Return(user.User{}, gorm.ErrRecordNotFound)
	_, err := svc.UpdateUser(99, user.UpdateUserInput{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// --------------------- Roles ---------------------
func TestUpdateRole(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)
	withReservedAdmin(t, "root@example.com", "")

	_, err := svc.UpdateRole(m.c, 2, "superuser")
	assert.ErrorIs(t, err, user.ErrUnknownRole)

	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1, Email: "root@example.com", Role: user.RoleAdmin}, nil)
	_, err = svc.UpdateRole(m.c, 1, "user")
	assert.ErrorIs(t, err, ErrReservedAdminUser)

	m.user.EXPECT().GetUserByID(uint(2)).Return(user.User{ID: 2, Email: "mod@example.com", Role: user.RoleUser}, nil)
	m.user.EXPECT().SaveUser(gomock.Any()).Return(nil)
	u, err := svc.UpdateRole(m.c, 2, "Moderator")
	require.NoError(t, err)
	assert.Equal(t, user.RoleModerator, u.Role)
}

func TestRemoveUser_ReservedAdmin(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)
	withReservedAdmin(t, "root@example.com", "")

	m.user.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1, Email: "root@example.com"}, nil)
	assert.ErrorIs(t, svc.RemoveUser(m.c, 1), ErrReservedAdminUser)

	m.user.EXPECT().GetUserByID(uint(5)).Return(user.User{ID: 5, Email: "x@example.com"}, nil)
	m.user.EXPECT().DeleteUser(uint(5)).Return(nil)
	assert.NoError(t, svc.RemoveUser(m.c, 5))
}

func TestEnsureReservedAdmin(t *testing.T) {
	m := setupServiceMocks(t)
	svc := NewUserService(m.repos, nil)
	withReservedAdmin(t, "root@example.com", "s3cret!")

	m.user.EXPECT().GetUserByEmail("root@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.RoleAdmin, u.Role)
		return nil
	})
	require.NoError(t, svc.EnsureReservedAdmin())

	m.user.EXPECT().GetUserByEmail("root@example.com").Return(user.User{ID: 1, Role: user.RoleUser}, nil)
	m.user.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, user.RoleAdmin, u.Role)
		return nil
	})
	require.NoError(t, svc.EnsureReservedAdmin())

	m.user.EXPECT().GetUserByEmail("root@example.com").Return(user.User{}, errors.New("db down"))
	assert.Error(t, svc.EnsureReservedAdmin())
}
