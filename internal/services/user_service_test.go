package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"meetapp/internal/helpers"
	"meetapp/internal/models"
)

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	f.nextID++
	user.ID = f.nextID
	cp := *user
	f.users[user.ID] = &cp
	return user, nil
}

func (f *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) (*models.User, error) {
	cp := *user
	f.users[user.ID] = &cp
	return user, nil
}

func newTestUserService(repo models.UserRepo) *UserService {
	us := NewUserService(repo, helpers.NewTokenManager("test-secret", time.Hour))
	us.now = func() time.Time { return testNow }
	return us
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	us := newTestUserService(repo)

	user, err := us.Register(context.Background(), &RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "s3cret!", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret!")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	us := newTestUserService(repo)

	input := &RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret!"}
	_, err := us.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = us.Register(context.Background(), input)
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	repo := newFakeUserRepo()
	us := newTestUserService(repo)

	_, err := us.Register(context.Background(), &RegisterInput{
		Name:     "Ada",
		Email:    "not-an-email",
		Password: "s3cret!",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = us.Register(context.Background(), &RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	us := NewUserService(repo, helpers.NewTokenManager("test-secret", time.Hour))

	registered, err := us.Register(context.Background(), &RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	user, token, err := us.Authenticate(context.Background(), "ada@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	claims, err := helpers.NewTokenManager("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)

	_, _, err = us.Authenticate(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, _, err = us.Authenticate(context.Background(), "nobody@example.com", "s3cret!")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	repo := newFakeUserRepo()
	us := newTestUserService(repo)

	registered, err := us.Register(context.Background(), &RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	// wrong current password
	_, err = us.UpdateProfile(context.Background(), registered.ID, &UpdateProfileInput{
		OldPassword: "nope",
		Password:    "newpass!",
	})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	updated, err := us.UpdateProfile(context.Background(), registered.ID, &UpdateProfileInput{
		Name:        "Ada L.",
		OldPassword: "s3cret!",
		Password:    "newpass!",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass!")))

	_, _, err = us.Authenticate(context.Background(), "ada@example.com", "newpass!")
	assert.NoError(t, err)
}

func TestUpdateProfileEmailChange(t *testing.T) {
	repo := newFakeUserRepo()
	us := newTestUserService(repo)

	ada, err := us.Register(context.Background(), &RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "s3cret!",
	})
	require.NoError(t, err)
	_, err = us.Register(context.Background(), &RegisterInput{
		Name: "Grace", Email: "grace@example.com", Password: "s3cret!",
	})
	require.NoError(t, err)

	// another user's address is off limits
	_, err = us.UpdateProfile(context.Background(), ada.ID, &UpdateProfileInput{
		Email: "grace@example.com",
	})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
	assert.Equal(t, "ada@example.com", repo.users[ada.ID].Email)

	// resubmitting the current address is not a conflict
	_, err = us.UpdateProfile(context.Background(), ada.ID, &UpdateProfileInput{
		Email: "ada@example.com",
	})
	assert.NoError(t, err)

	updated, err := us.UpdateProfile(context.Background(), ada.ID, &UpdateProfileInput{
		Email: "ada.l@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada.l@example.com", updated.Email)
	assert.Equal(t, "ada.l@example.com", repo.users[ada.ID].Email)
}
