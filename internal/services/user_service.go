package services

import (
	"context"
	"fmt"
	"time"

	"meetapp/internal/helpers"
	"meetapp/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// UpdateProfileInput fields are optional; zero values leave the stored
// value untouched. Changing the password requires the current one.
type UpdateProfileInput struct {
	Name        string
	Email       string `validate:"omitempty,email"`
	OldPassword string
	Password    string `validate:"omitempty,min=6"`
}

type UserService struct {
	userRepo models.UserRepo
	tokens   *helpers.TokenManager
	now      func() time.Time
}

func NewUserService(userRepo models.UserRepo, tokens *helpers.TokenManager) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		now:      time.Now,
	}
}

func (us *UserService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	existing, err := us.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := us.now()
	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return us.userRepo.CreateUser(ctx, user)
}

func (us *UserService) UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*models.User, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	user, err := us.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	if input.Email != "" && input.Email != user.Email {
		taken, err := us.userRepo.FindUserByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, models.ErrEmailTaken
		}
		user.Email = input.Email
	}

	if input.Name != "" {
		user.Name = input.Name
	}

	if input.Password != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
			return nil, models.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = us.now()
	return us.userRepo.UpdateUser(ctx, user)
}

// Authenticate checks the credentials and issues a session token for
// the matched user.
func (us *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, "", fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}
	if err := models.Validate.Var(password, "required"); err != nil {
		return nil, "", fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	user, err := us.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := us.tokens.IssueToken(user.ID, us.now())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
