package service

import (
	"context"
	"strings"
	"time"

	"tuiter/internal/models"
	"tuiter/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

type CreateUserInput struct {
	Username      string               `json:"username"`
	Password      string               `json:"password"`
	Email         string               `json:"email"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	AccountType   models.AccountType   `json:"account_type"`
	MaritalStatus models.MaritalStatus `json:"marital_status"`
	Biography     string               `json:"biography"`
	DateOfBirth   *time.Time           `json:"date_of_birth"`
	Location      *models.Location     `json:"location"`
}

// UpdateUserInput carries a partial profile update. Nil fields are untouched.
type UpdateUserInput struct {
	Username      *string               `json:"username"`
	Password      *string               `json:"password"`
	Email         *string               `json:"email"`
	FirstName     *string               `json:"first_name"`
	LastName      *string               `json:"last_name"`
	ProfilePhoto  *string               `json:"profile_photo"`
	HeaderImage   *string               `json:"header_image"`
	MaritalStatus *models.MaritalStatus `json:"marital_status"`
	Biography     *string               `json:"biography"`
	Location      *models.Location      `json:"location"`
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	if in.Password == "" {
		return nil, models.NewValidationError("Password is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, models.NewValidationError("Email is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	accountType := in.AccountType
	if accountType == "" {
		accountType = models.AccountTypePersonal
	}

	user := &models.User{
		Username:      username,
		Password:      string(hashed),
		Email:         strings.TrimSpace(in.Email),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		AccountType:   accountType,
		MaritalStatus: in.MaritalStatus,
		Biography:     in.Biography,
		DateOfBirth:   in.DateOfBirth,
		Location:      in.Location,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateUser applies a partial profile update. The password is rehashed when
// supplied; fields outside the allow-list are ignored.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" {
			return nil, models.NewValidationError("Username cannot be empty")
		}
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, models.NewValidationError("Password cannot be empty")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return nil, models.NewValidationError("Email cannot be empty")
		}
		user.Email = strings.TrimSpace(*in.Email)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.ProfilePhoto != nil {
		user.ProfilePhoto = *in.ProfilePhoto
	}
	if in.HeaderImage != nil {
		user.HeaderImage = *in.HeaderImage
	}
	if in.MaritalStatus != nil {
		user.MaritalStatus = *in.MaritalStatus
	}
	if in.Biography != nil {
		user.Biography = *in.Biography
	}
	if in.Location != nil {
		user.Location = in.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
