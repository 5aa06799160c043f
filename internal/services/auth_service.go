package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/repository"
	"github.com/vickhardth/site-pulse-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrMissingCredentials   = errors.New("username and password are required")
	ErrMissingDOB           = errors.New("date of birth is required")
	ErrInvalidDOB           = errors.New("date of birth must be before today")
	ErrMissingRole          = errors.New("role is required")
	ErrManagerNotFound      = errors.New("manager not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles registration, login, and token issuance.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username  string
	Password  string
	DOB       string
	Role      string
	ManagerID *uint64
}

// Register creates a new user and returns it with a signed token.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, "", ErrMissingCredentials
	}
	if input.DOB == "" {
		return nil, "", ErrMissingDOB
	}
	dob, err := time.Parse("2006-01-02", input.DOB)
	if err != nil {
		return nil, "", ErrInvalidDOB
	}
	// calendar-date comparison in server-local time; Truncate would snap to UTC midnight
	if dob.Format("2006-01-02") >= time.Now().Format("2006-01-02") {
		return nil, "", ErrInvalidDOB
	}
	if strings.TrimSpace(input.Role) == "" {
		return nil, "", ErrMissingRole
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}

	if input.ManagerID != nil {
		if _, err := s.userRepo.FindByID(*input.ManagerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "", ErrManagerNotFound
			}
			return nil, "", fmt.Errorf("failed to check manager: %w", err)
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		DOB:          dob,
		Role:         input.Role,
		ManagerID:    input.ManagerID,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", ErrFailedToCreateUser
	}

	token, err := utils.IssueToken(s.jwtSecret, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the user with a signed token.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	if input.Username == "" || input.Password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.IssueToken(s.jwtSecret, user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token, nil
}
