package services

import (
	"errors"
	"strings"

	"footballfinder/internal/models"
	"footballfinder/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	tokens     *TokenService
	bcryptCost int
	validate   *validator.Validate
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		validate:   newValidator(),
	}
}

// IssueToken returns a fresh bearer token for user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	return s.tokens.Issue(user.ID)
}

// RegisterUser creates a user with a bcrypt hash of the password.
func (s *AuthService) RegisterUser(input RegisterInput) (*models.User, error) {
	if err := validatePresence(s.validate, input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(input.Email)
	if err == nil && existing != nil {
		return nil, oops.Code(CodeDuplicateEmail).
			With("email", input.Email).
			Errorf("Email already registered")
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, oops.With("email", input.Email).Wrapf(err, "failed to check existing user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, invalidInput("Password is too long")
		}
		return nil, oops.Wrapf(err, "failed to hash password")
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
	}
	if err := s.userRepo.Create(user); err != nil {
		// Lost a race with a concurrent registration; the unique index decided.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, oops.Code(CodeDuplicateEmail).
				With("email", input.Email).
				Errorf("Email already registered")
		}
		return nil, oops.Wrapf(err, "failed to register user")
	}
	return user, nil
}

// VerifyCredentials returns the user only if password hashes to the stored hash.
func (s *AuthService) VerifyCredentials(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, oops.Code(CodeInvalidCredentials).
				With("email", email).
				Errorf("Invalid email or password")
		}
		return nil, oops.With("email", email).Wrapf(err, "failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, oops.Code(CodeInvalidCredentials).
			With("email", email).
			Errorf("Invalid email or password")
	}
	return user, nil
}

// LoginUser authenticates a user and returns a JWT token if successful.
func (s *AuthService) LoginUser(input LoginInput) (*models.User, string, error) {
	if err := validatePresence(s.validate, input); err != nil {
		return nil, "", err
	}

	user, err := s.VerifyCredentials(input.Email, input.Password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser looks a user up by id.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, oops.Code(CodeUserNotFound).
				With("user_id", id).
				Errorf("User not found")
		}
		return nil, oops.With("user_id", id).Wrapf(err, "failed to load user")
	}
	return user, nil
}

// Authenticate resolves an Authorization header of the form "<scheme> <token>" to a user.
// The scheme is not inspected. The returned error code tells why authentication failed;
// callers decide how much of that to reveal.
func (s *AuthService) Authenticate(authHeader string) (*models.User, error) {
	if authHeader == "" {
		return nil, oops.Code(CodeAuthMissing).Errorf("No authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 || parts[1] == "" {
		return nil, oops.Code(CodeTokenInvalid).Errorf("Invalid token")
	}

	userID, err := s.tokens.Verify(parts[1])
	if err != nil {
		return nil, err
	}
	return s.GetUser(userID)
}
