package service

import (
	"strings"

	"rnote/internal/domain/entity"
	"rnote/internal/utils"
	"rnote/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"golang.org/x/crypto/bcrypt"
)

type EmailStatus string

const (
	// EmailStatusAvailable indicates that the email is available for registration.
	EmailStatusAvailable EmailStatus = "AVAILABLE"
	// EmailStatusExists indicates that the email is already in use by some user.
	EmailStatusExists EmailStatus = "TAKEN"
)

type UserRepository interface {
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UserStatusRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UserResponse struct {
	ID        string `json:"id"` // public identifier, display form
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type UserLoginResponse struct {
	AccessToken string `json:"access_token"`
}

type UserService struct {
	UserRepo    UserRepository
	Validate    *validator.Validate
	TokenSecret []byte
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokenSecret []byte) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		Validate:    validate,
		TokenSecret: tokenSecret,
	}
}

func (u *UserService) GetMe(actor *entity.User) *UserResponse {
	return toUserResponse(actor)
}

func (u *UserService) CheckEmail(req *UserStatusRequest) (*EmailStatus, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	exists, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user (%s) exists: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	status := EmailStatusAvailable
	if exists {
		status = EmailStatusExists
	}
	return &status, nil
}

// CreateUser registers a new account. The email is stored lower-cased;
// a duplicate that slips past the pre-check is caught by the unique
// index and reported as a conflict.
func (u *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return nil, apierror.InternalServerError
	}

	if found {
		return nil, apierror.EmailTakenError
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	user := &entity.User{
		UUID:         uuid.NewString(),
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		CreatedAt:    utils.NowUTC(),
	}

	if err = u.UserRepo.Save(user); err != nil {
		if isUniqueViolation(err) {
			return nil, apierror.EmailTakenError
		}
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(user), nil
}

func (u *UserService) Login(req *UserLoginRequest) (*UserLoginResponse, apierror.ErrorResponse) {
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.CredentialsMismatchError
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apierror.CredentialsMismatchError
	}

	token, err := utils.IssueToken(u.TokenSecret, user.UUID, user.Email)
	if err != nil {
		log.Errorf("failed to issue token for user %s: %v", user.UUID, err)
		return nil, apierror.InternalServerError
	}
	return &UserLoginResponse{AccessToken: token}, nil
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        utils.StripUUID(user.UUID),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}
