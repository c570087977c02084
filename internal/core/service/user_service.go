package service

import (
	"membership/internal/core/apperr"
	"membership/internal/core/model"
	"membership/internal/core/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(email, password, role string) (*model.User, error)
	Authenticate(email, password string) (*model.User, error)
	GetUser(id string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) Register(email, password, role string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return nil, apperr.Validation("invalid role %q", role)
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if existing != nil {
		return nil, apperr.Validation("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Store(err)
	}

	user := model.NewUser(email, string(hashed), role)
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Store(err)
	}
	return user, nil
}

func (s *userService) Authenticate(email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if user == nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	return user, nil
}

func (s *userService) GetUser(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}
