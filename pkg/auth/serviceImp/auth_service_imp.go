package serviceImp

import (
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"plantlog/entities"
	"plantlog/pkg/auth/repository"
	svc "plantlog/pkg/auth/service"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type authService struct{ repo repository.AccountRepository }

func New(r repository.AccountRepository) svc.AuthService { return &authService{repo: r} }

func (s *authService) Register(username, email, password string) (uint, error) {
	if username == "" || email == "" || password == "" {
		return 0, fmt.Errorf("username, email and password are required: %w", entities.ErrValidation)
	}
	if len(password) < 6 {
		return 0, fmt.Errorf("password must be at least 6 characters: %w", entities.ErrValidation)
	}
	if !emailRe.MatchString(email) {
		return 0, fmt.Errorf("invalid email format: %w", entities.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	a := &entities.Account{Username: username, Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(a); err != nil {
		return 0, err
	}
	return a.AccountID, nil
}

func (s *authService) Authenticate(username, password string) (*entities.Account, error) {
	a, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	// Unknown user and wrong password look the same to the caller.
	if a == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}
	return a, nil
}
