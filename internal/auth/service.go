package auth

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/coinkeeper/CoinKeeper/internal/user"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal Server Error")
)

type Service interface {
	Login(email, password string, rememberMe bool) (*user.User, string, error)
	Register(name, lastName, email, password string) (*user.User, string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

func doPasswordsMatch(hashedPassword, currPassword string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashedPassword), []byte(currPassword))
	return err == nil
}

// Login returns ErrInvalidCredentials for an unknown email and for a wrong
// password alike, so callers cannot probe which accounts exist.
func (s *service) Login(email, password string, rememberMe bool) (*user.User, string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", ErrInternalError
	}

	if !doPasswordsMatch(existingUser.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, existingUser.Email, rememberMe)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return existingUser, token, nil
}

func (s *service) Register(name, lastName, email, password string) (*user.User, string, error) {
	newUser, err := s.userService.Register(name, lastName, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.GenerateAccessJWT(newUser.ID, newUser.Email, false)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return newUser, token, nil
}
