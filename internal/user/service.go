package user

import (
	"errors"
	"fmt"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrMissingFields      = errors.New("name, last name, email and password are required")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalError      = errors.New("internal Server Error")
)

type User struct {
	ID           int    `json:"user_id"`
	Name         string `json:"name"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

type Service interface {
	Register(name, lastName, email, password string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserByID(userID int) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		fmt.Println("Email Validation FORMAT check error")
		return ErrInvalidEmail
	}
	return nil
}

func (s *service) Register(name, lastName, email, password string) (*User, error) {
	if name == "" || lastName == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	existingUser, err := s.repo.getUserByEmail(email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		fmt.Println("Error reading users collection: ", err)
		return nil, ErrInternalError
	}
	if existingUser != nil {
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		fmt.Println("Error during hashing the password")
		return nil, ErrInternalError
	}

	user := &User{
		Name:         name,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.repo.createUser(user); err != nil {
		fmt.Println("Error during creating the user: ", err)
		return nil, ErrInternalError
	}

	return user, nil
}

func (s *service) GetUserByEmail(email string) (*User, error) {
	return s.repo.getUserByEmail(email)
}

func (s *service) GetUserByID(userID int) (*User, error) {
	return s.repo.getUserByID(userID)
}
