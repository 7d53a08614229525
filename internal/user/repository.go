package user

import (
	"fmt"

	"github.com/coinkeeper/CoinKeeper/internal/storage"
)

const usersCollection = "users"

type Repository interface {
	createUser(user *User) error
	getUserByEmail(email string) (*User, error)
	getUserByID(userID int) (*User, error)
}

type repository struct {
	store *storage.Store
}

func NewUserRepository(store *storage.Store) Repository {
	return &repository{store: store}
}

type usersDoc struct {
	Users []User `json:"users"`
}

func (r *repository) load() (*usersDoc, error) {
	var doc usersDoc
	if err := r.store.Load(usersCollection, &doc); err != nil {
		return nil, fmt.Errorf("could not load users: %w", err)
	}
	return &doc, nil
}

func (r *repository) createUser(user *User) error {
	defer r.store.Lock(usersCollection)()

	doc, err := r.load()
	if err != nil {
		return err
	}

	nextID := 1
	for _, existing := range doc.Users {
		if existing.ID >= nextID {
			nextID = existing.ID + 1
		}
	}
	user.ID = nextID

	doc.Users = append(doc.Users, *user)
	if err := r.store.Save(usersCollection, doc); err != nil {
		return fmt.Errorf("could not save users: %w", err)
	}
	return nil
}

func (r *repository) getUserByEmail(email string) (*User, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].Email == email {
			return &doc.Users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *repository) getUserByID(userID int) (*User, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].ID == userID {
			return &doc.Users[i], nil
		}
	}
	return nil, ErrUserNotFound
}
