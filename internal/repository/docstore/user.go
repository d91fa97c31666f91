package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/pkg/docstore"
)

const userCollection = "users"

type userRepository struct {
	store docstore.Store
}

func NewUserRepository(store docstore.Store) auth.Repository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	filters := []docstore.Filter{
		{Field: "email", Op: docstore.OpEq, Value: email},
	}
	docs, err := r.store.Query(ctx, userCollection, filters, nil, 1)
	if err != nil {
		return auth.User{}, fmt.Errorf("get user by email: %w", err)
	}
	if len(docs) == 0 {
		return auth.User{}, auth.ErrUserNotFound
	}
	return decodeUser(docs[0]), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (auth.User, error) {
	doc, err := r.store.Get(ctx, userCollection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("get user: %w", err)
	}
	return decodeUser(doc), nil
}

func decodeUser(doc docstore.Document) auth.User {
	return auth.User{
		ID:           doc.ID,
		Email:        docString(doc.Data, "email"),
		Name:         docString(doc.Data, "name"),
		PasswordHash: docString(doc.Data, "passwordHash"),
	}
}
