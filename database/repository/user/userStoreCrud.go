package userRepo

import (
	"context"
	"errors"
	"fmt"

	"lustrio/database"
	"lustrio/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StoreUserRepo implements UserRepository on a database.Store.
type StoreUserRepo struct {
	store database.Store
}

func NewStoreUserRepo(store database.Store) UserRepository {
	return &StoreUserRepo{store: store}
}

// Create inserts a new user document. Role is always cleared.
func (r *StoreUserRepo) Create(ctx context.Context, user *models.User) (database.InsertResult, error) {
	user.Role = ""
	res, err := r.store.InsertOne(ctx, database.CollectionUsers, user)
	if err != nil {
		return res, fmt.Errorf("failed to create user %s: %w", user.Email, err)
	}
	return res, nil
}

func (r *StoreUserRepo) UpsertByEmail(ctx context.Context, in models.UserInput) (database.UpdateResult, error) {
	set := bson.M{"email": in.Email}
	if in.DisplayName != "" {
		set["displayName"] = in.DisplayName
	}
	res, err := r.store.UpdateOne(ctx, database.CollectionUsers,
		bson.M{"email": in.Email}, bson.M{"$set": set}, true)
	if err != nil {
		return res, fmt.Errorf("failed to upsert user %s: %w", in.Email, err)
	}
	return res, nil
}

func (r *StoreUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.store.FindOne(ctx, database.CollectionUsers, bson.M{"email": email}, &user); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

func (r *StoreUserRepo) SetRole(ctx context.Context, email, role string) (database.UpdateResult, error) {
	res, err := r.store.UpdateOne(ctx, database.CollectionUsers,
		bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}}, true)
	if err != nil {
		return res, fmt.Errorf("failed to set role for %s: %w", email, err)
	}
	return res, nil
}
