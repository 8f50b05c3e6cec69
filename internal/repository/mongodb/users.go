package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/core/port"
)

// UserRepository implements port.UserRepository using MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository wires a MongoDB-backed user repository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

// EnsureIndexes makes the user id unique.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	return ensureUniqueIndex(ctx, r.coll, "id")
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return findAll[domain.User](ctx, r.coll, bson.D{})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.coll, bson.M{"id": id})
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.coll, bson.M{"name": name})
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	_, err := r.coll.InsertOne(ctx, user)
	return translate(err)
}

func (r *UserRepository) Rename(ctx context.Context, id, name string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"name": name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

var _ port.UserRepository = (*UserRepository)(nil)
