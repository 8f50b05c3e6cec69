package mongodb

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/arklim/cinema-platform/internal/core/domain"
	"github.com/arklim/cinema-platform/internal/repository"
)

func TestUserRepository(t *testing.T) {
	mt := newMockT(t)

	mt.Run("get by name decodes admin flag", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt, UsersCollection), mtest.FirstBatch,
			bson.D{
				{Key: "id", Value: "chris_rivers"},
				{Key: "name", Value: "Chris Rivers"},
				{Key: "is_admin", Value: true},
				{Key: "last_active", Value: int64(1700000000)},
			},
		))

		user, err := repo.GetByName(context.Background(), "Chris Rivers")
		if err != nil {
			mt.Fatalf("GetByName: %v", err)
		}
		if user.ID != "chris_rivers" || !user.IsAdmin || user.LastActive != 1700000000 {
			mt.Fatalf("unexpected user: %+v", user)
		}
	})

	mt.Run("duplicate id maps to already exists", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(duplicateKeyResponse())

		err := repo.Create(context.Background(), domain.User{ID: "chris_rivers", Name: "Other"})
		if !errors.Is(err, repository.ErrAlreadyExists) {
			mt.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	mt.Run("rename returns updated user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "id", Value: "peter_curley"},
			{Key: "name", Value: "Pete Curley"},
			{Key: "is_admin", Value: false},
		}}))

		user, err := repo.Rename(context.Background(), "peter_curley", "Pete Curley")
		if err != nil {
			mt.Fatalf("Rename: %v", err)
		}
		if user.Name != "Pete Curley" {
			mt.Fatalf("expected new name, got %q", user.Name)
		}
	})

	mt.Run("delete missing user maps to not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		if _, err := repo.Delete(context.Background(), "ghost"); !errors.Is(err, repository.ErrNotFound) {
			mt.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
