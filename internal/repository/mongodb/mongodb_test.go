package mongodb

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func namespace(mt *mtest.T, coll string) string {
	return mt.DB.Name() + "." + coll
}

func updateResponse(matched int) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: matched},
	)
}

func deleteResponse(deleted int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: deleted})
}

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error",
	})
}

func countResponse(mt *mtest.T, coll string, n int) bson.D {
	return mtest.CreateCursorResponse(0, namespace(mt, coll), mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}
