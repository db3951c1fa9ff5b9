package doctors

import (
	"context"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var cardiology = models.AssociationKey{HospitalPin: "111", Department: "Cardiology"}

func updateResponse(matched int) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: matched},
	)
}

// sentUpdate returns the filter and update of the single update statement
// the repository sent.
func sentUpdate(mt *mtest.T) (bson.Raw, bson.Raw) {
	started := mt.GetStartedEvent()
	require.NotNil(mt, started)
	require.Equal(mt, "update", started.CommandName)

	statement := started.Command.Lookup("updates", "0").Document()
	return statement.Lookup("q").Document(), statement.Lookup("u").Document()
}

func TestDoctorMongoRepository_RemoveSlot(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("pulls the slot from the matching association", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(updateResponse(1))

		require.NoError(mt, repo.RemoveSlot(ctx, "doc-1", cardiology, "9-10"))

		filter, update := sentUpdate(mt)
		assert.Equal(mt, "doc-1", filter.Lookup("_id").StringValue())
		elemMatch := filter.Lookup("associations", "$elemMatch").Document()
		assert.Equal(mt, "111", elemMatch.Lookup("hospitalPin").StringValue())
		assert.Equal(mt, "Cardiology", elemMatch.Lookup("department").StringValue())
		assert.Equal(mt, "9-10", elemMatch.Lookup("timeSlots").StringValue())
		assert.Equal(mt, "9-10", update.Lookup("$pull", "associations.$.timeSlots").StringValue())
	})

	mt.Run("slot already consumed", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(updateResponse(0))

		err := repo.RemoveSlot(ctx, "doc-1", cardiology, "9-10")
		require.Error(mt, err)
		assert.Equal(mt, http.StatusConflict, exceptions.StatusCodeOf(err))
	})

	mt.Run("driver failure", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value"}))

		err := repo.RemoveSlot(ctx, "doc-1", cardiology, "9-10")
		require.Error(mt, err)
		assert.Equal(mt, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
	})
}

func TestDoctorMongoRepository_RestoreSlot(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("adds the slot back once", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(updateResponse(1))

		require.NoError(mt, repo.RestoreSlot(ctx, "doc-1", cardiology, "9-10"))

		_, update := sentUpdate(mt)
		assert.Equal(mt, "9-10", update.Lookup("$addToSet", "associations.$.timeSlots").StringValue())
	})

	mt.Run("association gone", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(updateResponse(0))

		err := repo.RestoreSlot(ctx, "doc-1", cardiology, "9-10")
		assert.Equal(mt, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestDoctorMongoRepository_AddAssociation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	association := models.Association{HospitalPin: "111", Department: "Cardiology", Fee: 500, TimeSlots: []string{"9-10", "10-11"}}
	countNamespace := mtest.TestDb + "." + constvars.MongoCollectionDoctors

	mt.Run("pushes only while no slot is held", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(updateResponse(1))

		require.NoError(mt, repo.AddAssociation(ctx, "doc-1", association))

		filter, update := sentUpdate(mt)
		held, err := filter.Lookup("associations.timeSlots", "$nin").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, held, 2)
		assert.Equal(mt, "9-10", held[0].StringValue())
		assert.Equal(mt, "10-11", held[1].StringValue())
		assert.Equal(mt, "111", update.Lookup("$push", "associations", "hospitalPin").StringValue())
	})

	mt.Run("slot held by the doctor", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(
			updateResponse(0),
			mtest.CreateCursorResponse(0, countNamespace, mtest.FirstBatch, bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: 1}}),
		)

		err := repo.AddAssociation(ctx, "doc-1", association)
		require.Error(mt, err)
		assert.Equal(mt, http.StatusConflict, exceptions.StatusCodeOf(err))
	})

	mt.Run("unknown doctor", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(
			updateResponse(0),
			mtest.CreateCursorResponse(0, countNamespace, mtest.FirstBatch),
		)

		err := repo.AddAssociation(ctx, "nobody", association)
		require.Error(mt, err)
		assert.Equal(mt, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestDoctorMongoRepository_UpdateAssociationFee(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("sets the fee on the first match", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(updateResponse(1))

		require.NoError(mt, repo.UpdateAssociationFee(ctx, "doc-1", cardiology, 900))

		_, update := sentUpdate(mt)
		assert.Equal(mt, 900.0, update.Lookup("$set", "associations.$.fee").Double())
	})

	mt.Run("no such association", func(mt *mtest.T) {
		repo := NewDoctorMongoRepository(mt.Client, mt.DB.Name())
		mt.AddMockResponses(updateResponse(0))

		err := repo.UpdateAssociationFee(ctx, "doc-1", cardiology, 900)
		assert.Equal(mt, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}
