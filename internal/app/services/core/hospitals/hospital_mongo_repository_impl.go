package hospitals

import (
	"context"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) contracts.HospitalRepository {
	return &HospitalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitals),
	}
}

func (r *HospitalMongoRepository) FindAll(ctx context.Context) ([]models.Hospital, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	hospitals := make([]models.Hospital, 0)
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return hospitals, nil
}

func (r *HospitalMongoRepository) FindByPin(ctx context.Context, hospitalPin string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.Collection.FindOne(ctx, bson.M{"pin": hospitalPin}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}

// Create inserts only when no hospital holds the pin yet.
func (r *HospitalMongoRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	filter := bson.M{"pin": hospital.Pin}
	update := bson.M{"$setOnInsert": hospital}

	result, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	if result.UpsertedCount == 0 {
		return exceptions.ErrHospitalPinAlreadyUsed(nil)
	}
	return nil
}
