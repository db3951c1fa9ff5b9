package database

import (
	"context"
	"fmt"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/pkg/constvars"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(connectionString).
		SetAppName(constvars.ServiceName)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping mongo database: %s", err.Error())
	}

	err = ensureMongoIndexes(ctx, client.Database(driverConfig.MongoDB.DbName))
	if err != nil {
		log.Fatalf("Failed to create mongo indexes: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// ensureMongoIndexes backs the pin and uniqueId lookups, and makes both unique
// so two racing registrations cannot both succeed.
func ensureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionHospitals: {
			{Keys: bson.D{{Key: "pin", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		constvars.MongoCollectionPatients: {
			{Keys: bson.D{{Key: "uniqueId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		constvars.MongoCollectionDoctors: {
			{Keys: bson.D{{Key: "associations.hospitalPin", Value: 1}}},
		},
		constvars.MongoCollectionAppointments: {
			{Keys: bson.D{{Key: "doctorId", Value: 1}}},
			{Keys: bson.D{{Key: "patientId", Value: 1}}},
			{Keys: bson.D{{Key: "hospitalPin", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("%s: %w", collection, err)
		}
	}
	return nil
}
