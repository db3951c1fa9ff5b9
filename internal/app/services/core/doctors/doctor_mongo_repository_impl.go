package doctors

import (
	"context"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

// FindByNameAndQualifications matches both fields case-insensitively.
func (r *DoctorMongoRepository) FindByNameAndQualifications(ctx context.Context, name, qualifications string) (*models.Doctor, error) {
	var doctor models.Doctor
	filter := bson.M{
		"name":           name,
		"qualifications": qualifications,
	}
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	err := r.Collection.FindOne(ctx, filter, opts).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if doctor.Associations == nil {
		doctor.Associations = []models.Association{}
	}
	_, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// AddAssociation pushes the association only while none of its slots is
// held by the doctor in any association.
func (r *DoctorMongoRepository) AddAssociation(ctx context.Context, doctorID string, association models.Association) error {
	filter := bson.M{
		"_id":                    doctorID,
		"associations.timeSlots": bson.M{"$nin": association.TimeSlots},
	}
	update := bson.M{
		"$push": bson.M{"associations": association},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	exists, err := r.exists(ctx, doctorID)
	if err != nil {
		return err
	}
	if !exists {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return exceptions.ErrTimeSlotConflict(nil)
}

// UpdateAssociationFee changes the first association matching key.
func (r *DoctorMongoRepository) UpdateAssociationFee(ctx context.Context, doctorID string, key models.AssociationKey, fee float64) error {
	filter := bson.M{
		"_id":          doctorID,
		"associations": bson.M{"$elemMatch": associationFilter(key)},
	}
	update := bson.M{
		"$set": bson.M{
			"associations.$.fee": fee,
			"updatedAt":          time.Now(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAssociationNotFound(nil)
	}
	return nil
}

// RemoveSlot pulls the slot from the first association matching key that
// still offers it. The match and the pull happen in one document update.
func (r *DoctorMongoRepository) RemoveSlot(ctx context.Context, doctorID string, key models.AssociationKey, slot string) error {
	elemFilter := associationFilter(key)
	elemFilter["timeSlots"] = slot

	filter := bson.M{
		"_id":          doctorID,
		"associations": bson.M{"$elemMatch": elemFilter},
	}
	update := bson.M{
		"$pull": bson.M{"associations.$.timeSlots": slot},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSlotUnavailable(nil)
	}
	return nil
}

func (r *DoctorMongoRepository) RestoreSlot(ctx context.Context, doctorID string, key models.AssociationKey, slot string) error {
	filter := bson.M{
		"_id":          doctorID,
		"associations": bson.M{"$elemMatch": associationFilter(key)},
	}
	update := bson.M{
		"$addToSet": bson.M{"associations.$.timeSlots": slot},
		"$set":      bson.M{"updatedAt": time.Now()},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAssociationNotFound(nil)
	}
	return nil
}

func (r *DoctorMongoRepository) exists(ctx context.Context, doctorID string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"_id": doctorID}, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func associationFilter(key models.AssociationKey) bson.M {
	return bson.M{
		"hospitalPin": key.HospitalPin,
		"department":  key.Department,
	}
}
