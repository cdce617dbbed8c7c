package availability

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilitySlots),
	}
}

func (r *AvailabilityMongoRepository) DeclareSlot(ctx context.Context, slot *models.AvailabilitySlot) (string, error) {
	slot.ID = primitive.NewObjectID().Hex()
	slot.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, slot)
	if err != nil {
		// unique index on the active (doctorId, date, window) tuple backs up
		// the usecase's overlap check under concurrent declares
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrSlotOverlap(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return slot.ID, nil
}

func (r *AvailabilityMongoRepository) FindByID(ctx context.Context, slotID string) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	err := r.Collection.FindOne(ctx, bson.M{"_id": slotID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *AvailabilityMongoRepository) FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.AvailabilitySlot, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"isActive": true,
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	err = cursor.All(ctx, &slots)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *AvailabilityMongoRepository) ListOpenSlots(ctx context.Context, doctorID, fromDate, toDate string) ([]models.AvailabilitySlot, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"isActive": true,
		"isBooked": false,
	}
	dateRange := bson.M{}
	if fromDate != "" {
		dateRange["$gte"] = fromDate
	}
	if toDate != "" {
		dateRange["$lte"] = toDate
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}

	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "startTime", Value: 1},
	})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.AvailabilitySlot
	err = cursor.All(ctx, &slots)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

// RetractSlot deactivates a slot only while it is still unbooked. The
// conditional filter makes retraction race-safe against a concurrent booking.
func (r *AvailabilityMongoRepository) RetractSlot(ctx context.Context, slotID string) error {
	filter := bson.M{
		"_id":      slotID,
		"isActive": true,
		"isBooked": false,
	}
	update := bson.M{"$set": bson.M{"isActive": false}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		slot, findErr := r.FindByID(ctx, slotID)
		if findErr != nil {
			return findErr
		}
		if slot != nil && slot.IsBooked {
			return exceptions.ErrSlotRetractBooked(nil)
		}
		return exceptions.ErrSlotNotFound(nil)
	}
	return nil
}

// MarkBooked flips isBooked in a single conditional update. Zero matched
// documents means a concurrent booking consumed the slot (or it was
// retracted) after the usecase saw it open, which surfaces as a conflict.
func (r *AvailabilityMongoRepository) MarkBooked(ctx context.Context, slotID string) error {
	filter := bson.M{
		"_id":      slotID,
		"isActive": true,
		"isBooked": false,
	}
	update := bson.M{"$set": bson.M{"isBooked": true}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSlotLostRace(nil)
	}
	return nil
}
