package ratings

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingMongoRepository struct {
	Collection *mongo.Collection
}

func NewRatingMongoRepository(db *mongo.Client, dbName string) contracts.RatingRepository {
	return &RatingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRatings),
	}
}

// UpsertRating keeps one rating per (patient, doctor) pair; resubmitting
// replaces the previous score instead of stacking a second vote.
func (r *RatingMongoRepository) UpsertRating(ctx context.Context, rating *models.Rating) (string, error) {
	filter := bson.M{
		"patientId": rating.PatientID,
		"doctorId":  rating.DoctorID,
	}
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"score":         rating.Score,
			"comment":       rating.Comment,
			"appointmentId": rating.AppointmentID,
			"updatedAt":     now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"createdAt": now,
		},
	}

	var updated models.Rating
	err := r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return "", exceptions.ErrMongoDBUpdateDocument(err)
	}
	return updated.ID, nil
}

func (r *RatingMongoRepository) ListForDoctor(ctx context.Context, doctorID string) ([]models.Rating, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	err = cursor.All(ctx, &ratings)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return ratings, nil
}

// SummaryForDoctor computes the average on read; nothing denormalized is
// stored. A doctor with no ratings yields a summary with Count zero.
func (r *RatingMongoRepository) SummaryForDoctor(ctx context.Context, doctorID string) (*models.RatingSummary, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"doctorId": doctorID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     "$doctorId",
			"average": bson.M{"$avg": "$score"},
			"count":   bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var summaries []models.RatingSummary
	err = cursor.All(ctx, &summaries)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(summaries) == 0 {
		return &models.RatingSummary{DoctorID: doctorID}, nil
	}
	return &summaries[0], nil
}
