package appointments

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// CreateAppointment inserts the appointment document. The unique index on
// (doctorId, date, startTime) rejects a second live appointment for the same
// window; that duplicate-key error surfaces as a conflict.
func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	appointment.ID = primitive.NewObjectID().Hex()
	appointment.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrAppointmentConflict(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment.ID, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByDoctorAndWindow(ctx context.Context, doctorID, date, startTime string) (*models.Appointment, error) {
	filter := bson.M{
		"doctorId":  doctorID,
		"date":      date,
		"startTime": startTime,
		"status":    bson.M{"$ne": models.AppointmentCancelled},
	}
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

// UpdateStatus commits a transition only when the stored status still equals
// the expected one. Zero matched documents means the appointment moved under
// us (or never existed); the caller maps that to the right taxonomy error.
func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, appointmentID string, from, to models.AppointmentStatus) error {
	filter := bson.M{
		"_id":    appointmentID,
		"status": from,
	}
	update := bson.M{"$set": bson.M{
		"status":      to,
		"isConfirmed": to == models.AppointmentConfirmed || to == models.AppointmentCompleted,
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrInvalidStatusTransition(nil)
	}
	return nil
}

func (r *AppointmentMongoRepository) ListForPatient(ctx context.Context, patientID string, params *requests.QueryParams) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"patientId": patientID}, params)
}

func (r *AppointmentMongoRepository) ListForDoctor(ctx context.Context, doctorID string, params *requests.QueryParams) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"doctorId": doctorID}, params)
}

func (r *AppointmentMongoRepository) CountForPatient(ctx context.Context, patientID string) (int64, error) {
	return r.count(ctx, bson.M{"patientId": patientID})
}

func (r *AppointmentMongoRepository) CountForDoctor(ctx context.Context, doctorID string) (int64, error) {
	return r.count(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentMongoRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) list(ctx context.Context, filter bson.M, params *requests.QueryParams) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "startTime", Value: -1},
	})
	if params != nil && params.PageSize > 0 {
		findOptions.SetSkip(int64((params.Page - 1) * params.PageSize))
		findOptions.SetLimit(int64(params.PageSize))
	}

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

// ExistsForPatientAndDoctor backs the rating authorization rule: the pair
// must share at least one appointment, whatever its status.
func (r *AppointmentMongoRepository) ExistsForPatientAndDoctor(ctx context.Context, patientID, doctorID string) (bool, error) {
	filter := bson.M{
		"patientId": patientID,
		"doctorId":  doctorID,
	}
	count, err := r.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}
