package database

import (
	"context"
	"fmt"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/pkg/constvars"

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
	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	err = ensureIndexes(client.Database(driverConfig.MongoDB.DbName))
	if err != nil {
		log.Fatalf("Failed to create mongo indexes: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// ensureIndexes creates the indexes the booking flow relies on. The unique
// compound index on appointments is what turns a double-booking race into a
// duplicate-key error.
func ensureIndexes(db *mongo.Database) error {
	ctx := context.TODO()

	_, err := db.Collection(constvars.MongoCollectionAppointments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "startTime", Value: 1},
		},
		Options: options.Index().
			SetName("uniq_doctor_date_start").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": bson.A{"pending", "confirmed", "completed"}},
			}),
	})
	if err != nil {
		return err
	}

	// backstop behind the application-level overlap check
	_, err = db.Collection(constvars.MongoCollectionAvailabilitySlots).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "startTime", Value: 1},
			{Key: "endTime", Value: 1},
		},
		Options: options.Index().
			SetName("uniq_doctor_date_window").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"isActive": true}),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionRatings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "patientId", Value: 1},
			{Key: "doctorId", Value: 1},
		},
		Options: options.Index().SetName("uniq_patient_doctor").SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_email").SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionTransactions).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "partnerTrxId", Value: 1}},
		Options: options.Index().SetName("uniq_partner_trx_id").SetUnique(true),
	})
	return err
}
