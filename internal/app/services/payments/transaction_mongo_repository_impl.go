package payments

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTransactions),
	}
}

func (r *TransactionMongoRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (string, error) {
	transaction.ID = primitive.NewObjectID().Hex()
	transaction.SetCreatedAtUpdatedAt()
	_, err := r.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return transaction.ID, nil
}

func (r *TransactionMongoRepository) FindByPartnerTrxID(ctx context.Context, partnerTrxID string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.Collection.FindOne(ctx, bson.M{"partnerTrxId": partnerTrxID}).Decode(&transaction)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (r *TransactionMongoRepository) UpdateStatus(ctx context.Context, transactionID string, status models.TransactionStatus) error {
	filter := bson.M{"_id": transactionID}
	update := bson.M{"$set": bson.M{"status": status}}
	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
