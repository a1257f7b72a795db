package transaction

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("transactions"),
	}
}

func (r *MongoRepo) Create(tx *Transaction) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, tx)
	if err != nil {
		return err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to convert inserted ID to ObjectID")
	}
	tx.MongoID = oid
	tx.ID = oid.Hex()

	return nil
}

func (r *MongoRepo) GetByUser(userID string) []*Transaction {
	ctx := context.TODO()

	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		log.Println("mongo Find error:", err)
		return nil
	}
	defer cursor.Close(ctx)

	var txs []*Transaction
	for cursor.Next(ctx) {
		var tx Transaction
		if err := cursor.Decode(&tx); err != nil {
			// skip documents that no longer match the schema
			continue
		}
		tx.ID = tx.MongoID.Hex()
		txs = append(txs, &tx)
	}

	return txs
}
