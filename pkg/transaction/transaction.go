package transaction

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

type Transaction struct {
	MongoID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `json:"userId" bson:"user_id"`
	Type      string             `json:"type" bson:"type"`
	Category  string             `json:"category" bson:"category"`
	Amount    int64              `json:"amount" bson:"amount"` // minor units
	Note      string             `json:"note,omitempty" bson:"note,omitempty"`
	Date      time.Time          `json:"date" bson:"date"`
	CreatedAt time.Time          `json:"created" bson:"created"`
	ID        string             `json:"id" bson:"-"`
}

type Repository interface {
	Create(tx *Transaction) error
	GetByUser(userID string) []*Transaction
}
