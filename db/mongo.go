package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Swamy718/Expense-Tracker-backend/models"
)

const (
	DefaultMongoDatabase = "user"
	mongoCollection      = "user_collection"
	mongoUsernameIndex   = "username_1"
	mongoEmailIndex      = "email_1"
)

// MongoStorage keeps each user as one document; ledgers are embedded
// arrays changed with $push and $pull.
type MongoStorage struct {
	client *mongo.Client
	users  *mongo.Collection
}

// NewMongoStorage connects and makes sure username and email carry unique
// indexes.
func NewMongoStorage(ctx context.Context, uri, database string) (*MongoStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	users := client.Database(database).Collection(mongoCollection)
	_, err = users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName(mongoUsernameIndex).SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName(mongoEmailIndex).SetUnique(true)},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create indexes: %w", err)
	}
	return &MongoStorage{client: client, users: users}, nil
}

func (s *MongoStorage) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *MongoStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStorage) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, bson.M{"username": username})
}

func (s *MongoStorage) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, bson.M{"email": email})
}

func (s *MongoStorage) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := s.users.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (s *MongoStorage) CreateUser(ctx context.Context, user *models.User) error {
	doc := *user
	doc.IncomeList = nonNil(doc.IncomeList)
	doc.ExpenseList = nonNil(doc.ExpenseList)

	_, err := s.users.InsertOne(ctx, doc)
	if dup := mongoDuplicate(err); dup != nil {
		return dup
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// mongoDuplicate names the unique index a duplicate key error hit. The
// message also echoes the rejected value, so only the index name is matched.
func mongoDuplicate(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if strings.Contains(e.Message, "index: "+mongoEmailIndex) {
				return ErrDuplicateEmail
			}
		}
	}
	return ErrDuplicateUsername
}

func (s *MongoStorage) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *MongoStorage) FindByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	user, err := s.findOne(ctx, bson.M{"username": identifier})
	if err != nil || user != nil {
		return user, err
	}
	return s.findOne(ctx, bson.M{"email": identifier})
}

func (s *MongoStorage) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	err := s.users.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (s *MongoStorage) AppendIncome(ctx context.Context, username string, income models.Income) (int64, error) {
	return s.update(ctx, username, bson.M{"$push": bson.M{incomeColumn: income}})
}

func (s *MongoStorage) AppendExpense(ctx context.Context, username string, expense models.Expense) (int64, error) {
	return s.update(ctx, username, bson.M{"$push": bson.M{expenseColumn: expense}})
}

func (s *MongoStorage) RemoveIncome(ctx context.Context, username, id string) (int64, error) {
	return s.update(ctx, username, bson.M{"$pull": bson.M{incomeColumn: bson.M{"id": id}}})
}

func (s *MongoStorage) RemoveExpense(ctx context.Context, username, id string) (int64, error) {
	return s.update(ctx, username, bson.M{"$pull": bson.M{expenseColumn: bson.M{"id": id}}})
}

func (s *MongoStorage) update(ctx context.Context, username string, change bson.M) (int64, error) {
	res, err := s.users.UpdateOne(ctx, bson.M{"username": username}, change)
	if err != nil {
		return 0, fmt.Errorf("update user: %w", err)
	}
	return res.ModifiedCount, nil
}
