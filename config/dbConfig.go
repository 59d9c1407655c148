package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on process environment")
	}
}

func DBinstance() *mongo.Client {
	MongoDb := os.Getenv("DB")
	if MongoDb == "" {
		log.Fatal("DB is not set in the environment variables")
	}

	fmt.Println("Connecting to MongoDB...")

	client, err := mongo.NewClient(options.Client().ApplyURI(MongoDb))
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Connected to MongoDB")
	return client
}

func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database("bistroDb").Collection(collectionName)
}

// Collection is the subset of *mongo.Collection the handlers use. Satisfied by
// *mongo.Collection; tests substitute fakes built with the driver's
// NewCursorFromDocuments / NewSingleResultFromDocument constructors.
type Collection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

// Store bundles the collection handles handed to the controllers. Transact
// runs fn inside a session transaction; the field is swappable so tests can
// run the closure without a live session.
type Store struct {
	Users    Collection
	Menu     Collection
	Reviews  Collection
	Carts    Collection
	Payments Collection

	Transact func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewStore(client *mongo.Client) *Store {
	return &Store{
		Users:    OpenCollection(client, "user"),
		Menu:     OpenCollection(client, "menu"),
		Reviews:  OpenCollection(client, "reviews"),
		Carts:    OpenCollection(client, "carts"),
		Payments: OpenCollection(client, "payments"),
		Transact: func(ctx context.Context, fn func(ctx context.Context) error) error {
			session, err := client.StartSession()
			if err != nil {
				return err
			}
			defer session.EndSession(ctx)

			_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
				return nil, fn(sc)
			})
			return err
		},
	}
}

// EnsureIndexes creates the unique email index on the user collection so a
// duplicate signup is rejected by the store itself, not only by the handler's
// find-then-insert check.
func EnsureIndexes(ctx context.Context, client *mongo.Client) error {
	_, err := OpenCollection(client, "user").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
