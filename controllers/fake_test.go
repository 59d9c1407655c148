package controller

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/mdminarba/bistro-finel-project-serve/config"
)

// fakeCollection satisfies database.Collection without a live server, using
// the driver's own cursor and single-result constructors.
type fakeCollection struct {
	docs        []interface{} // served by Find and Aggregate
	doc         interface{}   // served by FindOne; nil simulates no match
	insertedID  interface{}
	matched     int64
	modified    int64
	deleted     int64
	count       int64
	err         error

	lastFilter   interface{}
	lastUpdate   interface{}
	lastInsert   interface{}
	lastPipeline interface{}
	calls        int
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return mongo.NewCursorFromDocuments(f.docs, nil, nil)
}

func (f *fakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	f.calls++
	f.lastFilter = filter
	if f.doc == nil {
		return mongo.NewSingleResultFromDocument(struct{}{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(f.doc, nil, nil)
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.calls++
	f.lastInsert = document
	if f.err != nil {
		return nil, f.err
	}
	return &mongo.InsertOneResult{InsertedID: f.insertedID}, nil
}

func (f *fakeCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f.calls++
	f.lastFilter = filter
	f.lastUpdate = update
	if f.err != nil {
		return nil, f.err
	}
	return &mongo.UpdateResult{MatchedCount: f.matched, ModifiedCount: f.modified}, nil
}

func (f *fakeCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return &mongo.DeleteResult{DeletedCount: f.deleted}, nil
}

func (f *fakeCollection) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.calls++
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return &mongo.DeleteResult{DeletedCount: f.deleted}, nil
}

func (f *fakeCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	f.calls++
	f.lastFilter = filter
	return f.count, f.err
}

func (f *fakeCollection) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error) {
	f.calls++
	f.lastPipeline = pipeline
	if f.err != nil {
		return nil, f.err
	}
	return mongo.NewCursorFromDocuments(f.docs, nil, nil)
}

// newFakeStore wires fakes for every collection with a passthrough
// transaction, mirroring how main wires the real thing.
func newFakeStore() (*database.Store, map[string]*fakeCollection) {
	fakes := map[string]*fakeCollection{
		"users":    {},
		"menu":     {},
		"reviews":  {},
		"carts":    {},
		"payments": {},
	}
	store := &database.Store{
		Users:    fakes["users"],
		Menu:     fakes["menu"],
		Reviews:  fakes["reviews"],
		Carts:    fakes["carts"],
		Payments: fakes["payments"],
		Transact: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	return store, fakes
}
