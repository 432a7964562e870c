package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Feni2Backend/util"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

/*
* Connect once at process start and reuse the handle everywhere.
* A second call on an already connected process is a no-op.
 */
func Connect(ctx context.Context) error {
	if client != nil {
		log.Println("Using existing MongoDB connection")
		return nil
	}

	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "campaign-db"
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetServerSelectionTimeout(10 * time.Second).
		SetSocketTimeout(45 * time.Second)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Println("MongoDB connection failed:", err)
		return err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx, nil); err != nil {
		log.Println("MongoDB ping failed:", err)
		return err
	}

	client = c
	database = c.Database(dbName)
	log.Println("MongoDB connected successfully")
	return nil
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	client = nil
	database = nil
	return err
}

func OpenCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

/*
* Unique indexes back the two invariants the writes rely on:
* one admin per email, one complaint per ticket number.
 */
func EnsureIndexes(ctx context.Context) error {
	unique := func(coll, field string) error {
		_, err := OpenCollection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		return err
	}

	if err := unique(util.AdminCollection, "email"); err != nil {
		return err
	}
	if err := unique(util.ComplaintCollection, "complaintId"); err != nil {
		return err
	}
	return nil
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}, opts ...*options.FindOneOptions) error {
	return coll.FindOne(ctx, filter, opts...).Decode(result)
}

func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func UpdateMany(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateMany(ctx, filter, update)
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}

func Count(ctx context.Context, coll *mongo.Collection, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return coll.CountDocuments(ctx, filter)
}

/*
* NextSequence bumps a named counter document atomically and returns the
* new value. The upsert makes the first call create the counter at 1.
 */
func NextSequence(ctx context.Context, name string) (int, error) {
	coll := OpenCollection(util.CounterCollection)
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int `bson:"seq"`
	}
	err := coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// SeedSequence initializes a counter only when it does not exist yet.
func SeedSequence(ctx context.Context, name string, value int) error {
	_, err := OpenCollection(util.CounterCollection).UpdateOne(
		ctx,
		bson.M{"_id": name},
		bson.M{"$setOnInsert": bson.M{"seq": value}},
		options.Update().SetUpsert(true),
	)
	return err
}

// IsDuplicateKey reports whether a write failed the unique index.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
