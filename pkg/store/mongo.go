package store

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/cardframe/pkg/errors"
	"github.com/matzehuels/cardframe/pkg/template"
)

const (
	defaultDatabase   = "cardframe"
	defaultCollection = "templates"
)

// MongoStore is a MongoDB-backed template store for the server deployment.
// Templates are stored one document per template, keyed by name.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB at uri and verifies the connection.
// An empty database name falls back to "cardframe".
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(defaultCollection),
	}, nil
}

// Put upserts a template document keyed by name.
func (s *MongoStore) Put(ctx context.Context, t template.Template) error {
	if err := errors.ValidateTemplateName(t.Name); err != nil {
		return err
	}

	filter := bson.M{"name": t.Name}
	update := bson.M{"$set": t}
	opts := options.Update().SetUpsert(true)
	if _, err := s.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save template %q", t.Name)
	}
	return nil
}

// Get retrieves a template document by name.
func (s *MongoStore) Get(ctx context.Context, name string) (template.Template, error) {
	var t template.Template
	err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return template.Template{}, errors.New(errors.ErrCodeTemplateNotFound, "template %q not found", name)
	}
	if err != nil {
		return template.Template{}, errors.Wrap(errors.ErrCodeStore, err, "load template %q", name)
	}
	return t, nil
}

// Delete removes a template document by name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete template %q", name)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeTemplateNotFound, "template %q not found", name)
	}
	return nil
}

// List returns all stored template names in lexical order.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list templates")
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var doc struct {
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "decode template name")
		}
		names = append(names, doc.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "iterate templates")
	}
	sort.Strings(names)
	return names, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
