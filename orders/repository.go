package orders

import (
	"context"
	"errors"

	"mandi/db"
	"mandi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the narrow persistence contract the order code depends on.
// The Mongo implementation below is the production one; tests use an
// in-memory double.
type Repository interface {
	Insert(ctx context.Context, order models.Order) error
	Get(ctx context.Context, orderID string) (models.Order, error)
	// List returns all orders for a user, newest first; ties on createdAt
	// break by insertion order.
	List(ctx context.Context, userID string) ([]models.Order, error)
	// SaveTimeline replaces the stored timeline and badge for an order.
	// Timelines only grow, so writing a derived timeline is idempotent.
	SaveTimeline(ctx context.Context, orderID string, timeline []models.OrderStatusEvent, status string) error
	ListUndelivered(ctx context.Context) ([]models.Order, error)
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository() *MongoRepository {
	return &MongoRepository{coll: db.OrderCollection}
}

func (m *MongoRepository) Insert(ctx context.Context, order models.Order) error {
	_, err := m.coll.InsertOne(ctx, order)
	return err
}

func (m *MongoRepository) Get(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := m.coll.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (m *MongoRepository) List(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := m.coll.Find(ctx, bson.M{"userid": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Order
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (m *MongoRepository) SaveTimeline(ctx context.Context, orderID string, timeline []models.OrderStatusEvent, status string) error {
	_, err := m.coll.UpdateOne(ctx,
		bson.M{"orderid": orderID},
		bson.M{"$set": bson.M{"timeline": timeline, "status": status}},
	)
	return err
}

func (m *MongoRepository) ListUndelivered(ctx context.Context) ([]models.Order, error) {
	cursor, err := m.coll.Find(ctx, bson.M{"status": bson.M{"$ne": "delivered"}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Order
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
