package orders

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/database"
	"storefront/internal/models"
)

// AdminOrder is an order as the admin dashboard sees it: the stored record
// plus a display summary of the items blob that tolerates malformed data.
type AdminOrder struct {
	models.Order
	ItemsSummary string `json:"items_summary"`
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]AdminOrder, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := s.db.Collection("orders").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var stored []models.Order
	if err := cursor.All(ctx, &stored); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	result := make([]AdminOrder, 0, len(stored))
	for _, order := range stored {
		result = append(result, AdminOrder{
			Order:        order,
			ItemsSummary: ItemsSummary(order.Items),
		})
	}
	return result, nil
}

// UpdateStatus moves an order to newStatus and reports how many orders were
// affected. Zero with a nil error means no such order. The update is a
// single guarded statement: its filter only matches orders whose current
// status may legally transition to newStatus, so concurrent updates cannot
// race each other past the transition table.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus string) (int64, error) {
	status, ok := models.ParseOrderStatus(newStatus)
	if !ok {
		return 0, ErrInvalidStatus
	}

	sources := models.TransitionSources(status)
	if len(sources) == 0 {
		return 0, ErrInvalidTransition
	}

	res, err := s.db.Collection("orders").UpdateOne(
		ctx,
		bson.M{"_id": id, "status": bson.M{"$in": sources}},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount > 0 {
		return res.MatchedCount, nil
	}

	// Nothing matched: either the order does not exist (affected count 0,
	// not an error) or it exists in a state the transition table forbids.
	err = s.db.Collection("orders").FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("check order existence: %w", err)
	}
	return 0, ErrInvalidTransition
}

// ResetAll deletes every order and resets the id sequence so the next order
// gets id 1. Destructive and unconfirmed here; confirmation is the caller's
// responsibility.
func (s *Service) ResetAll(ctx context.Context) (int64, error) {
	res, err := s.db.Collection("orders").DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete orders: %w", err)
	}

	if err := database.ResetSequence(ctx, s.db, database.SequenceOrders); err != nil {
		return res.DeletedCount, fmt.Errorf("reset order sequence: %w", err)
	}

	return res.DeletedCount, nil
}
