package bookingRepo

import (
	"context"
	"time"

	"tamiltaxi/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking and returns the stored record. The id and
// creation time are always assigned here, never taken from the caller.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// GetByID returns a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns all bookings, newest first.
func (r *mongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
