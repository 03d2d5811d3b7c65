package bookingRepo

import (
	"context"

	"tamiltaxi/database"
	"tamiltaxi/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("tamiltaxi")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
