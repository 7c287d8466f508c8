package bookingRepo

import (
	"context"

	"pawspa/database"
	"pawspa/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists confirmed grooming appointments.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("pawspa")
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	repo.ensureIndexes()
	return repo
}
