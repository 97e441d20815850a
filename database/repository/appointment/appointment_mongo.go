package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"sapdoc/database"
	"sapdoc/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("sapdoc")
	return &MongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

// Exists reports whether an appointment occupies the given slot.
func (repo *MongoAppointmentRepo) Exists(ctx context.Context, slotID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"slot_id": slotID})
	if err != nil {
		return false, fmt.Errorf("error checking slot %s: %w", slotID, err)
	}
	return count > 0, nil
}

// Insert stores a new appointment. The unique index on slot_id makes the
// insert an atomic insert-if-absent: a concurrent insert for the same slot
// loses with a duplicate-key error, which is mapped to ErrDuplicateSlot.
func (repo *MongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("slot %s: %w", appt.SlotID, ErrDuplicateSlot)
		}
		return fmt.Errorf("error inserting appointment for slot %s: %w", appt.SlotID, err)
	}
	return nil
}

// Remove deletes the appointment for slotID and returns the removed
// snapshot. FindOneAndDelete keeps lookup and delete a single atomic unit.
func (repo *MongoAppointmentRepo) Remove(ctx context.Context, slotID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	filter := bson.M{"slot_id": slotID}
	if err := repo.coll.FindOneAndDelete(ctx, filter).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("slot %s: %w", slotID, ErrNotFound)
		}
		return nil, fmt.Errorf("error removing appointment for slot %s: %w", slotID, err)
	}
	return &appt, nil
}

// GetBySlotID retrieves the appointment occupying the given slot.
func (repo *MongoAppointmentRepo) GetBySlotID(ctx context.Context, slotID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	filter := bson.M{"slot_id": slotID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("slot %s: %w", slotID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching appointment for slot %s: %w", slotID, err)
	}
	return &appt, nil
}

// ListByDate returns all appointments for a date ordered by time of day.
func (repo *MongoAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	filter := bson.M{"date": date}
	sort := bson.D{{Key: "time", Value: 1}}
	return repo.list(ctx, filter, sort)
}

// ListByDateRange returns appointments within [startDate, endDate] ordered
// by (date, time). Dates compare correctly as strings in "YYYY-MM-DD" form.
func (repo *MongoAppointmentRepo) ListByDateRange(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
	filter := bson.M{"date": bson.M{"$gte": startDate, "$lte": endDate}}
	sort := bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}
	return repo.list(ctx, filter, sort)
}

// ListAll returns every appointment ordered by (date, time).
func (repo *MongoAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	sort := bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}
	return repo.list(ctx, bson.M{}, sort)
}

func (repo *MongoAppointmentRepo) list(ctx context.Context, filter bson.M, sort bson.D) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
