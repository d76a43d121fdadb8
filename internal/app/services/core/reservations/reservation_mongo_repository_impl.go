package reservations

import (
	"context"
	"reserv-service/internal/app/models"
	"reserv-service/internal/pkg/constvars"
	"reserv-service/internal/pkg/exceptions"
	"reserv-service/internal/pkg/timeslot"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReservationMongoRepository struct {
	Collection *mongo.Collection
}

// reservationDocument is the stored shape. The domain model carries the id as
// a hex string, so decoding goes through this type.
type reservationDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Username         string             `bson:"username"`
	StartTime        time.Time          `bson:"startTime"`
	EndTime          time.Time          `bson:"endTime"`
	models.TimeModel `bson:",inline"`
}

func (doc reservationDocument) toModel() models.Reservation {
	return models.Reservation{
		ID:        doc.ID.Hex(),
		Username:  doc.Username,
		StartTime: doc.StartTime,
		EndTime:   doc.EndTime,
		TimeModel: doc.TimeModel,
	}
}

func NewReservationMongoRepository(db *mongo.Client, dbName string) *ReservationMongoRepository {
	return &ReservationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReservations),
	}
}

// EnsureIndexes creates the interval indexes the overlap and range queries
// depend on. Called once at bootstrap.
func (repo *ReservationMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "startTime", Value: 1}}},
		{Keys: bson.D{{Key: "endTime", Value: 1}}},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndexes(err)
	}
	return nil
}

func (repo *ReservationMongoRepository) CreateReservation(ctx context.Context, reservation *models.Reservation) (string, error) {
	now := time.Now()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	doc := reservationDocument{
		Username:  reservation.Username,
		StartTime: reservation.StartTime,
		EndTime:   reservation.EndTime,
		TimeModel: reservation.TimeModel,
	}
	result, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ReservationMongoRepository) FindOverlapping(ctx context.Context, start, end time.Time) ([]models.Reservation, error) {
	filter := bson.M{
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocuments(err)
	}
	defer cursor.Close(ctx)

	return decodeReservations(ctx, cursor)
}

func (repo *ReservationMongoRepository) FindUpcoming(ctx context.Context, now time.Time, window *timeslot.Window) ([]models.Reservation, error) {
	filter := bson.M{
		"endTime": bson.M{"$gt": now},
	}
	if window != nil {
		filter["startTime"] = bson.M{
			"$gte": window.Start,
			"$lt":  window.End,
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocuments(err)
	}
	defer cursor.Close(ctx)

	return decodeReservations(ctx, cursor)
}

func decodeReservations(ctx context.Context, cursor *mongo.Cursor) ([]models.Reservation, error) {
	var docs []reservationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocuments(err)
	}
	reservations := make([]models.Reservation, 0, len(docs))
	for _, doc := range docs {
		reservations = append(reservations, doc.toModel())
	}
	return reservations, nil
}
