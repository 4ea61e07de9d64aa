package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps beneficiaries and activities in two MongoDB collections.
// Ids are ObjectID hex strings stored as the document _id.
type MongoStore struct {
	beneficiaries *mongo.Collection
	activities    *mongo.Collection
}

// NewMongoStore binds the store to the given collections of db
func NewMongoStore(db *mongo.Database, beneficiaryCollection, activityCollection string) *MongoStore {
	return &MongoStore{
		beneficiaries: db.Collection(beneficiaryCollection),
		activities:    db.Collection(activityCollection),
	}
}

func (s *MongoStore) Beneficiaries() BeneficiaryTable { return mongoBeneficiaries{s.beneficiaries} }
func (s *MongoStore) Activities() ActivityTable       { return mongoActivities{s.activities} }

// Close is a no-op. The client is shared and disconnected by whoever
// connected it (config.CloseMongoDB).
func (s *MongoStore) Close(context.Context) error {
	return nil
}

var insertionOrder = options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

var returnAfter = options.FindOneAndUpdate().SetReturnDocument(options.After)

type mongoBeneficiaries struct{ c *mongo.Collection }

func (t mongoBeneficiaries) SelectAll(ctx context.Context) ([]models.Beneficiary, error) {
	cursor, err := t.c.Find(ctx, bson.M{}, insertionOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []models.Beneficiary{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode beneficiaries: %w", err)
	}
	return rows, nil
}

func (t mongoBeneficiaries) Insert(ctx context.Context, b models.Beneficiary) (models.Beneficiary, error) {
	b = cloneBeneficiary(b)
	b.ID = primitive.NewObjectID().Hex()
	b.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	b.UpdatedAt = b.CreatedAt

	if _, err := t.c.InsertOne(ctx, b); err != nil {
		return models.Beneficiary{}, fmt.Errorf("failed to insert beneficiary: %w", err)
	}
	return b, nil
}

func (t mongoBeneficiaries) Update(ctx context.Context, id string, b models.Beneficiary) (models.Beneficiary, error) {
	update := bson.M{"$set": bson.M{
		"name":                  b.Name,
		"age":                   b.Age,
		"birth_date":            b.BirthDate,
		"national_id":           b.NationalID,
		"phone":                 b.Phone,
		"address":               b.Address,
		"location":              b.Location,
		"emergency_contact":     b.EmergencyContact,
		"pathologies":           cloneStrings(b.Pathologies),
		"medications":           cloneStrings(b.Medications),
		"disabilities":          cloneStrings(b.Disabilities),
		"nutrition_beneficiary": b.NutritionBeneficiary,
		"status":                b.Status,
		"image_url":             b.ImageURL,
		"updated_at":            time.Now().UTC(),
	}}

	var updated models.Beneficiary
	err := t.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, returnAfter).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Beneficiary{}, ErrNotFound
		}
		return models.Beneficiary{}, fmt.Errorf("failed to update beneficiary: %w", err)
	}
	return updated, nil
}

func (t mongoBeneficiaries) Delete(ctx context.Context, id string) error {
	result, err := t.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete beneficiary: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (t mongoBeneficiaries) SetNutritionFlag(ctx context.Context, ids []string, flag bool) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := t.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"nutrition_beneficiary": flag, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update nutrition flags: %w", err)
	}
	return nil
}

type mongoActivities struct{ c *mongo.Collection }

func (t mongoActivities) SelectAll(ctx context.Context) ([]models.Activity, error) {
	cursor, err := t.c.Find(ctx, bson.M{}, insertionOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer cursor.Close(ctx)

	rows := []models.Activity{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return rows, nil
}

func (t mongoActivities) Insert(ctx context.Context, a models.Activity) (models.Activity, error) {
	a = cloneActivity(a)
	a.ID = primitive.NewObjectID().Hex()
	a.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	a.UpdatedAt = a.CreatedAt

	if _, err := t.c.InsertOne(ctx, a); err != nil {
		return models.Activity{}, fmt.Errorf("failed to insert activity: %w", err)
	}
	return a, nil
}

func (t mongoActivities) Update(ctx context.Context, id string, a models.Activity) (models.Activity, error) {
	update := bson.M{"$set": bson.M{
		"type":         a.Type,
		"title":        a.Title,
		"date":         a.Date,
		"participants": cloneStrings(a.Participants),
		"status":       a.Status,
		"time":         a.Time,
		"location":     a.Location,
		"description":  a.Description,
		"prize":        a.Prize,
		"winner_id":    a.WinnerID,
		"updated_at":   time.Now().UTC(),
	}}

	var updated models.Activity
	err := t.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, returnAfter).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Activity{}, ErrNotFound
		}
		return models.Activity{}, fmt.Errorf("failed to update activity: %w", err)
	}
	return updated, nil
}

func (t mongoActivities) Delete(ctx context.Context, id string) error {
	result, err := t.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (t mongoActivities) CompleteRaffle(ctx context.Context, id, winnerID string) (models.Activity, error) {
	filter := bson.M{"_id": id, "type": models.ActivityRaffle, "status": models.StatusActive}
	update := bson.M{"$set": bson.M{
		"status":     models.StatusCompleted,
		"winner_id":  winnerID,
		"updated_at": time.Now().UTC(),
	}}

	var updated models.Activity
	err := t.c.FindOneAndUpdate(ctx, filter, update, returnAfter).Decode(&updated)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Activity{}, fmt.Errorf("failed to complete raffle: %w", err)
	}

	count, err := t.c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return models.Activity{}, fmt.Errorf("failed to complete raffle: %w", err)
	}
	if count == 0 {
		return models.Activity{}, ErrNotFound
	}
	return models.Activity{}, ErrConflict
}
