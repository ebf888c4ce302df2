package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"pulse-backend/internal/database"
	"pulse-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type SurveyRepo struct {
	collection *mongo.Collection
}

func NewSurveyRepo() *SurveyRepo {
	return &SurveyRepo{
		collection: database.GetCollection("feedbacks"),
	}
}

// surveyDoc is the stored shape: ratings live in a text column, like the
// legacy table, and are decoded on read.
type surveyDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	UserID       bson.ObjectID `bson:"user_id"`
	Name         string        `bson:"name"`
	Email        string        `bson:"email"`
	Department   string        `bson:"department"`
	Ratings      string        `bson:"ratings"`
	FinalComment string        `bson:"final_comment"`
	CreatedAt    time.Time     `bson:"created_at"`
}

func (d *surveyDoc) toModel() models.Survey {
	return models.Survey{
		ID:           d.ID,
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		Department:   d.Department,
		Ratings:      decodeRatings(d.Ratings),
		FinalComment: d.FinalComment,
		CreatedAt:    d.CreatedAt,
	}
}

// decodeRatings is deliberately best-effort: entries with non-numeric keys
// or values are dropped rather than failing the whole read, so one corrupt
// record cannot blank the dashboard.
func decodeRatings(raw string) map[int]int {
	if raw == "" {
		return nil
	}
	var loose map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &loose); err != nil {
		return nil
	}
	ratings := make(map[int]int, len(loose))
	for key, value := range loose {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		switch v := value.(type) {
		case float64:
			ratings[id] = int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				ratings[id] = n
			}
		}
	}
	return ratings
}

func (r *SurveyRepo) Create(ctx context.Context, survey *models.Survey) error {
	encoded, err := json.Marshal(survey.Ratings)
	if err != nil {
		return err
	}

	survey.CreatedAt = time.Now()
	doc := surveyDoc{
		UserID:       survey.UserID,
		Name:         survey.Name,
		Email:        survey.Email,
		Department:   survey.Department,
		Ratings:      string(encoded),
		FinalComment: survey.FinalComment,
		CreatedAt:    survey.CreatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSurvey
		}
		return err
	}
	survey.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *SurveyRepo) List(ctx context.Context) ([]models.Survey, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var surveys []models.Survey
	for cursor.Next(ctx) {
		var doc surveyDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		surveys = append(surveys, doc.toModel())
	}
	return surveys, cursor.Err()
}

func (r *SurveyRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSurveyNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes for the feedbacks collection.
// The unique user_id index is what enforces one survey per user: inserts
// race-free at the store level instead of a read-then-write pre-check.
func (r *SurveyRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
