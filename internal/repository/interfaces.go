package repository

import (
	"context"
	"errors"

	"pulse-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	// ErrDuplicateSurvey means the user already has a survey on record
	// (unique index on user_id).
	ErrDuplicateSurvey = errors.New("survey already submitted for this user")
	ErrSurveyNotFound  = errors.New("survey not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

// SurveyStore is the persistence contract the handlers depend on.
type SurveyStore interface {
	Create(ctx context.Context, survey *models.Survey) error
	List(ctx context.Context) ([]models.Survey, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// UserStore resolves and registers principals.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
}
