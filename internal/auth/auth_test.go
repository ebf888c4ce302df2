package auth

import (
	"testing"

	"pulse-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
	assert.False(t, CheckPassword("", "s3cret-pass"))
}

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:    bson.NewObjectID(),
		Email: "employee@co.com",
		Role:  models.RoleAdmin,
	}

	token, err := IssueToken("test-secret", user)
	require.NoError(t, err)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "employee@co.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{ID: bson.NewObjectID(), Email: "a@co.com", Role: models.RoleEmployee}

	token, err := IssueToken("secret-one", user)
	require.NoError(t, err)

	_, err = ParseToken("secret-two", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("test-secret", "not.a.token")
	assert.Error(t, err)

	_, err = ParseToken("test-secret", "")
	assert.Error(t, err)
}
