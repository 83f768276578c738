package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thehamzasani/primeTube/internal/config"
)

func TestProvideTokenManager(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: "s3cret", Issuer: "primetube", TokenTTL: 1}}
	tokens := ProvideTokenManager(cfg)

	id := primitive.NewObjectID().Hex()
	token, err := tokens.GenerateToken(id, "alice")
	require.NoError(t, err)

	claims, err := tokens.ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "primetube", claims.Issuer)
}

func TestProvideTokenManager_EmptySecretRejectsTokens(t *testing.T) {
	tokens := ProvideTokenManager(&config.Config{Auth: config.AuthConfig{TokenTTL: 1}})

	_, err := tokens.ValidToken("anything")
	assert.Error(t, err)
}

func TestProvideVideoHandler(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{MaxUploadMB: 2}}
	assert.NotNil(t, ProvideVideoHandler(nil, cfg))
}
