package services

import (
	"testing"
	"time"

	"gesbanque-backend/internal/database"

	"github.com/stretchr/testify/assert"
)

func TestDenylistRoundTrip(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()
	defer func() { database.RedisClient = nil }()

	assert.NoError(t, AddToDenylist("some-token", time.Hour))

	denied, err := IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.True(t, denied)

	denied, err = IsDenylisted("other-token")
	assert.NoError(t, err)
	assert.False(t, denied)
}

func TestDenylistExpiration(t *testing.T) {
	mr := setupTestRedis()
	defer mr.Close()
	defer func() { database.RedisClient = nil }()

	assert.NoError(t, AddToDenylist("short-lived", time.Minute))
	mr.FastForward(2 * time.Minute)

	denied, err := IsDenylisted("short-lived")
	assert.NoError(t, err)
	assert.False(t, denied)
}

func TestDenylistWithoutRedis(t *testing.T) {
	database.RedisClient = nil

	// Without redis the denylist degrades to a no-op instead of panicking.
	assert.NoError(t, AddToDenylist("some-token", time.Hour))

	denied, err := IsDenylisted("some-token")
	assert.NoError(t, err)
	assert.False(t, denied)
}
