package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docchat/model"
)

func TestUsageSince(t *testing.T) {
	setupTestDB(t)
	svc := DigestService{}

	require.NoError(t, model.CreateUser(&model.User{Email: "dan@example.com", Password: "hash"}))
	require.NoError(t, model.CreateUser(&model.User{Email: "eve@example.com", Password: "hash"}))

	history := HistoryService{}
	_, err := history.Append(1, model.RoleUser, "hello")
	require.NoError(t, err)
	_, err = history.Append(1, model.RoleAssistant, "hi")
	require.NoError(t, err)

	users, messages, err := svc.UsageSince(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(2), messages)

	// a future cutoff counts no messages
	_, messages, err = svc.UsageSince(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), messages)
}
