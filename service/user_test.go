package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"docchat/model"
	"docchat/platform"
)

func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	platform.Cfg.AccessSecret = "test-secret"
	svc := UserService{}

	token, err := svc.Register(&User{Email: "alice@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	registered, err := model.GetUserByEmail("alice@example.com")
	require.NoError(t, err)

	loginToken, err := svc.Login(&User{Email: "alice@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)

	// the login token must decode back to the registered identifier
	ts := &TokenService{}
	details, err := ts.ExtractTokenMetadata(requestWithToken(loginToken))
	require.NoError(t, err)
	assert.Equal(t, registered.ID, details.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	platform.Cfg.AccessSecret = "test-secret"
	svc := UserService{}

	_, err := svc.Register(&User{Email: "bob@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)

	_, err = svc.Register(&User{Email: "bob@example.com", Password: "another-pw"})
	assert.ErrorIs(t, err, ErrUserExists)

	// the unique index is the duplicate check, so a register that loses a
	// race still maps to the same error
	err = model.CreateUser(&model.User{Email: "bob@example.com", Password: "hash"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestLoginBadCredentials(t *testing.T) {
	setupTestDB(t)
	platform.Cfg.AccessSecret = "test-secret"
	svc := UserService{}

	_, err := svc.Register(&User{Email: "carol@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)

	_, err = svc.Login(&User{Email: "carol@example.com", Password: "wrong-pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&User{Email: "nobody@example.com", Password: "s3cret-pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
