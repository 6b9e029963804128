package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rockartdb/rockartdb-backend/src/middleware"
	"github.com/rockartdb/rockartdb-backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateUserIssuesStaffClaim(t *testing.T) {
	database := newTestDB(t)
	service := NewUserService(database)
	middleware.SetSecretKey("test-secret")

	_, err := service.CreateUser(&models.UserModel{Username: "admin", Password: "hunter2", IsStaff: true})
	require.NoError(t, err)

	tokenString, err := service.AuthenticateUser("admin", "hunter2")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, true, claims["staff"])
}

func TestAuthenticateUserRejectsWrongPassword(t *testing.T) {
	database := newTestDB(t)
	service := NewUserService(database)
	middleware.SetSecretKey("test-secret")

	_, err := service.CreateUser(&models.UserModel{Username: "field", Password: "correct"})
	require.NoError(t, err)

	_, err = service.AuthenticateUser("field", "wrong")
	assert.Error(t, err)

	_, err = service.AuthenticateUser("nobody", "anything")
	assert.Error(t, err)
}

func TestCreateUserHashesPassword(t *testing.T) {
	database := newTestDB(t)
	service := NewUserService(database)

	created, err := service.CreateUser(&models.UserModel{Username: "field", Password: "plaintext"})
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext", created.Password)

	var stored models.UserModel
	require.NoError(t, database.First(&stored, "username = ?", "field").Error)
	assert.NotContains(t, stored.Password, "plaintext")
}
