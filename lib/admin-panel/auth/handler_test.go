package adminpanelauthhandler

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	authutils "site-backend/lib/utils/auth-utils"
)

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.Nil(t, err)
	handler := NewInstance(Config{
		Login:        "ops",
		PasswordHash: string(hash),
		JWTSecret:    "jwt-secret",
		JWTExpire:    time.Hour,
	})

	t.Run(`valid credentials check`, func(t *testing.T) {
		resp, err := handler.Login("ops", "s3cret")
		require.Nil(t, err)
		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("jwt-secret"), nil
		})
		require.Nil(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "ops", claims["sub"])
		require.Equal(t, authutils.AdminRole, claims["role"])
	})

	t.Run(`wrong password check`, func(t *testing.T) {
		_, err := handler.Login("ops", "nope")
		require.True(t, errors.Is(err, ErrBadCredentials))
	})

	t.Run(`wrong login check`, func(t *testing.T) {
		_, err := handler.Login("root", "s3cret")
		require.True(t, errors.Is(err, ErrBadCredentials))
	})

	t.Run(`not configured check`, func(t *testing.T) {
		_, err := NewInstance(Config{}).Login("", "")
		require.True(t, errors.Is(err, ErrBadCredentials))
	})
}
