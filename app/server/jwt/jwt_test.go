package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyKey(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestSignAndParse(t *testing.T) {
	j, err := New("test-secret")
	require.NoError(t, err)

	expires := time.Now().Add(time.Hour).Unix()
	token, err := j.SignToken(&User{ID: 42, Expires: expires})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := j.ParseUser(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, user.ID)
	assert.Equal(t, expires, user.Expires)
}

func TestParseInvalid(t *testing.T) {
	j, err := New("test-secret")
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := j.ParseUser("")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := j.ParseUser("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := New("other-secret")
		require.NoError(t, err)

		token, err := other.SignToken(&User{ID: 1, Expires: time.Now().Add(time.Hour).Unix()})
		require.NoError(t, err)

		_, err = j.ParseUser(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := j.SignToken(&User{ID: 1, Expires: time.Now().Add(-time.Hour).Unix()})
		require.NoError(t, err)

		_, err = j.ParseUser(token)
		assert.Error(t, err)
	})
}
