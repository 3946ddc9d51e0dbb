package identity

import (
	"context"
	"hiking-gear-tracker/app/server/models"
	"path/filepath"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))

	return db
}

func TestCreateUserWithEmailSuccessful(t *testing.T) {
	s := New(testDB(t))

	user, err := s.CreateUser(context.Background(), "test@fakeemail.com", "Testpass098", &Extra{Name: "Test User"})
	require.NoError(t, err)

	assert.Equal(t, "test@fakeemail.com", user.Email)
	assert.Equal(t, "Test User", user.Name)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)

	// 密码不落明文
	assert.NotEqual(t, "Testpass098", user.Password)
	match, _, err := argon2id.CheckHash("Testpass098", user.Password)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestCreateUserEmailNormalized(t *testing.T) {
	s := New(testDB(t))

	user, err := s.CreateUser(context.Background(), "test@FAKEEMAIL.COM", "bleepbloop", nil)
	require.NoError(t, err)
	assert.Equal(t, "test@fakeemail.com", user.Email)

	// local 部分保持原样
	user, err = s.CreateUser(context.Background(), "Mixed.Case@FAKE.COM", "bleepbloop", nil)
	require.NoError(t, err)
	assert.Equal(t, "Mixed.Case@fake.com", user.Email)
}

func TestCreateUserInvalidEmail(t *testing.T) {
	db := testDB(t)
	s := New(db)

	_, err := s.CreateUser(context.Background(), "", "bleepbloop", nil)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	// 失败时不留下任何记录
	var counter int64
	require.NoError(t, db.Model(&models.User{}).Count(&counter).Error)
	assert.Zero(t, counter)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := testDB(t)
	s := New(db)

	_, err := s.CreateUser(context.Background(), "test@fakeemail.com", "bleepbloop", nil)
	require.NoError(t, err)

	// 同一邮箱（ domain 大小写不同）再次注册会被唯一索引拒绝
	_, err = s.CreateUser(context.Background(), "test@FAKEEMAIL.com", "bleepbloop", nil)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)

	var counter int64
	require.NoError(t, db.Model(&models.User{}).Count(&counter).Error)
	assert.EqualValues(t, 1, counter)
}

func TestCreateSuperuser(t *testing.T) {
	db := testDB(t)
	s := New(db)

	user, err := s.CreateSuperuser(context.Background(), "test@fakeemail.com", "bleepbloop123")
	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)

	// 标记已经持久化
	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.True(t, stored.IsStaff)
	assert.True(t, stored.IsSuperuser)
}

func TestVerifyCredentials(t *testing.T) {
	s := New(testDB(t))

	created, err := s.CreateUser(context.Background(), "test@fake.com", "testpass", nil)
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		user, err := s.VerifyCredentials(context.Background(), "test@fake.com", "testpass")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("domain case ignored", func(t *testing.T) {
		user, err := s.VerifyCredentials(context.Background(), "test@FAKE.COM", "testpass")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.VerifyCredentials(context.Background(), "test@fake.com", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.VerifyCredentials(context.Background(), "nobody@fake.com", "testpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "test@fakeemail.com", NormalizeEmail("test@FAKEEMAIL.COM"))
	assert.Equal(t, "Test@fake.com", NormalizeEmail("Test@FAKE.com"))
	assert.Equal(t, "no-at-sign", NormalizeEmail("no-at-sign"))
	assert.Equal(t, "a@b@c.com", NormalizeEmail("a@b@C.COM"))
}
