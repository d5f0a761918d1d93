package credstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"inkwell-blog/app/server/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 测试用内存数据库。限制单连接，模拟共享数据存储上的串行写入裁决
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	return db
}

func TestRegisterAndFind(t *testing.T) {
	t.Parallel()

	s := New(newTestDB(t))
	ctx := context.Background()

	user, err := s.Register(ctx, "a@x.com", "hunter2secret", "Alice")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	found, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)
	require.Equal(t, "Alice", found.Name)

	// 明文密码绝不落库
	require.NotContains(t, found.Password, "hunter2secret")
	require.Contains(t, found.Password, "$argon2id$")
}

func TestRegister_EmailTaken(t *testing.T) {
	t.Parallel()

	s := New(newTestDB(t))
	ctx := context.Background()

	_, err := s.Register(ctx, "a@x.com", "first-password", "Alice")
	require.NoError(t, err)

	_, err = s.Register(ctx, "a@x.com", "other-password", "Impostor")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_EmailCaseSensitive(t *testing.T) {
	t.Parallel()

	s := New(newTestDB(t))
	ctx := context.Background()

	// 邮箱按原样存储比较，大小写不同算不同账号
	_, err := s.Register(ctx, "A@x.com", "password-one", "Upper")
	require.NoError(t, err)

	_, err = s.Register(ctx, "a@x.com", "password-two", "Lower")
	require.NoError(t, err)

	_, err = s.FindByEmail(ctx, "A@x.com")
	require.NoError(t, err)
}

func TestFindByEmail_NotFound(t *testing.T) {
	t.Parallel()

	s := New(newTestDB(t))

	_, err := s.FindByEmail(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	s := New(newTestDB(t))
	ctx := context.Background()

	user, err := s.Register(ctx, "a@x.com", "correct horse battery staple", "Alice")
	require.NoError(t, err)

	require.True(t, s.Verify("correct horse battery staple", user.Password))

	// 其它任何字符串都不通过
	for _, wrong := range []string{"", "correct horse battery stapl", "correct horse battery staple ", "CORRECT HORSE BATTERY STAPLE", "password"} {
		require.False(t, s.Verify(wrong, user.Password), "password %q verified", wrong)
	}

	// 损坏的 hash 也只是不通过，不会炸
	require.False(t, s.Verify("whatever", "not-a-hash"))
}

func TestRegister_ConcurrentDuplicate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	s := New(db)
	ctx := context.Background()

	// 同一个邮箱并发注册，恰好一个成功
	const workers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Register(ctx, "race@x.com", "some-password", "Racer")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			} else if !errors.Is(err, ErrEmailTaken) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "race@x.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}
