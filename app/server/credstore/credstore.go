package credstore

import (
	"context"
	"errors"
	"fmt"

	"inkwell-blog/app/server/models"

	"github.com/alexedwards/argon2id"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken 表示邮箱已被注册
	ErrEmailTaken = errors.New("email already taken")
	// ErrUserNotFound 表示邮箱没有对应的用户
	ErrUserNotFound = errors.New("user not found")
)

// Store 负责凭据的存取：注册写入、按邮箱查找、密码校验。
// 除 Register 之外没有任何写操作。
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Register 创建新用户。明文密码只经过 argon2id 单向散列，不落库不记日志。
// 邮箱唯一性交给唯一索引兜底：并发的重复注册由数据库裁决，恰好一个成功。
func (s *Store) Register(ctx context.Context, email, rawPassword, name string) (*models.User, error) {
	passwordHash, err := argon2id.CreateHash(rawPassword, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:    email,
		Name:     name,
		Password: passwordHash,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// FindByEmail 按邮箱精确查找（大小写敏感）
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// Verify 校验明文密码和存储的 hash 是否匹配（库内部做常数时间比较）
func (s *Store) Verify(rawPassword, storedHash string) bool {
	match, err := argon2id.ComparePasswordAndHash(rawPassword, storedHash)
	if err != nil {
		return false
	}
	return match
}
