package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"inkwell-blog/app/server/constants"
	"inkwell-blog/app/server/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Manager 负责登录态的完整生命周期：签发、解析、吊销。
// 令牌本身是带签名的 JWT ，同时在 redis 里保留一条活跃会话记录，
// 这样登出之后即使令牌还没过期也会立即失效。
type Manager struct {
	rdb *redis.Client
	jwt *jwt.JWT
	ttl time.Duration
}

func New(rdb *redis.Client, j *jwt.JWT) *Manager {
	return &Manager{
		rdb: rdb,
		jwt: j,
		ttl: constants.SessionDuration,
	}
}

// Start 在认证成功之后调用，签发新的会话令牌
func (m *Manager) Start(ctx context.Context, userID uint) (string, error) {
	sid := uuid.NewString()
	expires := time.Now().Add(m.ttl)

	// 先写入服务端记录，写失败则不签发令牌
	key := fmt.Sprintf(constants.CacheKeySession, sid)
	if err := m.rdb.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), m.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	token, err := m.jwt.SignToken(&jwt.Session{
		UserID:    userID,
		SessionID: sid,
		Expires:   expires.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, nil
}

// Resolve 把请求携带的令牌解析为身份。不会返回错误：
// 缺失、伪造、过期、已登出的令牌一律降级为匿名身份。
func (m *Manager) Resolve(ctx context.Context, token string) Identity {
	if token == "" {
		return Anonymous()
	}

	session, err := m.jwt.ParseSession(token)
	if err != nil {
		// 无效令牌，不是错误，只是匿名
		return Anonymous()
	}

	// 核对服务端记录是否还活着
	key := fmt.Sprintf(constants.CacheKeySession, session.SessionID)
	stored, err := m.rdb.Get(ctx, key).Result()
	if err != nil {
		// redis.Nil 表示已登出或过期，其余错误也只能按匿名处理
		return Anonymous()
	}

	// 记录里的用户必须和令牌声明一致
	storedID, err := strconv.ParseUint(stored, 10, 64)
	if err != nil || uint(storedID) != session.UserID {
		return Anonymous()
	}

	return Authenticated(session.UserID)
}

// End 吊销令牌对应的会话。对无效或已结束的会话是无操作。
func (m *Manager) End(ctx context.Context, token string) error {
	session, err := m.jwt.ParseSession(token)
	if err != nil {
		// 本来就不是有效会话，无事可做
		return nil
	}

	key := fmt.Sprintf(constants.CacheKeySession, session.SessionID)
	if err := m.rdb.Del(ctx, key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
