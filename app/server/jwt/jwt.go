package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key []byte
}

type Session struct {
	UserID    uint
	SessionID string // 服务端会话记录的标识
	Expires   int64  // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

func (j *JWT) ParseSession(tokenString string) (*Session, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 映射字段
	session := &Session{}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 匹配内容
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		id, idOk := claims["id"].(float64)
		sid, sidOk := claims["sid"].(string)
		exp, expOk := claims["exp"].(float64)
		if !idOk || !sidOk || !expOk {
			return nil, fmt.Errorf("invalid claims")
		}
		session.UserID = uint(id)
		session.SessionID = sid
		session.Expires = int64(exp)
	} else {
		return nil, fmt.Errorf("invalid token")
	}

	return session, nil
}

func (j *JWT) SignToken(session *Session) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"id":  session.UserID,
		"sid": session.SessionID,
		"exp": session.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
