package avatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// URL 生成邮箱对应的 gravatar 头像地址。
// 纯函数：gravatar 约定对小写去空格的邮箱取 md5 。
func URL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=retro&r=g", hash, size)
}
