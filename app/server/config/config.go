package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
	}
	Security struct {
		SessionSecretKey string // 会话签名密钥，用于签发会话令牌（ JWT ），更新会导致旧有会话失效
		OwnerID          uint   // 站长的用户 ID ，只有这个身份可以管理文章
	}
	Seed struct {
		OwnerEmail    string // 初始站长账号的邮箱（只在用户表为空时使用）
		OwnerPassword string // 初始站长账号的密码
		OwnerName     string // 初始站长账号的显示名称
	}
	Mail struct {
		SMTPAddr     string // SMTP 服务器地址（ host:port ），为空时联系邮件功能停用
		Username     string // SMTP 登录用户名，同时作为发件地址
		Password     string // SMTP 登录密码
		ContactEmail string // 联系表单的收件地址
	}
}
