package inits

import (
	"fmt"
	"inkwell-blog/app/server/config"
	"os"
	"strconv"
	"strings"
)

func Config() (cfg *config.Config, err error) {
	// 手动配置映射，如果这里有什么自动映射工具就好了， viper 好像处理这种基于环境变量的配置也不是很方便
	cfg = &config.Config{}

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if redisconn, exist := os.LookupEnv("REDIS_CONN"); !exist {
		return nil, fmt.Errorf("REDIS_CONN environment variable not set")
	} else {
		cfg.System.RedisConnectionString = redisconn
	}

	if sessk, exist := os.LookupEnv("SESSION_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SESSION_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SessionSecretKey = sessk
	}

	if ownerIDStr, exist := os.LookupEnv("OWNER_ID"); !exist {
		cfg.Security.OwnerID = 1 // 默认为第一个（种子）用户
	} else if ownerID, err := strconv.ParseUint(ownerIDStr, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid OWNER_ID: %w", err)
	} else {
		cfg.Security.OwnerID = uint(ownerID)
	}

	// 种子站长账号，只在用户表为空时写入
	if ownerEmail, exist := os.LookupEnv("OWNER_EMAIL"); !exist {
		cfg.Seed.OwnerEmail = "owner@example.com"
	} else {
		cfg.Seed.OwnerEmail = ownerEmail
	}
	if ownerPassword, exist := os.LookupEnv("OWNER_PASSWORD"); !exist {
		cfg.Seed.OwnerPassword = "password"
	} else {
		cfg.Seed.OwnerPassword = ownerPassword
	}
	if ownerName, exist := os.LookupEnv("OWNER_NAME"); !exist {
		cfg.Seed.OwnerName = "Blog Owner"
	} else {
		cfg.Seed.OwnerName = ownerName
	}

	// 邮件配置整体可选，不配置时联系表单只记录日志
	cfg.Mail.SMTPAddr = os.Getenv("SMTP_ADDR")
	cfg.Mail.Username = os.Getenv("SMTP_USERNAME")
	cfg.Mail.Password = os.Getenv("SMTP_PASSWORD")
	cfg.Mail.ContactEmail = os.Getenv("CONTACT_EMAIL")

	return cfg, nil
}
