package mail

import (
	"errors"
	"fmt"
	"net"
	"net/smtp"

	"inkwell-blog/app/server/config"
)

// Mailer 把联系表单的内容作为邮件发出去。
// 发送是一次性的：没有重试，没有状态，失败由调用方记日志即可。
type Mailer struct {
	addr     string
	host     string
	username string
	password string
	contact  string
}

func New(cfg *config.Config) (*Mailer, error) {
	if cfg.Mail.SMTPAddr == "" {
		// 未配置，停用
		return nil, nil
	}

	host, _, err := net.SplitHostPort(cfg.Mail.SMTPAddr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP address: %w", err)
	}

	return &Mailer{
		addr:     cfg.Mail.SMTPAddr,
		host:     host,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
		contact:  cfg.Mail.ContactEmail,
	}, nil
}

// Send 发送一封联系邮件。 m 为 nil 时表示功能停用。
func (m *Mailer) Send(name, email, phone, message string) error {
	if m == nil {
		return errors.New("mailer is not configured")
	}

	msg := fmt.Sprintf("Subject: contact form\r\n\r\nname: %s\r\nemail: %s\r\nphone: %s\r\nmessage: %s\r\n",
		name, email, phone, message)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(m.addr, auth, m.username, []string{m.contact}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
