package service

import (
	"fmt"

	"contact-back/pkg/mailer"
)

const notificationSubject = "새로운 문의가 접수되었습니다"

const notificationBody = `
	<h3>새로운 문의</h3>
	<p><strong>이름:</strong> {{.Name}}</p>
	<p><strong>이메일:</strong> {{.Email}}</p>
	<p><strong>메시지:</strong> {{.Message}}</p>
`

type notificationData struct {
	Name    string
	Email   string
	Message string
}

// Notifier dispatches the new-inquiry email to the configured
// administrator address. One attempt, no retry; the caller decides
// what a failure means for the submission.
type Notifier struct {
	mlr        mailer.Mailer
	adminEmail string
}

func NewNotifier(mlr mailer.Mailer, adminEmail string) *Notifier {
	return &Notifier{
		mlr:        mlr,
		adminEmail: adminEmail,
	}
}

func (n *Notifier) NotifyNewInquiry(name, email, message string) error {
	data := notificationData{
		Name:    name,
		Email:   email,
		Message: message,
	}

	if err := n.mlr.SendHTML(n.adminEmail, notificationSubject, notificationBody, data); err != nil {
		return fmt.Errorf("failed to send notification mail: %w", err)
	}

	return nil
}
