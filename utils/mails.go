package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendMail sends a raw message through the configured SMTP relay. Mail
// is best-effort: failures are logged and never bubble up to handlers.
func SendMail(email string, message []byte) {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")

	if from == "" || password == "" || smtpHost == "" || smtpPort == "" {
		LogInfo("SMTP configuration incomplete, skipping email to " + email)
		return
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{email}, message)
	if err != nil {
		LogError(err, fmt.Sprintf("Error sending email to %s", email))
		return
	}

	LogSuccess("Email sent successfully")
}
