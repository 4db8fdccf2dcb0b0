package mailsmodels

import (
	"fmt"

	"github.com/castrol-web/nyumbaninala-backend/utils"
)

type PartnerStatusData struct {
	FullName string
	Email    string
	Status   string
	Note     string
}

// PartnerStatusUpdate notifies an applicant after an admin review.
func PartnerStatusUpdate(data PartnerStatusData) {
	subject := "Subject: Your partnership application - Nyumbani Nala \r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

	note := ""
	if data.Note != "" {
		note = fmt.Sprintf(`<blockquote style="background-color: #f5f5f5; padding: 15px; border-left: 5px solid #1D4ED8;">%s</blockquote>`, data.Note)
	}

	body := fmt.Sprintf(`
	<div style="font-family:sans-serif; padding:20px;">
		<h2>Hello %s,</h2>
		<p>Your partnership application has been <strong>%s</strong>.</p>
		%s
		<p>Thank you for your interest in Nyumbani Nala.</p>
	</div>
`, data.FullName, data.Status, note)

	message := []byte(subject + mime + body)
	utils.SendMail(data.Email, message)
}
