package utils

import (
	"cinevault/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendWelcomeEmail sends a registration welcome mail through SendGrid.
// Failures are logged, never surfaced to the signup flow.
func SendWelcomeEmail(email, name string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Println("SendGrid key not configured, skipping welcome email for", email)
		return nil
	}

	from := mail.NewEmail("CineVault", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	subject := "Welcome to CineVault"

	plain := fmt.Sprintf("Hi %s, your CineVault account is ready. Start adding movies and reviews!", name)
	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome to CineVault</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: #555555;">Your account is ready. Start adding movies and reviews!</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">The CineVault Team</p>
				</div>
			</body>
		</html>
	`, name)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Welcome email to %s rejected, code: %d", email, resp.StatusCode)
		return fmt.Errorf("welcome email rejected, code: %d", resp.StatusCode)
	}

	return nil
}
