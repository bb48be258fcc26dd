package mailer

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// getMailConfig reads the SMTP settings from the environment.
func getMailConfig() (host string, port int, username, password string, err error) {
	host = os.Getenv("MAIL_HOST")
	port, _ = strconv.Atoi(os.Getenv("MAIL_PORT"))
	username = os.Getenv("MAIL_USERNAME")
	password = os.Getenv("MAIL_PASSWORD")

	if host == "" || port == 0 || username == "" {
		return "", 0, "", "", fmt.Errorf("mail configuration missing")
	}
	return host, port, username, password, nil
}

// SendConfirmationEmail sends the email-confirmation link for the given token.
func SendConfirmationEmail(to, token string) error {
	host, port, username, password, err := getMailConfig()
	if err != nil {
		return err
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	link := fmt.Sprintf("%s/confirm/%s", baseURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Confirm Your Email Address")
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Welcome! Please confirm your email address by clicking the link below.</p>
		<p><a href=%q>Confirm email</a></p>
		<p>The link expires in one hour.</p>`, link))

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}
