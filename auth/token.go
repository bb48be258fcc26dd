package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Confirmation tokens are HS256 JWTs binding an email address, valid for one hour.

const confirmationTokenTTL = time.Hour

var ErrTokenInvalid = errors.New("confirmation link is invalid or has expired")

// IssueConfirmationToken signs a time-limited token for the given email.
func IssueConfirmationToken(email string) (string, error) {
	return issueConfirmationToken(email, time.Now())
}

func issueConfirmationToken(email string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"email":   email,
		"purpose": "email-confirmation",
		"iat":     now.Unix(),
		"exp":     now.Add(confirmationTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// VerifyConfirmationToken checks signature, purpose and expiry, and returns
// the email the token was issued for.
func VerifyConfirmationToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	if purpose, _ := claims["purpose"].(string); purpose != "email-confirmation" {
		return "", ErrTokenInvalid
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrTokenInvalid
	}
	return email, nil
}
