package accountControllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jayasri-Akky/E-commerceWebsite/auth"
	"github.com/Jayasri-Akky/E-commerceWebsite/mailer"
	"github.com/Jayasri-Akky/E-commerceWebsite/middleware"
	"github.com/Jayasri-Akky/E-commerceWebsite/models"
	"github.com/Jayasri-Akky/E-commerceWebsite/web"
)

var (
	ErrEmailTaken   = errors.New("a user with that email already exists")
	ErrUnknownEmail = errors.New("no user with that email")
	ErrBadPassword  = errors.New("email and password incorrect")
)

// -------- Core Logic --------

// RegisterUser creates an unconfirmed account with a bcrypt-hashed credential.
// Fails with ErrEmailTaken if the email is already registered.
func RegisterUser(db *gorm.DB, name, email, password, phone string) (models.User, error) {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
	}
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies the credential pair and returns the matching user.
func Authenticate(db *gorm.DB, email, password string) (models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUnknownEmail
		}
		return models.User{}, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return models.User{}, ErrBadPassword
	}
	return user, nil
}

// ConfirmEmail redeems a confirmation token. Returns alreadyConfirmed=true
// (and no error) when the account was confirmed before; redeeming again is a
// no-op.
func ConfirmEmail(db *gorm.DB, token string) (alreadyConfirmed bool, err error) {
	email, err := auth.VerifyConfirmationToken(token)
	if err != nil {
		return false, err
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUnknownEmail
		}
		return false, err
	}
	if user.EmailConfirmed {
		return true, nil
	}
	if err := db.Model(&user).Update("email_confirmed", true).Error; err != nil {
		return false, err
	}
	return false, nil
}

// sendConfirmation issues a token and mails the link. Failures are logged,
// never surfaced to the visitor.
func sendConfirmation(email string) {
	token, err := auth.IssueConfirmationToken(email)
	if err != nil {
		log.Printf("❌ Failed to issue confirmation token for %s: %v", email, err)
		return
	}
	if err := mailer.SendConfirmationEmail(email, token); err != nil {
		log.Printf("❌ Failed to send confirmation email to %s: %v", email, err)
	}
}

// -------- Handlers --------

// GET /register
func ShowRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("user_id"); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		web.Render(c, "register.html", nil)
	}
}

// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		email := c.PostForm("email")
		password := c.PostForm("password")
		phone := c.PostForm("phone")

		if name == "" || email == "" || password == "" {
			web.Flash(c, web.FlashError, "Name, email and password are required.")
			c.Redirect(http.StatusFound, "/register")
			return
		}

		user, err := RegisterUser(db, name, email, password, phone)
		if errors.Is(err, ErrEmailTaken) {
			web.Flash(c, web.FlashError, "User with email "+email+" already exists!! Login now!")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		if err != nil {
			web.Flash(c, web.FlashError, "Registration failed. Please try again.")
			c.Redirect(http.StatusFound, "/register")
			return
		}

		sendConfirmation(user.Email)
		web.Flash(c, web.FlashSuccess, "Thanks for registering! You may login now.")
		c.Redirect(http.StatusFound, "/login")
	}
}

// GET /login
func ShowLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("user_id"); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		web.Render(c, "login.html", nil)
	}
}

// POST /login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")
		password := c.PostForm("password")

		user, err := Authenticate(db, email, password)
		switch {
		case errors.Is(err, ErrUnknownEmail):
			web.Flash(c, web.FlashError, "User with email "+email+" doesn't exist! Register now!")
			c.Redirect(http.StatusFound, "/login")
			return
		case errors.Is(err, ErrBadPassword):
			web.Flash(c, web.FlashError, "Email and password incorrect!!")
			c.Redirect(http.StatusFound, "/login")
			return
		case err != nil:
			web.Flash(c, web.FlashError, "Login failed. Please try again.")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		if err := middleware.SignIn(c, user.ID); err != nil {
			web.Flash(c, web.FlashError, "Login failed. Please try again.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		c.Redirect(http.StatusFound, "/")
	}
}

// GET /confirm/:token
func Confirm(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		already, err := ConfirmEmail(db, c.Param("token"))
		switch {
		case errors.Is(err, auth.ErrTokenInvalid):
			web.Flash(c, web.FlashError, "The confirmation link is invalid or has expired.")
		case errors.Is(err, ErrUnknownEmail):
			web.Flash(c, web.FlashError, "No account matches this confirmation link.")
		case err != nil:
			web.Flash(c, web.FlashError, "Confirmation failed. Please try again.")
		case already:
			web.Flash(c, web.FlashSuccess, "Account already confirmed. Please login.")
		default:
			web.Flash(c, web.FlashSuccess, "Email address successfully confirmed!")
		}
		c.Redirect(http.StatusFound, "/login")
	}
}

// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = middleware.SignOut(c)
		c.Redirect(http.StatusFound, "/login")
	}
}

// GET /resend
func ResendConfirmation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, middleware.UserID(c)).Error; err != nil {
			web.Flash(c, web.FlashError, "Account not found.")
			c.Redirect(http.StatusFound, "/login")
			return
		}

		sendConfirmation(user.Email)
		_ = middleware.SignOut(c)
		web.Flash(c, web.FlashSuccess, "Confirmation email sent successfully.")
		c.Redirect(http.StatusFound, "/login")
	}
}
