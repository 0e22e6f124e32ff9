package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"labourlink/config"
	"labourlink/constants"
	"labourlink/models"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func sendVerificationEmail(email string, token string) error {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")

	to := []string{email}
	subject := "Subject: Your verification code\n"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Verification code</title>
		</head>
		<body>
			<p>Hello,</p>
			<p>Your one-time verification code is: <strong>%s</strong></p>
			<p>If you did not request this code you can safely ignore this email.</p>
			<p>Thanks,<br>The LabourLink team</p>
		</body>
		</html>
	`, token)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	err := smtp.SendMail(host+":"+port, auth, from, to, msg)
	return err
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found with email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByPhoneNumber(phoneNumber string) (models.User, error) {
	var user models.User
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found with phone %s", phoneNumber)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

// CreateUser registers a new account and emails a verification code
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.User{}, errors.New("email, password and phone are required")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", existingEmail.Email)
	}

	existingPhone, err := GetUserByPhoneNumber(input.PhoneNumber)
	if err == nil {
		return models.User{}, fmt.Errorf("phone %s is already in use", existingPhone.PhoneNumber)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	token, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		IsVerified:    false,
		Code:          token,
		CodeCreatedAt: time.Now(),
		Role:          input.Role,
		Status:        constants.ProfileStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		Name:          input.Name,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendVerificationEmail(input.Email, token); err != nil {
		// Account exists either way; the code can be resent
		return user, nil
	}

	return user, nil
}

// ResendVerificationCode issues a fresh code for an unverified account
func ResendVerificationCode(email string) error {
	user, err := GetUserByEmail(email)
	if err != nil {
		return err
	}

	if user.IsVerified {
		return errors.New("account is already verified")
	}

	token, err := generateVerificationCode()
	if err != nil {
		return err
	}

	user.Code = token
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return sendVerificationEmail(user.Email, token)
}

// CreateGoogleUser registers an account from a verified Google identity
func CreateGoogleUser(name, email, picture string) (models.User, error) {
	user := models.User{
		Email:      email,
		Name:       name,
		Avatar:     picture,
		IsVerified: true,
		Role:       constants.RoleAdmin,
		Status:     constants.ProfileStatusApproved,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return models.User{}, result.Error
	}
	return user, nil
}
