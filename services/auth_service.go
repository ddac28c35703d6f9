package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"syana-server/config"
	"syana-server/models"
	"syana-server/types"
)

const otpTTL = 10 * time.Minute

// CodeSender delivers a one-time code to a phone number.
type CodeSender interface {
	SendVerificationCode(phoneNumber, code string) error
}

type SendOTPParams struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type VerifyOTPParams struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Code        string `json:"code" binding:"required,len=6"`
	Name        string `json:"name"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService implements phone-number OTP login. Codes are 6 digits, stored
// bcrypt-hashed, single-use, valid for ten minutes.
type AuthService struct {
	db     *gorm.DB
	sender CodeSender
	jwtCfg config.JWTConfig
	phone  config.PhoneConfig
}

func NewAuthService(db *gorm.DB, sender CodeSender, jwtCfg config.JWTConfig, phone config.PhoneConfig) *AuthService {
	return &AuthService{db: db, sender: sender, jwtCfg: jwtCfg, phone: phone}
}

// SendOTP issues a fresh code for the phone number and delivers it. Any
// previous unconsumed codes for the number are invalidated.
func (s *AuthService) SendOTP(params SendOTPParams) error {
	phone := s.normalizePhone(params.PhoneNumber)
	if phone == "" {
		return types.Validation("ERR_INVALID_PHONE_NUMBER")
	}

	code, err := generateOTP()
	if err != nil {
		log.Printf("❌ Failed to generate OTP: %v", err)
		return types.Internal("INTERNAL_SERVER_ERROR")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash OTP: %v", err)
		return types.Internal("INTERNAL_SERVER_ERROR")
	}

	if err := s.db.Model(&models.VerificationCode{}).
		Where("phone_number = ? AND consumed = ?", phone, false).
		Update("consumed", true).Error; err != nil {
		return types.Internal("INTERNAL_SERVER_ERROR")
	}

	vc := models.VerificationCode{
		PhoneNumber: phone,
		CodeHash:    string(hash),
		ExpiresAt:   time.Now().Add(otpTTL),
	}
	if err := s.db.Create(&vc).Error; err != nil {
		return types.Internal("INTERNAL_SERVER_ERROR")
	}

	if err := s.sender.SendVerificationCode(phone, code); err != nil {
		return err
	}

	log.Printf("📨 OTP sent to %s", phone)
	return nil
}

// VerifyOTP checks the code, consumes it, upserts the user and returns a
// signed token.
func (s *AuthService) VerifyOTP(params VerifyOTPParams) (*AuthResult, error) {
	phone := s.normalizePhone(params.PhoneNumber)
	if phone == "" {
		return nil, types.Validation("ERR_INVALID_PHONE_NUMBER")
	}

	var vc models.VerificationCode
	err := s.db.Where("phone_number = ? AND consumed = ?", phone, false).
		Order("created_at DESC").
		First(&vc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.Unauthorized("ERR_INVALID_CODE")
	}
	if err != nil {
		return nil, types.Internal("INTERNAL_SERVER_ERROR")
	}

	if time.Now().After(vc.ExpiresAt) {
		return nil, types.Unauthorized("ERR_CODE_EXPIRED")
	}
	if bcrypt.CompareHashAndPassword([]byte(vc.CodeHash), []byte(params.Code)) != nil {
		return nil, types.Unauthorized("ERR_INVALID_CODE")
	}

	if err := s.db.Model(&vc).Update("consumed", true).Error; err != nil {
		return nil, types.Internal("INTERNAL_SERVER_ERROR")
	}

	user, err := s.upsertUser(phone, params.Name)
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		log.Printf("❌ Failed to sign token: %v", err)
		return nil, types.Internal("INTERNAL_SERVER_ERROR")
	}

	return &AuthResult{Token: token, User: user}, nil
}

// GenerateToken signs a JWT for the user.
func (s *AuthService) GenerateToken(userID string) (string, error) {
	claims := types.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.jwtCfg.ExpiryHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}

func (s *AuthService) upsertUser(phone, name string) (*models.User, error) {
	var user models.User
	err := s.db.Where("phone_number = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:                name,
			PhoneNumber:         phone,
			PhoneNumberVerified: true,
		}
		if user.Name == "" {
			user.Name = phone
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, types.Internal("ERR_USER_CREATE")
		}
		log.Printf("✅ New user registered: %s", user.ID)
		return &user, nil
	}
	if err != nil {
		return nil, types.Internal("INTERNAL_SERVER_ERROR")
	}

	if !user.PhoneNumberVerified {
		if err := s.db.Model(&user).Update("phone_number_verified", true).Error; err != nil {
			return nil, types.Internal("INTERNAL_SERVER_ERROR")
		}
		user.PhoneNumberVerified = true
	}
	return &user, nil
}

// normalizePhone prefixes the default country code when the number carries
// none. Returns "" for unusable input.
func (s *AuthService) normalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	if phone == "" {
		return ""
	}
	if strings.HasPrefix(phone, "00") {
		phone = "+" + phone[2:]
	}
	if !strings.HasPrefix(phone, "+") {
		phone = s.phone.DefaultCountryCode + strings.TrimPrefix(phone, "0")
	}
	if len(phone) < 8 {
		return ""
	}
	return phone
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
