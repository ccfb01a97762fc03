package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmallard/brood/internal/db"
	"github.com/jmallard/brood/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories  *db.Repositories
	authService   *services.AuthService
	setupService  *services.SetupService
	store         *services.IntentStore
	checkIns      *services.CheckInService
	notifications *services.NotificationService
}

const authCookieName = "brood_session"

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
