package api

import (
	"time"

	"github.com/jmallard/brood/internal/db"
	"github.com/jmallard/brood/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}

	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.setupService = services.NewSetupService(handler.repositories.Users)

	store, err := services.NewIntentStore(handler.repositories.Records)
	if err != nil {
		return nil, err
	}
	handler.store = store

	stakes := services.NewStakeEngine(
		services.NewLoggingPaymentCollaborator(),
		services.NewLoggingSocialCollaborator(),
	)
	handler.checkIns = services.NewCheckInService(store, stakes, location)
	handler.notifications = services.NewNotificationService(services.NewLoggingScheduler())

	return handler, nil
}
