package api

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dcminogue/LightBnB/internal/auth"
	"github.com/dcminogue/LightBnB/internal/database"
	"github.com/dcminogue/LightBnB/internal/models"
)

// Store is the subset of the query gateway the handlers use.
type Store interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	AddUser(ctx context.Context, user models.User) (*models.User, error)
	GetReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]models.Reservation, error)
	SearchProperties(ctx context.Context, search database.PropertySearch, limit int) ([]models.Property, error)
	AddProperty(ctx context.Context, property models.Property) (*models.Property, error)
}

type Handler struct {
	store  Store
	tokens *auth.Issuer
	logger *logrus.Logger
}

func NewHandler(store Store, tokens *auth.Issuer, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}
