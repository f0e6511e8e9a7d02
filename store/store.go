package store

import (
	"context"
	"errors"

	"krishi/models"
)

var (
	ErrNotFound          = errors.New("store: not found")
	ErrDuplicateUsername = errors.New("store: username already taken")
)

// Storage is the domain store behind every route handler. Records are
// created once and never mutated; UpdateMarketPrice inserts a fresh row
// rather than overwriting the previous quote. List calls with a zero-value
// filter return the whole table in insertion order.
type Storage interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, username, password string) (models.User, error)

	CreateCropDiseaseReport(ctx context.Context, report models.CropDiseaseReport) (models.CropDiseaseReport, error)
	GetCropDiseaseReportsByUser(ctx context.Context, userID string) ([]models.CropDiseaseReport, error)

	GetMarketplaceItems(ctx context.Context, category string) ([]models.MarketplaceItem, error)
	CreateMarketplaceItem(ctx context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error)

	GetGovernmentSchemes(ctx context.Context, activeOnly bool) ([]models.GovernmentScheme, error)

	GetMarketPrices(ctx context.Context) ([]models.MarketPrice, error)
	UpdateMarketPrice(ctx context.Context, price models.MarketPrice) (models.MarketPrice, error)

	GetBusinessConnections(ctx context.Context, crop string) ([]models.BusinessConnection, error)

	CreateChatMessage(ctx context.Context, msg models.ChatMessage) (models.ChatMessage, error)
	GetChatMessagesByUser(ctx context.Context, userID string) ([]models.ChatMessage, error)
}
