package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"krishi/models"

	"github.com/google/uuid"
)

// Memory keeps every table as an insertion-ordered slice. Tables are tiny
// (seed rows plus whatever a session writes), so linear scans are fine.
// The mutex is required here: unlike the upstream Node prototype this server
// handles requests on many goroutines at once.
type Memory struct {
	mu sync.RWMutex

	users               []models.User
	cropDiseaseReports  []models.CropDiseaseReport
	marketplaceItems    []models.MarketplaceItem
	governmentSchemes   []models.GovernmentScheme
	marketPrices        []models.MarketPrice
	businessConnections []models.BusinessConnection
	chatMessages        []models.ChatMessage
}

func NewMemory() *Memory {
	m := &Memory{}
	for _, item := range seedMarketplaceItems() {
		item.ID = uuid.New().String()
		m.marketplaceItems = append(m.marketplaceItems, item)
	}
	for _, scheme := range seedGovernmentSchemes() {
		scheme.ID = uuid.New().String()
		m.governmentSchemes = append(m.governmentSchemes, scheme)
	}
	for _, price := range seedMarketPrices() {
		price.ID = uuid.New().String()
		m.marketPrices = append(m.marketPrices, price)
	}
	for _, conn := range seedBusinessConnections() {
		conn.ID = uuid.New().String()
		m.businessConnections = append(m.businessConnections, conn)
	}
	return m
}

func (m *Memory) GetUser(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) CreateUser(_ context.Context, username, password string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return models.User{}, ErrDuplicateUsername
		}
	}
	user := models.User{ID: uuid.New().String(), Username: username, Password: password}
	m.users = append(m.users, user)
	return user, nil
}

func (m *Memory) CreateCropDiseaseReport(_ context.Context, report models.CropDiseaseReport) (models.CropDiseaseReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	report.ID = uuid.New().String()
	report.CreatedAt = time.Now()
	m.cropDiseaseReports = append(m.cropDiseaseReports, report)
	return report, nil
}

func (m *Memory) GetCropDiseaseReportsByUser(_ context.Context, userID string) ([]models.CropDiseaseReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reports := make([]models.CropDiseaseReport, 0)
	for _, r := range m.cropDiseaseReports {
		if r.UserID == userID {
			reports = append(reports, r)
		}
	}
	return reports, nil
}

func (m *Memory) GetMarketplaceItems(_ context.Context, category string) ([]models.MarketplaceItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]models.MarketplaceItem, 0, len(m.marketplaceItems))
	for _, item := range m.marketplaceItems {
		if category == "" || item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *Memory) CreateMarketplaceItem(_ context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now()
	m.marketplaceItems = append(m.marketplaceItems, item)
	return item, nil
}

func (m *Memory) GetGovernmentSchemes(_ context.Context, activeOnly bool) ([]models.GovernmentScheme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	schemes := make([]models.GovernmentScheme, 0, len(m.governmentSchemes))
	for _, s := range m.governmentSchemes {
		if !activeOnly || s.Status == "active" {
			schemes = append(schemes, s)
		}
	}
	return schemes, nil
}

func (m *Memory) GetMarketPrices(_ context.Context) ([]models.MarketPrice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prices := make([]models.MarketPrice, len(m.marketPrices))
	copy(prices, m.marketPrices)
	return prices, nil
}

// UpdateMarketPrice appends a new quote; older rows for the same crop are
// kept as-is.
func (m *Memory) UpdateMarketPrice(_ context.Context, price models.MarketPrice) (models.MarketPrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	price.ID = uuid.New().String()
	price.UpdatedAt = time.Now()
	m.marketPrices = append(m.marketPrices, price)
	return price, nil
}

func (m *Memory) GetBusinessConnections(_ context.Context, crop string) ([]models.BusinessConnection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	crop = strings.ToLower(crop)
	conns := make([]models.BusinessConnection, 0, len(m.businessConnections))
	for _, c := range m.businessConnections {
		if crop == "" || strings.Contains(strings.ToLower(c.BuyingCrop), crop) {
			conns = append(conns, c)
		}
	}
	return conns, nil
}

func (m *Memory) CreateChatMessage(_ context.Context, msg models.ChatMessage) (models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg.ID = uuid.New().String()
	if msg.Language == "" {
		msg.Language = "en"
	}
	msg.CreatedAt = time.Now()
	m.chatMessages = append(m.chatMessages, msg)
	return msg, nil
}

func (m *Memory) GetChatMessagesByUser(_ context.Context, userID string) ([]models.ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := make([]models.ChatMessage, 0)
	for _, msg := range m.chatMessages {
		if msg.UserID == userID {
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}
