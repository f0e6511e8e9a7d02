package store

import (
	"context"
	"strings"
	"time"

	"krishi/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the persistent Storage implementation. Same contracts as Memory;
// records are write-once and list queries return insertion order.
type Mongo struct {
	users       *mongo.Collection
	reports     *mongo.Collection
	items       *mongo.Collection
	schemes     *mongo.Collection
	prices      *mongo.Collection
	connections *mongo.Collection
	chats       *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		users:       db.Collection("users"),
		reports:     db.Collection("diseasereports"),
		items:       db.Collection("marketplace"),
		schemes:     db.Collection("schemes"),
		prices:      db.Collection("marketprices"),
		connections: db.Collection("connections"),
		chats:       db.Collection("chatmessages"),
	}
}

// EnsureSeed inserts the sample rows into any table that is still empty.
// Safe to call on every startup.
func (m *Mongo) EnsureSeed(ctx context.Context) error {
	if err := seedCollection(ctx, m.items, func() []interface{} {
		docs := make([]interface{}, 0)
		for _, item := range seedMarketplaceItems() {
			item.ID = uuid.New().String()
			docs = append(docs, item)
		}
		return docs
	}); err != nil {
		return err
	}
	if err := seedCollection(ctx, m.schemes, func() []interface{} {
		docs := make([]interface{}, 0)
		for _, scheme := range seedGovernmentSchemes() {
			scheme.ID = uuid.New().String()
			docs = append(docs, scheme)
		}
		return docs
	}); err != nil {
		return err
	}
	if err := seedCollection(ctx, m.prices, func() []interface{} {
		docs := make([]interface{}, 0)
		for _, price := range seedMarketPrices() {
			price.ID = uuid.New().String()
			docs = append(docs, price)
		}
		return docs
	}); err != nil {
		return err
	}
	return seedCollection(ctx, m.connections, func() []interface{} {
		docs := make([]interface{}, 0)
		for _, conn := range seedBusinessConnections() {
			conn.ID = uuid.New().String()
			docs = append(docs, conn)
		}
		return docs
	})
}

func seedCollection(ctx context.Context, coll *mongo.Collection, build func() []interface{}) error {
	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = coll.InsertMany(ctx, build())
	return err
}

func (m *Mongo) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (m *Mongo) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (m *Mongo) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	if _, err := m.GetUserByUsername(ctx, username); err == nil {
		return models.User{}, ErrDuplicateUsername
	} else if err != ErrNotFound {
		return models.User{}, err
	}
	user := models.User{ID: uuid.New().String(), Username: username, Password: password}
	if _, err := m.users.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (m *Mongo) CreateCropDiseaseReport(ctx context.Context, report models.CropDiseaseReport) (models.CropDiseaseReport, error) {
	report.ID = uuid.New().String()
	report.CreatedAt = time.Now()
	if _, err := m.reports.InsertOne(ctx, report); err != nil {
		return models.CropDiseaseReport{}, err
	}
	return report, nil
}

func (m *Mongo) GetCropDiseaseReportsByUser(ctx context.Context, userID string) ([]models.CropDiseaseReport, error) {
	reports := make([]models.CropDiseaseReport, 0)
	return reports, findAll(ctx, m.reports, bson.M{"userId": userID}, &reports)
}

func (m *Mongo) GetMarketplaceItems(ctx context.Context, category string) ([]models.MarketplaceItem, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	items := make([]models.MarketplaceItem, 0)
	return items, findAll(ctx, m.items, filter, &items)
}

func (m *Mongo) CreateMarketplaceItem(ctx context.Context, item models.MarketplaceItem) (models.MarketplaceItem, error) {
	item.ID = uuid.New().String()
	item.CreatedAt = time.Now()
	if _, err := m.items.InsertOne(ctx, item); err != nil {
		return models.MarketplaceItem{}, err
	}
	return item, nil
}

func (m *Mongo) GetGovernmentSchemes(ctx context.Context, activeOnly bool) ([]models.GovernmentScheme, error) {
	filter := bson.M{}
	if activeOnly {
		filter["status"] = "active"
	}
	schemes := make([]models.GovernmentScheme, 0)
	return schemes, findAll(ctx, m.schemes, filter, &schemes)
}

func (m *Mongo) GetMarketPrices(ctx context.Context) ([]models.MarketPrice, error) {
	prices := make([]models.MarketPrice, 0)
	return prices, findAll(ctx, m.prices, bson.M{}, &prices)
}

func (m *Mongo) UpdateMarketPrice(ctx context.Context, price models.MarketPrice) (models.MarketPrice, error) {
	price.ID = uuid.New().String()
	price.UpdatedAt = time.Now()
	if _, err := m.prices.InsertOne(ctx, price); err != nil {
		return models.MarketPrice{}, err
	}
	return price, nil
}

func (m *Mongo) GetBusinessConnections(ctx context.Context, crop string) ([]models.BusinessConnection, error) {
	filter := bson.M{}
	if crop != "" {
		filter["buyingCrop"] = bson.M{"$regex": primitive.Regex{Pattern: strings.TrimSpace(crop), Options: "i"}}
	}
	conns := make([]models.BusinessConnection, 0)
	return conns, findAll(ctx, m.connections, filter, &conns)
}

func (m *Mongo) CreateChatMessage(ctx context.Context, msg models.ChatMessage) (models.ChatMessage, error) {
	msg.ID = uuid.New().String()
	if msg.Language == "" {
		msg.Language = "en"
	}
	msg.CreatedAt = time.Now()
	if _, err := m.chats.InsertOne(ctx, msg); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

func (m *Mongo) GetChatMessagesByUser(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	msgs := make([]models.ChatMessage, 0)
	return msgs, findAll(ctx, m.chats, bson.M{"userId": userID}, &msgs)
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M, out interface{}) error {
	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
