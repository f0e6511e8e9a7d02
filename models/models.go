package models

import "time"

type ContactInfo struct {
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

type User struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Username string `bson:"username"      json:"username"`
	Password string `bson:"password"      json:"-"`
}

type CropDiseaseReport struct {
	ID                string    `bson:"_id,omitempty"     json:"id"`
	UserID            string    `bson:"userId,omitempty"  json:"userId,omitempty"`
	ImagePath         string    `bson:"imagePath"         json:"imagePath"`
	DiseaseName       string    `bson:"diseaseName"       json:"diseaseName"`
	Confidence        float64   `bson:"confidence"        json:"confidence"`
	OrganicSolutions  []string  `bson:"organicSolutions"  json:"organicSolutions"`
	ChemicalSolutions []string  `bson:"chemicalSolutions" json:"chemicalSolutions"`
	CreatedAt         time.Time `bson:"createdAt"         json:"createdAt"`
}

type MarketplaceItem struct {
	ID          string    `bson:"_id,omitempty"      json:"id"`
	Name        string    `bson:"name"               json:"name"`
	Description string    `bson:"description"        json:"description"`
	Price       float64   `bson:"price"              json:"price"`
	Category    string    `bson:"category"           json:"category"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	SellerID    string    `bson:"sellerId,omitempty" json:"sellerId,omitempty"`
	InStock     bool      `bson:"inStock"            json:"inStock"`
	CreatedAt   time.Time `bson:"createdAt"          json:"createdAt"`
}

// Scheme status values: active, inactive, seasonal.
type GovernmentScheme struct {
	ID                  string     `bson:"_id,omitempty"                 json:"id"`
	Name                string     `bson:"name"                          json:"name"`
	Description         string     `bson:"description"                   json:"description"`
	Eligibility         []string   `bson:"eligibility"                   json:"eligibility"`
	Benefits            string     `bson:"benefits"                      json:"benefits"`
	ApplicationDeadline *time.Time `bson:"applicationDeadline,omitempty" json:"applicationDeadline,omitempty"`
	Status              string     `bson:"status"                        json:"status"`
	DocumentsRequired   []string   `bson:"documentsRequired"             json:"documentsRequired"`
	ApplicationLink     string     `bson:"applicationLink,omitempty"     json:"applicationLink,omitempty"`
}

type MarketPrice struct {
	ID              string    `bson:"_id,omitempty"   json:"id"`
	CropName        string    `bson:"cropName"        json:"cropName"`
	PricePerQuintal float64   `bson:"pricePerQuintal" json:"pricePerQuintal"`
	ChangePercent   float64   `bson:"changePercent"   json:"changePercent"`
	Market          string    `bson:"market"          json:"market"`
	UpdatedAt       time.Time `bson:"updatedAt"       json:"updatedAt"`
}

type BusinessConnection struct {
	ID             string      `bson:"_id,omitempty"  json:"id"`
	CompanyName    string      `bson:"companyName"    json:"companyName"`
	CompanyType    string      `bson:"companyType"    json:"companyType"`
	BuyingCrop     string      `bson:"buyingCrop"     json:"buyingCrop"`
	PriceOffered   float64     `bson:"priceOffered"   json:"priceOffered"`
	QuantityNeeded int         `bson:"quantityNeeded" json:"quantityNeeded"`
	Location       string      `bson:"location"       json:"location"`
	Rating         float64     `bson:"rating"         json:"rating"`
	PaymentTerms   string      `bson:"paymentTerms"   json:"paymentTerms"`
	ContactInfo    ContactInfo `bson:"contactInfo"    json:"contactInfo"`
}

// ChatMessage stores one full exchange: the farmer's question and the
// advisory reply, as a single record.
type ChatMessage struct {
	ID        string    `bson:"_id,omitempty"    json:"id"`
	UserID    string    `bson:"userId,omitempty" json:"userId,omitempty"`
	Message   string    `bson:"message"          json:"message"`
	Response  string    `bson:"response"         json:"response"`
	Language  string    `bson:"language"         json:"language"`
	CreatedAt time.Time `bson:"createdAt"        json:"createdAt"`
}

type ForecastDay struct {
	Day       string  `json:"day"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
}

type WeatherReport struct {
	Location    string        `json:"location"`
	Temperature float64       `json:"temperature"`
	Condition   string        `json:"condition"`
	Forecast    []ForecastDay `json:"forecast"`
	Advisory    string        `json:"advisory"`
}
