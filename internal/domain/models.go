package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product status values. Anything else is stored verbatim; only
// "hidden" has meaning to the public listing.
const (
	StatusAvailable  = "available"
	StatusHidden     = "hidden"
	StatusComingSoon = "coming_soon"
)

// SettingsKey identifies the singleton settings document.
const SettingsKey = "site_settings"

type Brand struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	LogoURL     string             `json:"logo_url" bson:"logo_url"`
	BannerURL   string             `json:"banner_url" bson:"banner_url"`
	Description string             `json:"description" bson:"description"`
	Visible     bool               `json:"visible" bson:"visible"`
	InNavbar    bool               `json:"in_navbar" bson:"in_navbar"`
	Order       int                `json:"order" bson:"order"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Brand       string             `json:"brand" bson:"brand"` // brand slug, free text
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description" bson:"description"`
	Images      []string           `json:"images" bson:"images"`
	Sizes       []string           `json:"sizes" bson:"sizes"`
	Status      string             `json:"status" bson:"status"` // available | hidden | coming_soon
	Featured    bool               `json:"featured" bson:"featured"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Message is a contact-form submission. Content is immutable once
// stored; only the read flag changes.
type Message struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	Read      bool               `json:"read" bson:"read"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Settings holds the site-wide singleton. PUT /api/settings may carry
// keys beyond these; they are stored verbatim, so reads work on the
// raw document (see SettingsService) and this struct only shapes the
// defaults.
type Settings struct {
	Key             string            `json:"key" bson:"key"`
	HeroTitle       string            `json:"hero_title" bson:"hero_title"`
	HeroDescription string            `json:"hero_description" bson:"hero_description"`
	HeroImage       string            `json:"hero_image" bson:"hero_image"`
	LogoURL         string            `json:"logo_url" bson:"logo_url"`
	ContactInfo     map[string]string `json:"contact_info" bson:"contact_info"`
}

func DefaultSettings() Settings {
	return Settings{
		Key:             SettingsKey,
		HeroTitle:       "Premium Wholesale & Retail Footwear Collection",
		HeroDescription: "Discover our extensive range of high-quality footwear from trusted brands.",
		HeroImage:       "",
		LogoURL:         "",
		ContactInfo:     map[string]string{},
	}
}

// Map renders settings as the loose document shape the resolver
// merges stored fields over.
func (s Settings) Map() map[string]any {
	return map[string]any{
		"key":              s.Key,
		"hero_title":       s.HeroTitle,
		"hero_description": s.HeroDescription,
		"hero_image":       s.HeroImage,
		"logo_url":         s.LogoURL,
		"contact_info":     s.ContactInfo,
	}
}
