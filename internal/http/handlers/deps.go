package handlers

import (
	"go.mongodb.org/mongo-driver/mongo"

	"stridewear/internal/config"
	"stridewear/internal/repos"
	"stridewear/internal/services"
)

type Deps struct {
	HealthHandler   *HealthHandler
	BrandHandler    *BrandHandler
	ProductHandler  *ProductHandler
	MessageHandler  *MessageHandler
	SettingsHandler *SettingsHandler
}

func NewDeps(client *mongo.Client, db *mongo.Database, cfg config.Config) *Deps {
	brandRepo := repos.NewBrandRepo(db)
	prodRepo := repos.NewProductRepo(db)
	msgRepo := repos.NewMessageRepo(db)
	setRepo := repos.NewSettingsRepo(db)

	catalogSvc := services.NewCatalogService(brandRepo, prodRepo)
	inboxSvc := services.NewInboxService(msgRepo)
	settingsSvc := services.NewSettingsService(setRepo, cfg.DefaultSettings)
	statusSvc := services.NewStatusService(repos.NewProbe(client))

	return &Deps{
		HealthHandler:   &HealthHandler{Status: statusSvc},
		BrandHandler:    &BrandHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		MessageHandler:  &MessageHandler{Inbox: inboxSvc},
		SettingsHandler: &SettingsHandler{Settings: settingsSvc},
	}
}
