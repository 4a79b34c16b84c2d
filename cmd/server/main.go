// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/campaign-catalog/internal/config"
	"github.com/unclebandit/campaign-catalog/internal/controller"
	"github.com/unclebandit/campaign-catalog/internal/db"
	"github.com/unclebandit/campaign-catalog/internal/queue"
	"github.com/unclebandit/campaign-catalog/internal/repository"
	"github.com/unclebandit/campaign-catalog/internal/service"
	"github.com/unclebandit/campaign-catalog/internal/web"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Parse()

	// Init DB
	conn, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to init database: ", err)
	}
	defer conn.Close()

	// Catalog change events go to RabbitMQ when configured.
	var events queue.Publisher = queue.NoopPublisher{}
	if cfg.AMQPURL != "" {
		pub, err := queue.NewAMQPPublisher(cfg.AMQPURL, cfg.EventQueue)
		if err != nil {
			log.Fatal("failed to connect to broker: ", err)
		}
		events = pub
		log.Println("✅ Connected to broker, publishing to", cfg.EventQueue)
	}
	defer events.Close()

	brandRepo := &repository.BrandRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	programRepo := &repository.ProgramRepository{DB: conn}
	placementRepo := &repository.PlacementRepository{DB: conn}

	brandService := &service.BrandService{BrandRepo: brandRepo, Events: events}
	campaignService := &service.CampaignService{
		CampaignRepo: campaignRepo,
		BrandRepo:    brandRepo,
		Events:       events,
	}
	programService := &service.ProgramService{
		ProgramRepo:  programRepo,
		CampaignRepo: campaignRepo,
		Events:       events,
	}
	placementService := &service.PlacementService{
		PlacementRepo: placementRepo,
		ProgramRepo:   programRepo,
		Events:        events,
	}

	brandController := &controller.BrandController{BrandService: brandService}
	campaignController := &controller.CampaignController{CampaignService: campaignService}
	programController := &controller.ProgramController{ProgramService: programService}
	placementController := &controller.PlacementController{PlacementService: placementService}

	pages := &web.Server{
		Brands:     brandService,
		Campaigns:  campaignService,
		Programs:   programService,
		Placements: placementService,
	}

	r := chi.NewRouter()

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Post("/brands", brandController.CreateBrand)
		r.Get("/brands", brandController.ListBrands)
		r.Get("/brands/{id}", brandController.GetBrand)
		r.Put("/brands/{id}", brandController.UpdateBrand)
		r.Delete("/brands/{id}", brandController.DeleteBrand)

		r.Post("/campaigns", campaignController.CreateCampaign)
		r.Get("/campaigns", campaignController.ListCampaigns)
		r.Get("/campaigns/{id}", campaignController.GetCampaign)
		r.Put("/campaigns/{id}", campaignController.UpdateCampaign)
		r.Delete("/campaigns/{id}", campaignController.DeleteCampaign)

		r.Post("/programs", programController.CreateProgram)
		r.Get("/programs", programController.ListPrograms)
		r.Get("/programs/{id}", programController.GetProgram)
		r.Put("/programs/{id}", programController.UpdateProgram)
		r.Delete("/programs/{id}", programController.DeleteProgram)

		r.Post("/placements", placementController.CreatePlacement)
		r.Get("/placements", placementController.ListPlacements)
		r.Get("/placements/{id}", placementController.GetPlacement)
		r.Put("/placements/{id}", placementController.UpdatePlacement)
		r.Delete("/placements/{id}", placementController.DeletePlacement)
	})

	// HTML pages
	pages.Routes(r)

	log.Println("🚀 Server running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
