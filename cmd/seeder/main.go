//cmd/seeder/main.go
package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/unclebandit/campaign-catalog/internal/config"
	"github.com/unclebandit/campaign-catalog/internal/db"
	"github.com/unclebandit/campaign-catalog/internal/model"
	"github.com/unclebandit/campaign-catalog/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Parse()
	conn, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	brandRepo := &repository.BrandRepository{DB: conn}
	campaignRepo := &repository.CampaignRepository{DB: conn}
	programRepo := &repository.ProgramRepository{DB: conn}
	placementRepo := &repository.PlacementRepository{DB: conn}

	b := &model.Brand{
		Name:            "DemoBrand",
		Pharma:          "Acme Pharma",
		TherapeuticArea: "Immunology",
	}
	if err := brandRepo.Create(b); err != nil {
		log.Fatal("failed to seed brand: ", err)
	}

	c := &model.Campaign{
		Name:         "FY25 Launch - Demo",
		BrandID:      b.ID,
		BusinessUnit: "HCM",
		Status:       model.StatusActive,
	}
	if err := campaignRepo.Create(c); err != nil {
		log.Fatal("failed to seed campaign: ", err)
	}

	ref := 9100
	p := &model.Program{
		Name:        "Patient Consensus #9100",
		CampaignID:  c.ID,
		ProgramType: "Patient Consensus",
		Platform:    "dx",
		ExternalRef: &ref,
	}
	if err := programRepo.Create(p); err != nil {
		log.Fatal("failed to seed program: ", err)
	}

	pl := &model.Placement{
		Name:       "Email Banner A",
		ProgramID:  p.ID,
		Channel:    model.ChannelEmail,
		VeevaCode:  "N12345",
		AdServerID: "DC-98765",
	}
	if err := placementRepo.Create(pl); err != nil {
		log.Fatal("failed to seed placement: ", err)
	}

	fmt.Println("Seeded demo data.")
}
