package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/auth"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/config"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/models"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/store"
	"go.uber.org/zap"
)

func main() {
	hash := flag.String("hash", "", "print the bcrypt hash of the given password for ADMIN_PASSWORD_HASH and exit")
	force := flag.Bool("force", false, "seed even when the store already has beneficiaries")
	flag.Parse()

	if *hash != "" {
		h, err := auth.HashPassword(*hash)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to hash password:", err)
			os.Exit(1)
		}
		fmt.Println(h)
		return
	}

	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.AppConfig

	if cfg.StoreDriver == config.StoreDriverMongo {
		if err := config.InitMongoDB(); err != nil {
			logging.Logger.Fatal("failed to initialize MongoDB", zap.Error(err))
		}
	}

	st, err := store.FromConfig(cfg)
	if err != nil {
		logging.Logger.Fatal("failed to open store", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, st, *force); err != nil {
		logging.Logger.Fatal("seeding failed", zap.Error(err))
	}

	if err := st.Close(ctx); err != nil {
		logging.Logger.Warn("failed to close store", zap.Error(err))
	}
	config.CloseMongoDB(ctx)
}

func seed(ctx context.Context, st store.Store, force bool) error {
	existing, err := st.Beneficiaries().SelectAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 && !force {
		logging.Logger.Info("store already has data, skipping", zap.Int("beneficiaries", len(existing)))
		return nil
	}

	ids := make([]string, 0, len(demoBeneficiaries))
	for _, form := range demoBeneficiaries {
		row, err := st.Beneficiaries().Insert(ctx, form.Beneficiary())
		if err != nil {
			return fmt.Errorf("insert beneficiary %q: %w", form.Name, err)
		}
		ids = append(ids, row.ID)
	}

	now := time.Now()
	activities := []models.Activity{
		models.ActivityForm{
			Title:        "Taller de pintura",
			Date:         now.AddDate(0, 0, 3).Format(models.DateLayout),
			Time:         "10:00",
			Location:     "Casa de la Cultura",
			Description:  "Acuarela para principiantes",
			Participants: ids[:2],
			Status:       models.StatusScheduled,
		}.Activity(models.ActivityCultural),
		models.ActivityForm{
			Title:        "Bailoterapia",
			Date:         now.AddDate(0, 0, 7).Format(models.DateLayout),
			Time:         "16:00",
			Location:     "Plaza Bolívar",
			Participants: ids,
			Status:       models.StatusScheduled,
		}.Activity(models.ActivityCultural),
		models.ActivityForm{
			Title:        "Rifa de fin de mes",
			Prize:        "Cesta de alimentos",
			Date:         now.AddDate(0, 0, 14).Format(models.DateLayout),
			Participants: ids,
			Status:       models.StatusActive,
		}.Activity(models.ActivityRaffle),
	}
	for _, a := range activities {
		if _, err := st.Activities().Insert(ctx, a); err != nil {
			return fmt.Errorf("insert activity %q: %w", a.Title, err)
		}
	}

	if err := st.Beneficiaries().SetNutritionFlag(ctx, ids[:1], true); err != nil {
		return fmt.Errorf("set nutrition flag: %w", err)
	}

	logging.Logger.Info("demo data seeded",
		zap.Int("beneficiaries", len(ids)),
		zap.Int("activities", len(activities)))
	return nil
}

var demoBeneficiaries = []models.BeneficiaryForm{
	{
		Name:             "María Rodríguez",
		Age:              72,
		BirthDate:        "1952-03-14",
		NationalID:       "V-4567890",
		Phone:            "+58 414 1234567",
		Address:          "Av. Urdaneta, Caracas",
		Location:         &models.Coordinate{Lat: 10.5061, Lng: -66.9146},
		EmergencyContact: "Carmen Rodríguez",
		Pathologies:      []string{"Hipertensión"},
		Medications:      []string{"Losartán"},
		Status:           models.BeneficiaryActive,
	},
	{
		Name:             "José Hernández",
		Age:              80,
		BirthDate:        "1944-11-02",
		NationalID:       "V-2345678",
		Phone:            "+58 412 7654321",
		Address:          "Calle Real de Sabana Grande, Caracas",
		EmergencyContact: "Luis Hernández",
		Disabilities:     []string{"Movilidad reducida"},
		Status:           models.BeneficiaryActive,
	},
	{
		Name:       "Carmen Pérez",
		Age:        68,
		NationalID: "V-6789012",
		Address:    "Urb. El Paraíso, Caracas",
		Status:     models.BeneficiaryInactive,
	},
}
