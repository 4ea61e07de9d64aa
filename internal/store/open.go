package store

import (
	"fmt"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/config"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"go.uber.org/zap"
)

// FromConfig builds the backend selected by STORE_DRIVER. The Mongo driver
// expects config.InitMongoDB to have run.
func FromConfig(cfg *config.Config) (Store, error) {
	var s Store
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		if config.MongoDB == nil {
			return nil, fmt.Errorf("mongo store requested but MongoDB is not initialized")
		}
		s = NewMongoStore(config.MongoDB, cfg.BeneficiaryCollection, cfg.ActivityCollection)
	case config.StoreDriverSQLite:
		sqlite, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s = sqlite
	case config.StoreDriverMemory:
		s = NewMemory()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	logging.Logger.Info("remote store ready", zap.String("driver", cfg.StoreDriver))
	return Instrument(s, cfg.StoreDriver), nil
}
