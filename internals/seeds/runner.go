package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"praktikum_backend/internals/configs"
	users "praktikum_backend/internals/seeds/users"
)

// RunAllSeeds idempoten: aman dijalankan di setiap startup.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	if err := users.SeedAdmin(ctx, db, configs.GetEnv("ADMIN_EMAIL"), configs.GetEnv("ADMIN_PASSWORD"), configs.GetEnv("ADMIN_NAMA", "Administrator")); err != nil {
		return err
	}
	if path := configs.GetEnv("SEED_USERS_FILE"); path != "" {
		n, err := users.SeedUsersFromJSON(ctx, db, path)
		if err != nil {
			return err
		}
		zap.L().Info("seed users selesai", zap.Int("inserted", n))
	}
	return nil
}
