package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "praktikum_backend/internals/features/users/auth/repository"
	"praktikum_backend/internals/metrics"
)

// StartBlacklistCleanupScheduler menghapus baris token_blacklist yang sudah
// kadaluarsa lebih dari ttlDays hari, sekali sehari sampai ctx dibatalkan.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB, ttlDays int) {
	if ttlDays < 0 {
		ttlDays = 0
	}
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			RunBlacklistCleanup(ctx, db, ttlDays)
			select {
			case <-ctx.Done():
				zap.L().Info("[CLEANUP] scheduler berhenti")
				return
			case <-ticker.C:
			}
		}
	}()
}

func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, ttlDays int) {
	qctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	before := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)
	n, err := authRepo.CleanupExpiredBlacklist(qctx, db, before)
	if err != nil {
		zap.L().Error("[CLEANUP] gagal hapus token kadaluarsa", zap.Error(err))
		return
	}
	metrics.BlacklistPurged.Add(float64(n))
	zap.L().Info("[CLEANUP] token_blacklist dibersihkan", zap.Int64("deleted", n))
}
