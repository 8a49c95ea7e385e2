//go:build testutil
// +build testutil

// Package testdb menjalankan Postgres di container untuk test integrasi
// dan menerapkan migrasi goose yang sama dengan produksi.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "praktikum_backend/internals/databases"
)

type Handle struct {
	DB     *gorm.DB
	SQL    *sql.DB
	cancel func()
	stop   func(context.Context) error
}

func (h *Handle) Close() {
	if h.DB != nil {
		database.Close(h.DB)
	}
	if h.SQL != nil {
		_ = h.SQL.Close()
	}
	if h.stop != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = h.stop(ctx)
	}
	if h.cancel != nil {
		h.cancel()
	}
}

func Start(ctx context.Context) (*Handle, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)

	pg, err := postgres.RunContainer(ctx,
		tc.WithImage("postgres:17-alpine"),
		postgres.WithDatabase("praktikum"),
		postgres.WithUsername("praktikum"),
		postgres.WithPassword("praktikum"),
	)
	if err != nil {
		cancel()
		return nil, err
	}
	fail := func(err error) (*Handle, error) {
		_ = pg.Terminate(context.Background())
		cancel()
		return nil, err
	}

	uri, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail(err)
	}

	sqlDB, err := sql.Open("postgres", uri)
	if err != nil {
		return fail(err)
	}
	if err := waitReady(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return fail(err)
	}
	if err := database.Migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return fail(fmt.Errorf("migrate: %w", err))
	}

	db, err := database.Open(uri, gormLogger.Silent)
	if err != nil {
		_ = sqlDB.Close()
		return fail(err)
	}

	return &Handle{DB: db, SQL: sqlDB, cancel: cancel, stop: pg.Terminate}, nil
}

func waitReady(ctx context.Context, db *sql.DB) error {
	dead := time.Now().Add(20 * time.Second)
	for time.Now().Before(dead) {
		if err := db.PingContext(ctx); err == nil {
			return nil
		}
		time.Sleep(200 * time.Millisecond)
	}
	return errors.New("db not ready")
}

// Reset mengosongkan semua tabel domain di antara test.
func (h *Handle) Reset(t *testing.T) {
	t.Helper()
	err := h.DB.Exec(`TRUNCATE users, token_blacklist, praktikum RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("reset db: %v", err)
	}
}

func (h *Handle) CreateUser(t *testing.T, nama, email, role string) uint {
	t.Helper()
	var id uint
	err := h.DB.Raw(
		`INSERT INTO users (nama, email, password, role) VALUES (?, ?, 'x', ?) RETURNING id`,
		nama, email, role,
	).Scan(&id).Error
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return id
}

func (h *Handle) CreatePraktikum(t *testing.T, nama string) uint {
	t.Helper()
	var id uint
	err := h.DB.Raw(
		`INSERT INTO praktikum (praktikum_nama, praktikum_periode, praktikum_tanggal_mulai, praktikum_tanggal_selesai)
		 VALUES (?, 1, now(), now() + interval '90 days') RETURNING praktikum_id`,
		nama,
	).Scan(&id).Error
	if err != nil {
		t.Fatalf("create praktikum: %v", err)
	}
	return id
}

func (h *Handle) CreatePertemuan(t *testing.T, praktikumID uint, urutan int) uint {
	t.Helper()
	var id uint
	err := h.DB.Raw(
		`INSERT INTO pertemuan (pertemuan_praktikum_id, pertemuan_nama, pertemuan_urutan, pertemuan_tanggal)
		 VALUES (?, ?, ?, now()) RETURNING pertemuan_id`,
		praktikumID, fmt.Sprintf("Pertemuan %d", urutan), urutan,
	).Scan(&id).Error
	if err != nil {
		t.Fatalf("create pertemuan: %v", err)
	}
	return id
}
