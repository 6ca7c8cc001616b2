// Command seed wipes and repopulates the store with demo users, memos and
// invoices for local development.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"docledger/internal/config"
	"docledger/internal/domain/entities"
	"docledger/internal/infrastructure/db"
)

type demoUser struct {
	name     string
	lastname string
	username string
	password string
	category string
}

var demoUsers = []demoUser{
	{"Alice", "Stone", "alice", "alice-pw", "Wholesale"},
	{"Bruno", "Vega", "bruno", "bruno-pw", "Designer"},
	{"Chandra", "Iyer", "chandra", "chandra-pw", "Individual"},
	{"Dana", "Okafor", "dana", "dana-pw", "Other"},
}

var demoCompanies = []string{"Acme Gems", "Brightstone Ltd", "Crown Jewels Co"}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()
	ctx := context.Background()

	conn, err := db.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.Migrate(conn); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate schema")
	}
	if err := db.SeedCategories(conn); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed categories")
	}

	// Start from a clean slate, documents first so no FK is left dangling.
	for _, model := range []interface{}{&db.MemoModel{}, &db.InvoiceModel{}, &db.UserModel{}} {
		if err := conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			logger.Fatal().Err(err).Msg("failed to truncate table")
		}
	}

	categoryRepo := db.NewCategoryRepository(conn)
	userRepo := db.NewUserRepository(conn)
	memoRepo := db.NewMemoRepository(conn)
	invoiceRepo := db.NewInvoiceRepository(conn)

	var userIDs []uint
	for _, du := range demoUsers {
		category, err := categoryRepo.FindByName(ctx, du.category)
		if err != nil {
			logger.Fatal().Err(err).Str("category", du.category).Msg("category lookup failed")
		}
		user := entities.NewUser(du.name, du.lastname, du.username, du.password, category.ID)
		validated, err := entities.NewValidatedUser(user)
		if err != nil {
			logger.Fatal().Err(err).Msg("demo user invalid")
		}
		if err := validated.HashPassword(); err != nil {
			logger.Fatal().Err(err).Msg("hashing failed")
		}
		created, err := userRepo.Create(ctx, validated)
		if err != nil {
			logger.Fatal().Err(err).Str("username", du.username).Msg("user insert failed")
		}
		userIDs = append(userIDs, created.ID)
	}

	memoCount := 0
	invoiceCount := 0
	for i := 0; i < 12; i++ {
		owner := userIDs[i%len(userIDs)]
		company := demoCompanies[i%len(demoCompanies)]

		memo := entities.NewMemo(
			fmt.Sprintf("Consignment memo %d", i+1),
			fmt.Sprintf("MEMO-%04d", i+1),
			"2027-01-31",
			"14 Pearl Street, Antwerp",
			"220 Fifth Avenue, New York",
			fmt.Sprintf("Lot of %d round brilliants, G/VS2", i+3),
			float64(2500+i*750),
			"Net 30",
			company,
			owner,
		)
		vm, err := entities.NewValidatedMemo(memo)
		if err != nil {
			logger.Fatal().Err(err).Msg("demo memo invalid")
		}
		if _, err := memoRepo.Create(ctx, vm); err != nil {
			logger.Fatal().Err(err).Msg("memo insert failed")
		}
		memoCount++

		invoice := entities.NewInvoice(
			fmt.Sprintf("Sale invoice %d", i+1),
			fmt.Sprintf("INV-%04d", i+1),
			"14 Pearl Street, Antwerp",
			"220 Fifth Avenue, New York",
			fmt.Sprintf("%d ct melee parcel", i+1),
			float64(1800+i*500),
			company,
			owner,
		)
		vi, err := entities.NewValidatedInvoice(invoice)
		if err != nil {
			logger.Fatal().Err(err).Msg("demo invoice invalid")
		}
		if _, err := invoiceRepo.Create(ctx, vi); err != nil {
			logger.Fatal().Err(err).Msg("invoice insert failed")
		}
		invoiceCount++
	}

	logger.Info().
		Int("users", len(userIDs)).
		Int("memos", memoCount).
		Int("invoices", invoiceCount).
		Msg("seeding complete")
}
