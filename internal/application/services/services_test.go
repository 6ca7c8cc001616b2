package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"docledger/internal/application/command"
	"docledger/internal/domain/repositories"
	"docledger/internal/infrastructure/db"
	"docledger/internal/infrastructure/sessions"
)

// recordingNotifier captures notifications and optionally fails, standing in
// for SendGrid.
type recordingNotifier struct {
	mu    sync.Mutex
	err   error
	calls []notification
}

type notification struct {
	recipient string
	subject   string
	body      string
}

func (n *recordingNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{recipient: recipient, subject: subject, body: body})
	return n.err
}

func (n *recordingNotifier) sent() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.calls...)
}

type fixture struct {
	auth      *AuthService
	memos     *MemoService
	invoices  *InvoiceService
	companies *CompanyService
	category  *CategoryService
	notifier  *recordingNotifier
	userRepo  repositories.UserRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	require.NoError(t, db.SeedCategories(conn))

	log := zerolog.Nop()
	userRepo := db.NewUserRepository(conn)
	categoryRepo := db.NewCategoryRepository(conn)
	memoRepo := db.NewMemoRepository(conn)
	invoiceRepo := db.NewInvoiceRepository(conn)
	manager := sessions.NewManager(sessions.NewMemoryStore(), "test-secret", time.Hour)
	notifier := &recordingNotifier{}

	return &fixture{
		auth:      NewAuthService(userRepo, categoryRepo, manager, log),
		memos:     NewMemoService(memoRepo, notifier, log),
		invoices:  NewInvoiceService(invoiceRepo, notifier, log),
		companies: NewCompanyService(memoRepo, invoiceRepo),
		category:  NewCategoryService(categoryRepo),
		notifier:  notifier,
		userRepo:  userRepo,
	}
}

func (f *fixture) signup(t *testing.T, username string) (userID uint, token string) {
	t.Helper()
	user, token, err := f.auth.Signup(context.Background(), &command.SignupCommand{
		Username:   username,
		Password:   "pw-" + username,
		Name:       "Test",
		Lastname:   "User",
		CategoryID: 1,
	})
	require.NoError(t, err)
	return user.ID, token
}

func (f *fixture) createMemo(t *testing.T, userID uint, number, company string) uint {
	t.Helper()
	memo, err := f.memos.Create(context.Background(), userID, &command.CreateMemoCommand{
		Title:             "Memo " + number,
		MemoNumber:        number,
		ExpiryDate:        "2027-01-31",
		WholesalerDetails: "w",
		BuyerDetails:      "b",
		Items:             "items",
		TotalValue:        1000,
		Company:           company,
	})
	require.NoError(t, err)
	return memo.ID
}
