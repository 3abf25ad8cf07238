package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"StockDLC/internal/config"
	"StockDLC/internal/handlers"
	"StockDLC/internal/model"
	"StockDLC/internal/repo"
	"StockDLC/internal/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.October, 25, 9, 30, 0, 0, time.Local)

func testConfig() *config.Config {
	return &config.Config{
		BaseURL:          "localhost:0",
		CORSOrigins:      []string{"http://localhost:5173"},
		DefaultCheckDays: 7,
	}
}

// newTestServer поднимает роутер поверх настоящего сервиса и SQLite во временном каталоге.
func newTestServer(t *testing.T) (*httptest.Server, *service.InventoryService) {
	t.Helper()
	db, err := repo.InitDB(context.Background(), filepath.Join(t.TempDir(), "api.sqlite3"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(db) })

	svc := service.NewInventoryService(db,
		repo.NewReferenceRepository(db),
		repo.NewItemRepository(db),
		repo.NewWasteLogRepository(db),
		zap.NewNop().Sugar(),
		service.WithClock(func() time.Time { return testNow }),
	)
	h := handlers.NewHandler(svc, zap.NewNop().Sugar(), testConfig(), nil)
	srv := httptest.NewServer(h.Router)
	t.Cleanup(srv.Close)
	return srv, svc
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func dayOffset(n int) string {
	return model.DateOf(testNow).AddDays(n).String()
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

// mockInventory — лёгкий мок сервиса для проверок ошибок хранилища
type mockInventory struct{ mock.Mock }

func (m *mockInventory) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *mockInventory) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockInventory) ListLocations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockInventory) DeleteReference(ctx context.Context, kind model.RefKind, name string) error {
	return m.Called(ctx, kind, name).Error(0)
}
func (m *mockInventory) CreateItem(ctx context.Context, in service.NewItem) (model.ItemRecord, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.ItemRecord), args.Error(1)
}
func (m *mockInventory) ListItems(ctx context.Context) ([]model.ItemRecord, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.ItemRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockInventory) DisposeItem(ctx context.Context, id int64, outcome string) (service.DisposalResult, error) {
	args := m.Called(ctx, id, outcome)
	return args.Get(0).(service.DisposalResult), args.Error(1)
}
func (m *mockInventory) ItemsExpiringWithin(ctx context.Context, days int) ([]model.ItemRecord, error) {
	args := m.Called(ctx, days)
	if v, ok := args.Get(0).([]model.ItemRecord); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockInventory) WasteSummary(ctx context.Context) ([]model.OutcomeCount, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.OutcomeCount); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ handlers.Inventory = (*mockInventory)(nil)
