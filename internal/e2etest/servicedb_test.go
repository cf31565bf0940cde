package service_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/MikeRez0/studiodesk/internal/adapter/config"
	"github.com/MikeRez0/studiodesk/internal/adapter/metrics"
	"github.com/MikeRez0/studiodesk/internal/adapter/storage"
	"github.com/MikeRez0/studiodesk/internal/adapter/storage/repository"
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/service"
	"github.com/MikeRez0/studiodesk/internal/e2etest/testdb"
	"github.com/govalues/decimal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var dbtest *testdb.TestDBInstance

func setup() {
	var err error
	dbtest, err = testdb.NewTestDBInstance()
	if err != nil && !errors.Is(err, testdb.ErrNoDatabase) {
		fmt.Println(err)
		os.Exit(1)
	}
}

func shutdown() {
	if dbtest != nil {
		dbtest.Down()
	}
}

func TestMain(m *testing.M) {
	setup()
	code := m.Run()
	shutdown()
	os.Exit(code)
}

func clock() time.Time {
	return time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}

// getDeps migrates and empties the test database, seeds the catalog and
// returns a service backed by PostgreSQL.
func getDeps(t *testing.T) (*service.Service, *repository.Repository) {
	t.Helper()

	if dbtest == nil {
		t.Skip("TEST_DATABASE_URI is not set")
	}

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, &config.Database{DSN: dbtest.DSN})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.RunMigrations())
	require.NoError(t, dbtest.Reset(ctx))
	require.NoError(t, dbtest.Exec(ctx,
		"INSERT INTO clients (id, name, phone) VALUES (4, 'Zoë Studio', '+33 1 23 45 67 89')"))
	require.NoError(t, dbtest.Exec(ctx,
		"INSERT INTO services (id, title, unit) VALUES (1, 'Mixing', 'track'), (2, 'Mastering', 'track')"))

	repo, err := repository.NewRepository(db)
	require.NoError(t, err)

	observer, err := metrics.NewOrderMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	svc, err := service.NewService(repo, repo, observer, zap.NewNop(), service.WithClock(clock))
	require.NoError(t, err)

	return svc, repo
}

func newOrder(realisation, delivery string, lines ...*domain.OrderLine) *domain.Order {
	return &domain.Order{
		RealisationDate: day(realisation),
		DeliveryDate:    day(delivery),
		ClientID:        4,
		Lines:           lines,
	}
}

func TestServiceDB_ConcurrentAdmission(t *testing.T) {
	svc, repo := getDeps(t)

	const attempts = 25
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	reasons := make(map[domain.CapacityReason]int)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrder(context.Background(), newOrder("2025-06-01", "2025-06-05"))

			mu.Lock()
			defer mu.Unlock()
			var capErr *domain.CapacityError
			switch {
			case err == nil:
				admitted++
			case errors.As(err, &capErr):
				reasons[capErr.Reason]++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, domain.MaxOrdersPerRealisationDate, admitted)
	assert.Equal(t, attempts-domain.MaxOrdersPerRealisationDate, reasons[domain.ReasonRealisationCapacity])

	usage, err := repo.CountOrdersByDates(context.Background(), day("2025-06-01"), day("2025-06-05"))
	require.NoError(t, err)
	assert.Equal(t, domain.MaxOrdersPerRealisationDate, usage.Realisation)
	assert.Equal(t, domain.MaxOrdersPerRealisationDate, usage.Delivery)
}

func TestServiceDB_DeliveryCeilingAndEdits(t *testing.T) {
	svc, repo := getDeps(t)
	ctx := context.Background()

	for i := 0; i < domain.MaxOrdersPerDeliveryDate; i++ {
		realisation := day("2025-06-01").AddDate(0, 0, i).Format(domain.DateLayout)
		_, err := svc.CreateOrder(ctx, newOrder(realisation, "2025-07-01"))
		require.NoError(t, err)
	}

	_, err := svc.CreateOrder(ctx, newOrder("2025-06-20", "2025-07-01"))
	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, domain.ReasonDeliveryCapacity, capErr.Reason)

	other, err := svc.CreateOrder(ctx, newOrder("2025-06-20", "2025-07-02"))
	require.NoError(t, err)

	_, err = svc.UpdateOrder(ctx, other.ID, domain.OrderPatch{DeliveryDate: ptr(day("2025-07-01"))})
	require.NoError(t, err)

	usage, err := repo.CountOrdersByDates(ctx, day("2025-06-20"), day("2025-07-01"))
	require.NoError(t, err)
	assert.Equal(t, domain.MaxOrdersPerDeliveryDate+1, usage.Delivery)
}

func TestServiceDB_CreateIsAtomic(t *testing.T) {
	svc, _ := getDeps(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, newOrder("2025-06-01", "2025-06-05",
		&domain.OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("100")},
		&domain.OrderLine{ServiceID: 1, Quantity: 2, UnitPrice: decimal.MustParse("100")},
	))
	assert.ErrorIs(t, err, domain.ErrDuplicateLine)

	orders, err := svc.ListOrders(ctx, domain.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)

	lines, err := svc.ListAllLines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestServiceDB_InvoiceLifecycle(t *testing.T) {
	svc, _ := getDeps(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, newOrder("2025-06-01", "2025-06-05",
		&domain.OrderLine{ServiceID: 2, Quantity: 1, UnitPrice: decimal.MustParse("120000")},
		&domain.OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("10")},
	))
	require.NoError(t, err)

	_, created, err := svc.UpsertLine(ctx, &domain.OrderLine{
		OrderID: order.ID, ServiceID: 1, Quantity: 2, UnitPrice: decimal.MustParse("50000"),
	})
	require.NoError(t, err)
	assert.False(t, created)

	inv, err := svc.BuildInvoice(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "Zoë Studio", inv.Client.Name)
	assert.Equal(t, "Mixing", inv.Lines[0].Description)
	assert.Equal(t, 0, inv.Lines[0].Amount.Cmp(decimal.MustParse("100000")))
	assert.Equal(t, 0, inv.Total.Cmp(decimal.MustParse("220000")))

	list, err := svc.ListInvoices(ctx, "zoe")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	revenue, err := svc.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.Equal(t, 0, revenue[0].Revenue.Cmp(decimal.MustParse("220000")))

	require.NoError(t, svc.DeleteOrder(ctx, order.ID))

	lines, err := svc.ListLines(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = svc.BuildInvoice(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
	assert.ErrorIs(t, svc.DeleteOrder(ctx, order.ID), domain.ErrDataNotFound)
}

func TestServiceDB_CatalogReferences(t *testing.T) {
	svc, _ := getDeps(t)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, &domain.Order{
		RealisationDate: day("2025-06-01"),
		DeliveryDate:    day("2025-06-05"),
		ClientID:        99,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownClient)

	order, err := svc.CreateOrder(ctx, newOrder("2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	_, _, err = svc.UpsertLine(ctx, &domain.OrderLine{OrderID: order.ID, ServiceID: 9, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnknownService)

	_, _, err = svc.UpsertLine(ctx, &domain.OrderLine{OrderID: order.ID + 100, ServiceID: 1, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnknownOrder)

	_, created, err := svc.UpsertLine(ctx, &domain.OrderLine{OrderID: order.ID, ServiceID: 1, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestServiceDB_InterruptedDeleteKeepsLines(t *testing.T) {
	svc, _ := getDeps(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, newOrder("2025-06-01", "2025-06-05",
		&domain.OrderLine{ServiceID: 1, Quantity: 2, UnitPrice: decimal.MustParse("50000")},
		&domain.OrderLine{ServiceID: 2, Quantity: 1, UnitPrice: decimal.MustParse("120000")},
	))
	require.NoError(t, err)

	// the lines go first, then the order row fails to delete
	require.NoError(t, dbtest.Exec(ctx, `CREATE OR REPLACE FUNCTION refuse_order_delete() RETURNS trigger AS $$
BEGIN
	RAISE EXCEPTION 'order delete refused';
END;
$$ LANGUAGE plpgsql`))
	require.NoError(t, dbtest.Exec(ctx,
		"CREATE TRIGGER refuse_order_delete BEFORE DELETE ON orders FOR EACH ROW EXECUTE FUNCTION refuse_order_delete()"))
	t.Cleanup(func() {
		_ = dbtest.Exec(context.Background(), "DROP TRIGGER IF EXISTS refuse_order_delete ON orders")
		_ = dbtest.Exec(context.Background(), "DROP FUNCTION IF EXISTS refuse_order_delete()")
	})

	err = svc.DeleteOrder(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrTransactionFailure)

	lines, err := svc.ListLines(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	inv, err := svc.BuildInvoice(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Total.Cmp(decimal.MustParse("220000")))
}

func TestServiceDB_ConcurrentEdits(t *testing.T) {
	svc, repo := getDeps(t)
	ctx := context.Background()
	require.NoError(t, dbtest.Exec(ctx, "INSERT INTO clients (id, name, phone) VALUES (5, 'Echo Room', '')"))

	order, err := svc.CreateOrder(ctx, newOrder("2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	patches := []domain.OrderPatch{
		{ClientID: ptr(uint64(5))},
		{RealisationDate: ptr(day("2025-06-10"))},
		{DeliveryDate: ptr(day("2025-06-12"))},
	}

	var wg sync.WaitGroup
	for _, patch := range patches {
		wg.Add(1)
		go func(patch domain.OrderPatch) {
			defer wg.Done()
			_, err := svc.UpdateOrder(ctx, order.ID, patch)
			assert.NoError(t, err)
		}(patch)
	}
	wg.Wait()

	stored, err := repo.ReadOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), stored.ClientID)
	assert.Equal(t, day("2025-06-10"), stored.RealisationDate)
	assert.Equal(t, day("2025-06-12"), stored.DeliveryDate)
}

func TestServiceDB_InvoiceDuringDelete(t *testing.T) {
	svc, _ := getDeps(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		order, err := svc.CreateOrder(ctx, newOrder("2025-06-01", "2025-06-05",
			&domain.OrderLine{ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("10")},
			&domain.OrderLine{ServiceID: 2, Quantity: 1, UnitPrice: decimal.MustParse("20")},
		))
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.DeleteOrder(ctx, order.ID))
		}()
		go func() {
			defer wg.Done()
			inv, err := svc.BuildInvoice(ctx, order.ID)
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrDataNotFound)
				return
			}
			assert.Len(t, inv.Lines, 2)
			assert.Equal(t, 0, inv.Total.Cmp(decimal.MustParse("30")))
		}()
		wg.Wait()
	}
}

func TestServiceDB_PricePrecision(t *testing.T) {
	svc, _ := getDeps(t)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, newOrder("2025-06-01", "2025-06-05"))
	require.NoError(t, err)

	_, _, err = svc.UpsertLine(ctx, &domain.OrderLine{
		OrderID: order.ID, ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("10.555"),
	})
	assert.ErrorIs(t, err, domain.ErrPricePrecision)

	saved, _, err := svc.UpsertLine(ctx, &domain.OrderLine{
		OrderID: order.ID, ServiceID: 1, Quantity: 1, UnitPrice: decimal.MustParse("10.55"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, saved.UnitPrice.Cmp(decimal.MustParse("10.55")))

	_, _, err = svc.UpsertLine(ctx, &domain.OrderLine{
		OrderID: order.ID, ServiceID: 2, Quantity: 1, UnitPrice: decimal.MustParse("10000000000000000"),
	})
	assert.ErrorIs(t, err, domain.ErrPriceTooLarge)
}
