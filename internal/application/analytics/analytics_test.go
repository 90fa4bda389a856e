package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/abaya-api/internal/application/analytics"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/sales"
	"github.com/jhoicas/abaya-api/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func order(id, customer, code string, price, deposit int64, delivered bool, age time.Duration) *entity.Order {
	status := entity.StatusNew
	if delivered {
		status = entity.StatusDelivered
	}
	return &entity.Order{
		ID: id, CustomerName: customer, AbayaCode: code,
		Price: dec(price), Deposit: dec(deposit),
		IsDelivered: delivered, Status: status, CreatedAt: now.Add(-age),
	}
}

// fixture: pedidos del más reciente al más antiguo, como los entrega el repositorio.
func fixture() ([]*entity.Order, []*entity.Design) {
	day := 24 * time.Hour
	orders := []*entity.Order{
		order("o1", "Aisha", "A-1", 50, 10, true, 0),
		order("o2", "Mona", "B-2", 80, 30, false, 5*day),
		order("o3", "Aisha", "A-1", 60, 0, false, 20*day),
		order("o4", "Sara", "GONE", 40, 0, true, 25*day),
		order("o5", "Aisha", "B-2", 70, 0, true, 40*day),
		order("o6", "Hind", "A-1", 10, 5, false, 41*day),
	}
	designs := []*entity.Design{
		{ID: "d1", Code: "A-1", CostPrice: dec(30), SellingPrice: dec(50), Image: "img-a"},
		{ID: "d2", Code: "B-2", CostPrice: dec(50), SellingPrice: dec(80), Image: "img-b"},
	}
	return orders, designs
}

func repos(orders []*entity.Order, designs []*entity.Design) (*mocks.MockOrderRepository, *mocks.MockDesignRepository) {
	or := new(mocks.MockOrderRepository)
	dr := new(mocks.MockDesignRepository)
	or.On("List", mock.Anything, mock.Anything).Return(orders, nil)
	dr.On("List", mock.Anything, mock.Anything).Return(designs, nil)
	return or, dr
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Summary(t *testing.T) {
	or, dr := repos(fixture())
	uc := analytics.NewDashboardUseCase(or, dr, clock)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, out.TotalOrders)
	assert.Equal(t, 4, out.TotalCustomers)
	assert.Equal(t, 2, out.TotalDesigns)
	// total: 50 + 30 + 0 + 40 + 70 + 5 = 195; ganancia: (50-30) + 0 + (70-50) = 40
	assert.True(t, out.TotalSales.Equal(dec(195)), out.TotalSales.String())
	assert.True(t, out.TotalProfit.Equal(dec(40)), out.TotalProfit.String())
	assert.Equal(t, "Aisha", out.MostActiveCustomer)
	assert.Equal(t, "A-1", out.MostOrderedDesign)
	require.NotNil(t, out.TopDesign)
	assert.Equal(t, "img-a", out.TopDesign.Image)

	require.Len(t, out.RecentOrders, 5)
	assert.Equal(t, "o1", out.RecentOrders[0].ID, "el más reciente primero")
	assert.Equal(t, entity.StatusInProgress, out.RecentOrders[1].DisplayStatus)
	assert.Equal(t, entity.StatusDelayed, out.RecentOrders[2].DisplayStatus)

	require.Len(t, out.MonthlySales, 2)
	assert.Equal(t, "Feb 2026", out.MonthlySales[0].Month)
	assert.Equal(t, "Mar 2026", out.MonthlySales[1].Month)
}

func TestDashboard_Empty(t *testing.T) {
	or, dr := repos([]*entity.Order{}, []*entity.Design{})
	out, err := analytics.NewDashboardUseCase(or, dr, clock).GetSummary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, out.TotalOrders)
	assert.True(t, out.TotalSales.IsZero())
	assert.Equal(t, "-", out.MostActiveCustomer)
	assert.Equal(t, "-", out.MostOrderedDesign)
	assert.Nil(t, out.TopDesign)
	assert.Empty(t, out.RecentOrders)
	assert.NotNil(t, out.MonthlySales)
}

func TestDashboard_TopDesignUnresolved(t *testing.T) {
	orders := []*entity.Order{order("o1", "Aisha", "GONE", 10, 0, true, 0)}
	or, dr := repos(orders, []*entity.Design{})
	out, err := analytics.NewDashboardUseCase(or, dr, clock).GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GONE", out.MostOrderedDesign)
	assert.Nil(t, out.TopDesign)
}

func TestDashboard_StoreError(t *testing.T) {
	or := new(mocks.MockOrderRepository)
	dr := new(mocks.MockDesignRepository)
	boom := errors.New("timeout")
	or.On("List", mock.Anything, mock.Anything).Return(nil, boom)
	dr.On("List", mock.Anything, mock.Anything).Return([]*entity.Design{}, nil)

	_, err := analytics.NewDashboardUseCase(or, dr, clock).GetSummary(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

type captureRenderer struct {
	got analytics.SalesReport
}

func (r *captureRenderer) RenderSalesReport(_ context.Context, report analytics.SalesReport) ([]byte, error) {
	r.got = report
	return []byte("%PDF-fake"), nil
}

func TestSales_SummaryByDesign(t *testing.T) {
	or, dr := repos(fixture())
	uc := analytics.NewSalesUseCase(or, dr, &captureRenderer{}, "Abaya", clock)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec(195)))
	assert.True(t, out.Profit.Equal(dec(40)))

	require.Len(t, out.ByDesign, 3)
	assert.Equal(t, "A-1", out.ByDesign[0].Code)
	assert.Equal(t, 1, out.ByDesign[0].Count)
	assert.True(t, out.ByDesign[0].TotalProfit.Equal(dec(20)))
	assert.Equal(t, sales.OtherDesignCode, out.ByDesign[1].Code)
	assert.True(t, out.ByDesign[1].TotalSales.Equal(dec(40)))
	assert.True(t, out.ByDesign[1].TotalProfit.IsZero())
	assert.Equal(t, "B-2", out.ByDesign[2].Code)
}

func TestSales_RenderPDFPassesReport(t *testing.T) {
	or, dr := repos(fixture())
	renderer := &captureRenderer{}
	uc := analytics.NewSalesUseCase(or, dr, renderer, "Abaya", clock)

	pdf, err := uc.RenderPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "Abaya", renderer.got.ShopName)
	assert.Equal(t, 6, renderer.got.OrderCount)
	assert.True(t, renderer.got.GeneratedAt.Equal(now))
	assert.Len(t, renderer.got.Summary.ByDesign, 3)
	assert.Len(t, renderer.got.Monthly, 2)
}
