package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/sales"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDec(t *testing.T, want int64, got decimal.Decimal, msg ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "esperado %d, obtenido %s %v", want, got.String(), msg)
}

func newOrder(customer, code string, price, deposit int64, delivered bool) *entity.Order {
	return &entity.Order{
		CustomerName: customer,
		AbayaCode:    code,
		Price:        dec(price),
		Deposit:      dec(deposit),
		IsDelivered:  delivered,
		CreatedAt:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func catalogWith(designs ...*entity.Design) sales.Catalog {
	return sales.NewCatalog(designs)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_AnticipoYLuegoEntrega(t *testing.T) {
	cat := catalogWith(&entity.Design{Code: "A1", CostPrice: dec(30)})
	o := newOrder("Aisha", "A1", 50, 10, false)

	got := sales.ComputeTotals([]*entity.Order{o}, cat)
	assertDec(t, 10, got.Total, "pendiente aporta el anticipo")
	assertDec(t, 0, got.Profit, "pendiente no aporta ganancia")

	o.IsDelivered = true
	got = sales.ComputeTotals([]*entity.Order{o}, cat)
	assertDec(t, 50, got.Total)
	assertDec(t, 20, got.Profit)
}

func TestComputeTotals_EntregadoSinDisenoNoAportaGanancia(t *testing.T) {
	got := sales.ComputeTotals([]*entity.Order{newOrder("Mona", "BORRADO", 70, 0, true)}, catalogWith())
	assertDec(t, 70, got.Total)
	assertDec(t, 0, got.Profit)
}

func TestComputeTotals_Vacio(t *testing.T) {
	got := sales.ComputeTotals(nil, nil)
	assertDec(t, 0, got.Total)
	assertDec(t, 0, got.Profit)
}

func TestComputeTotals_Aditivo(t *testing.T) {
	cat := catalogWith(
		&entity.Design{Code: "A1", CostPrice: dec(30)},
		&entity.Design{Code: "B2", CostPrice: dec(45)},
	)
	orders := []*entity.Order{
		newOrder("Aisha", "A1", 50, 10, true),
		newOrder("Mona", "B2", 80, 20, false),
		newOrder("Sara", "B2", 90, 0, true),
		newOrder("Aisha", "ZZ", 60, 15, true),
		newOrder("Huda", "A1", 55, 5, false),
	}
	whole := sales.ComputeTotals(orders, cat)

	for split := 0; split <= len(orders); split++ {
		left := sales.ComputeTotals(orders[:split], cat)
		right := sales.ComputeTotals(orders[split:], cat)
		sum := left.Add(right)
		assert.True(t, whole.Total.Equal(sum.Total), "total partición %d", split)
		assert.True(t, whole.Profit.Equal(sum.Profit), "ganancia partición %d", split)
	}
	assertDec(t, 50+20+90+60+5, whole.Total)
	assertDec(t, 20+45, whole.Profit)
}

// ──────────────────────────────────────────────────────────────────────────────
// ByDesign
// ──────────────────────────────────────────────────────────────────────────────

func TestByDesign_AgrupaEntregadosYBorrados(t *testing.T) {
	cat := catalogWith(&entity.Design{Code: "A1", CostPrice: dec(30)})
	orders := []*entity.Order{
		newOrder("Aisha", "A1", 50, 0, true),
		newOrder("Mona", "X9", 40, 0, true),
		newOrder("Sara", "A1", 60, 0, true),
		newOrder("Huda", "A1", 99, 0, false), // no entregado: se ignora
		newOrder("Noor", "Y7", 35, 0, true),
	}

	got := sales.ByDesign(orders, cat)
	require.Len(t, got, 2)

	assert.Equal(t, "A1", got[0].Code)
	assert.Equal(t, 2, got[0].Count)
	assertDec(t, 110, got[0].TotalSales)
	assertDec(t, 50, got[0].TotalProfit)

	assert.Equal(t, sales.OtherDesignCode, got[1].Code)
	assert.Equal(t, 2, got[1].Count)
	assertDec(t, 75, got[1].TotalSales)
	assertDec(t, 0, got[1].TotalProfit)
}

func TestByDesign_DisenoBorradoPasaAOtros(t *testing.T) {
	design := &entity.Design{Code: "A1", CostPrice: dec(30)}
	orders := []*entity.Order{newOrder("Aisha", "A1", 50, 0, true)}

	before := sales.ByDesign(orders, catalogWith(design))
	require.Len(t, before, 1)
	assert.Equal(t, "A1", before[0].Code)

	after := sales.ByDesign(orders, catalogWith())
	require.Len(t, after, 1)
	assert.Equal(t, sales.OtherDesignCode, after[0].Code)
	assertDec(t, 0, after[0].TotalProfit)
	assert.Equal(t, "A1", orders[0].AbayaCode, "el pedido no se modifica")
}

// ──────────────────────────────────────────────────────────────────────────────
// DistinctCustomers / MostFrequent
// ──────────────────────────────────────────────────────────────────────────────

func TestDistinctCustomers(t *testing.T) {
	orders := []*entity.Order{
		newOrder("Aisha", "A1", 1, 0, false),
		newOrder("Mona", "A1", 1, 0, false),
		newOrder("Aisha", "B2", 1, 0, true),
		newOrder("aisha", "B2", 1, 0, true),
	}
	assert.Equal(t, []string{"Aisha", "Mona", "aisha"}, sales.DistinctCustomers(orders))
	assert.Empty(t, sales.DistinctCustomers(nil))
}

func TestMostFrequent_Cliente(t *testing.T) {
	orders := []*entity.Order{
		newOrder("Mona", "A1", 1, 0, false),
		newOrder("Aisha", "A1", 1, 0, false),
		newOrder("Aisha", "B2", 1, 0, true),
	}
	got, ok := sales.MostFrequent(orders, sales.FieldCustomerName)
	require.True(t, ok)
	assert.Equal(t, "Aisha", got)

	code, ok := sales.MostFrequent(orders, sales.FieldAbayaCode)
	require.True(t, ok)
	assert.Equal(t, "A1", code)
}

func TestMostFrequent_EmpateGanaElPrimero(t *testing.T) {
	orders := []*entity.Order{
		newOrder("Mona", "B2", 1, 0, false),
		newOrder("Aisha", "A1", 1, 0, false),
		newOrder("Aisha", "A1", 1, 0, false),
		newOrder("Mona", "B2", 1, 0, false),
	}
	got, _ := sales.MostFrequent(orders, sales.FieldCustomerName)
	assert.Equal(t, "Mona", got)
}

func TestMostFrequent_SinPedidos(t *testing.T) {
	_, ok := sales.MostFrequent(nil, sales.FieldCustomerName)
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthlySales
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlySales_TodosLosPedidosPorMes(t *testing.T) {
	at := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 10, 0, 0, 0, time.UTC) }
	o1 := newOrder("A", "A1", 50, 0, true)
	o1.CreatedAt = at(2026, 2, 3)
	o2 := newOrder("B", "A1", 30, 10, false)
	o2.CreatedAt = at(2026, 1, 28)
	o3 := newOrder("C", "A1", 20, 0, false)
	o3.CreatedAt = at(2026, 2, 27)
	o4 := newOrder("D", "A1", 99, 0, false)
	o4.CreatedAt = time.Time{}

	got := sales.MonthlySales([]*entity.Order{o1, o2, o3, o4})
	require.Len(t, got, 2)
	assert.Equal(t, "Jan 2026", got[0].Label)
	assertDec(t, 30, got[0].Total, "los no entregados cuentan por precio")
	assert.Equal(t, "Feb 2026", got[1].Label)
	assertDec(t, 70, got[1].Total)
}

func TestNewCatalog_PrimerCodigoGana(t *testing.T) {
	first := &entity.Design{ID: "1", Code: "A1"}
	cat := sales.NewCatalog([]*entity.Design{first, {ID: "2", Code: "A1"}, nil})
	assert.Same(t, first, cat.Lookup("A1"))
	assert.Nil(t, cat.Lookup("nope"))
}
