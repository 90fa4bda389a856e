// Package sales calcula las métricas derivadas de ventas cruzando pedidos con el catálogo de diseños.
// Todas las funciones son puras: se recalculan sobre las colecciones completas en cada llamada.
package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/abaya-api/internal/domain/entity"
)

// OtherDesignCode agrupa los pedidos entregados cuyo código no existe en el catálogo.
const OtherDesignCode = "Other / Deleted Design"

// Field campo de Order sobre el que se cuenta frecuencia.
type Field int

const (
	FieldCustomerName Field = iota
	FieldAbayaCode
)

// Totals total cobrado y ganancia real.
type Totals struct {
	Total  decimal.Decimal
	Profit decimal.Decimal
}

// Add suma dos totales (los totales son aditivos sobre particiones de pedidos).
func (t Totals) Add(o Totals) Totals {
	return Totals{Total: t.Total.Add(o.Total), Profit: t.Profit.Add(o.Profit)}
}

// DesignSummary ventas agregadas de un código de diseño.
type DesignSummary struct {
	Code        string
	Count       int
	TotalSales  decimal.Decimal
	TotalProfit decimal.Decimal
}

// MonthlyBucket ventas de un mes calendario.
type MonthlyBucket struct {
	Label string // "Jan 2026"
	Month time.Time
	Total decimal.Decimal
}

// Catalog índice de diseños por código para resolver la referencia blanda Order.AbayaCode.
type Catalog map[string]*entity.Design

// NewCatalog indexa los diseños por código. Si hubiera códigos repetidos gana el primero.
func NewCatalog(designs []*entity.Design) Catalog {
	c := make(Catalog, len(designs))
	for _, d := range designs {
		if d == nil {
			continue
		}
		if _, ok := c[d.Code]; !ok {
			c[d.Code] = d
		}
	}
	return c
}

// Lookup devuelve el diseño del código o nil si fue borrado o nunca existió.
func (c Catalog) Lookup(code string) *entity.Design {
	return c[code]
}

// DistinctCustomers nombres de cliente únicos (igualdad exacta) en orden de aparición.
func DistinctCustomers(orders []*entity.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	out := make([]string, 0)
	for _, o := range orders {
		if _, ok := seen[o.CustomerName]; ok {
			continue
		}
		seen[o.CustomerName] = struct{}{}
		out = append(out, o.CustomerName)
	}
	return out
}

// ComputeTotals total = Σ (entregado ? precio : anticipo);
// ganancia = Σ (precio - costo) solo de entregados con diseño existente.
func ComputeTotals(orders []*entity.Order, catalog Catalog) Totals {
	t := Totals{Total: decimal.Zero, Profit: decimal.Zero}
	for _, o := range orders {
		if !o.IsDelivered {
			t.Total = t.Total.Add(o.Deposit)
			continue
		}
		t.Total = t.Total.Add(o.Price)
		if d := catalog.Lookup(o.AbayaCode); d != nil {
			t.Profit = t.Profit.Add(o.Price.Sub(d.CostPrice))
		}
	}
	return t
}

// ByDesign agrupa los pedidos entregados por código. Los códigos sin diseño van al
// grupo OtherDesignCode con ganancia cero. Los grupos salen en orden de primera aparición.
func ByDesign(orders []*entity.Order, catalog Catalog) []DesignSummary {
	index := make(map[string]int)
	var out []DesignSummary
	for _, o := range orders {
		if !o.IsDelivered {
			continue
		}
		d := catalog.Lookup(o.AbayaCode)
		code := o.AbayaCode
		if d == nil {
			code = OtherDesignCode
		}
		i, ok := index[code]
		if !ok {
			i = len(out)
			index[code] = i
			out = append(out, DesignSummary{Code: code, TotalSales: decimal.Zero, TotalProfit: decimal.Zero})
		}
		out[i].Count++
		out[i].TotalSales = out[i].TotalSales.Add(o.Price)
		if d != nil {
			out[i].TotalProfit = out[i].TotalProfit.Add(o.Price.Sub(d.CostPrice))
		}
	}
	return out
}

// MostFrequent valor del campo con más apariciones entre todos los pedidos.
// En empate gana el primero que alcanzó el máximo en el orden recibido. ok=false si no hay pedidos.
func MostFrequent(orders []*entity.Order, field Field) (value string, ok bool) {
	counts := make(map[string]int)
	var order []string
	for _, o := range orders {
		v := fieldValue(o, field)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	best := -1
	for _, v := range order {
		if counts[v] > best {
			best = counts[v]
			value = v
		}
	}
	return value, best > 0
}

func fieldValue(o *entity.Order, field Field) string {
	if field == FieldAbayaCode {
		return o.AbayaCode
	}
	return o.CustomerName
}

// MonthlySales suma el precio de TODOS los pedidos por mes calendario (UTC) de CreatedAt,
// en orden cronológico. Los pedidos sin fecha se omiten.
func MonthlySales(orders []*entity.Order) []MonthlyBucket {
	index := make(map[time.Time]int)
	var out []MonthlyBucket
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		c := o.CreatedAt.UTC()
		month := time.Date(c.Year(), c.Month(), 1, 0, 0, 0, 0, time.UTC)
		i, ok := index[month]
		if !ok {
			i = len(out)
			index[month] = i
			out = append(out, MonthlyBucket{Label: month.Format("Jan 2006"), Month: month, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(o.Price)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}
