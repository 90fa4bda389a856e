// Package analytics contiene los casos de uso de reportes: dashboard, resumen de ventas y PDF.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/application/usecase"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"github.com/jhoicas/abaya-api/internal/domain/sales"
)

const (
	recentOrdersLimit = 5
	noValue           = "-"
)

// DashboardUseCase genera los KPIs del panel de administración.
// Pedidos y diseños se cargan en paralelo y todo lo demás se calcula en memoria.
type DashboardUseCase struct {
	orders  repository.OrderRepository
	designs repository.DesignRepository
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso. now nil → time.Now.
func NewDashboardUseCase(orders repository.OrderRepository, designs repository.DesignRepository, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{orders: orders, designs: designs, now: now}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	snap, err := loadSnapshot(ctx, uc.orders, uc.designs)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	catalog := sales.NewCatalog(snap.designs)
	totals := sales.ComputeTotals(snap.orders, catalog)

	out := &dto.DashboardSummaryDTO{
		TotalOrders:        len(snap.orders),
		TotalCustomers:     len(sales.DistinctCustomers(snap.orders)),
		TotalDesigns:       len(snap.designs),
		TotalSales:         totals.Total,
		TotalProfit:        totals.Profit,
		MostActiveCustomer: noValue,
		MostOrderedDesign:  noValue,
		MonthlySales:       toMonthlyDTO(sales.MonthlySales(snap.orders)),
		RecentOrders:       make([]dto.OrderResponse, 0, recentOrdersLimit),
	}
	if name, ok := sales.MostFrequent(snap.orders, sales.FieldCustomerName); ok {
		out.MostActiveCustomer = name
	}
	if code, ok := sales.MostFrequent(snap.orders, sales.FieldAbayaCode); ok {
		out.MostOrderedDesign = code
		if d := catalog.Lookup(code); d != nil {
			out.TopDesign = &dto.TopDesignDTO{Code: d.Code, Image: d.Image}
		}
	}

	// El repositorio entrega los pedidos del más reciente al más antiguo.
	now := uc.now()
	for i := 0; i < len(snap.orders) && i < recentOrdersLimit; i++ {
		out.RecentOrders = append(out.RecentOrders, *usecase.ToOrderResponse(snap.orders[i], now))
	}
	return out, nil
}

func toMonthlyDTO(buckets []sales.MonthlyBucket) []dto.MonthlySalesDTO {
	out := make([]dto.MonthlySalesDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.MonthlySalesDTO{Month: b.Label, Total: b.Total})
	}
	return out
}
