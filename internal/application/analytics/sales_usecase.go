package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/domain/entity"
	"github.com/jhoicas/abaya-api/internal/domain/repository"
	"github.com/jhoicas/abaya-api/internal/domain/sales"
)

// SalesUseCase resumen de ventas (página Sales) y su exportación a PDF.
type SalesUseCase struct {
	orders   repository.OrderRepository
	designs  repository.DesignRepository
	renderer SalesReportRenderer
	shopName string
	now      func() time.Time
}

// NewSalesUseCase construye el caso de uso. now nil → time.Now.
func NewSalesUseCase(
	orders repository.OrderRepository,
	designs repository.DesignRepository,
	renderer SalesReportRenderer,
	shopName string,
	now func() time.Time,
) *SalesUseCase {
	if now == nil {
		now = time.Now
	}
	return &SalesUseCase{orders: orders, designs: designs, renderer: renderer, shopName: shopName, now: now}
}

// GetSummary total cobrado, ganancia y desglose por diseño.
func (uc *SalesUseCase) GetSummary(ctx context.Context) (*dto.SalesSummaryDTO, error) {
	snap, err := loadSnapshot(ctx, uc.orders, uc.designs)
	if err != nil {
		return nil, fmt.Errorf("ventas: %w", err)
	}
	summary := summarize(snap.orders, sales.NewCatalog(snap.designs))
	return &summary, nil
}

// RenderPDF genera el reporte de ventas en PDF.
func (uc *SalesUseCase) RenderPDF(ctx context.Context) ([]byte, error) {
	snap, err := loadSnapshot(ctx, uc.orders, uc.designs)
	if err != nil {
		return nil, fmt.Errorf("ventas: %w", err)
	}
	report := SalesReport{
		ShopName:    uc.shopName,
		GeneratedAt: uc.now(),
		Summary:     summarize(snap.orders, sales.NewCatalog(snap.designs)),
		Monthly:     toMonthlyDTO(sales.MonthlySales(snap.orders)),
		OrderCount:  len(snap.orders),
	}
	return uc.renderer.RenderSalesReport(ctx, report)
}

func summarize(orders []*entity.Order, catalog sales.Catalog) dto.SalesSummaryDTO {
	totals := sales.ComputeTotals(orders, catalog)
	rows := sales.ByDesign(orders, catalog)
	out := dto.SalesSummaryDTO{
		Total:    totals.Total,
		Profit:   totals.Profit,
		ByDesign: make([]dto.DesignSalesDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.ByDesign = append(out.ByDesign, dto.DesignSalesDTO{
			Code:        r.Code,
			Count:       r.Count,
			TotalSales:  r.TotalSales,
			TotalProfit: r.TotalProfit,
		})
	}
	return out
}
