package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/abaya-api/internal/application/dto"
)

// SalesReport datos del reporte de ventas que se imprime en PDF.
type SalesReport struct {
	ShopName    string
	GeneratedAt time.Time
	Summary     dto.SalesSummaryDTO
	Monthly     []dto.MonthlySalesDTO
	OrderCount  int
}

// SalesReportRenderer genera la representación PDF del reporte.
type SalesReportRenderer interface {
	RenderSalesReport(ctx context.Context, report SalesReport) ([]byte, error)
}
