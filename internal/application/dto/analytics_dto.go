package dto

import "github.com/shopspring/decimal"

// CustomersResponse salida de GET /api/customers.
type CustomersResponse struct {
	Customers []string `json:"customers"`
	Total     int      `json:"total"`
}

// DesignSalesDTO fila del reporte de ventas por diseño (solo pedidos entregados).
type DesignSalesDTO struct {
	Code        string          `json:"code"`
	Count       int             `json:"count"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalProfit decimal.Decimal `json:"totalProfit"`
}

// SalesSummaryDTO salida de GET /api/sales/summary.
type SalesSummaryDTO struct {
	Total    decimal.Decimal  `json:"total"`
	Profit   decimal.Decimal  `json:"profit"`
	ByDesign []DesignSalesDTO `json:"byDesign"`
}

// MonthlySalesDTO punto de la serie mensual, en orden cronológico.
type MonthlySalesDTO struct {
	Month string          `json:"month"` // ej: "Mar 2026"
	Total decimal.Decimal `json:"total"`
}

// TopDesignDTO diseño más pedido con su imagen.
type TopDesignDTO struct {
	Code  string `json:"code"`
	Image string `json:"image"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalOrders        int               `json:"totalOrders"`
	TotalCustomers     int               `json:"totalCustomers"`
	TotalDesigns       int               `json:"totalDesigns"`
	TotalSales         decimal.Decimal   `json:"totalSales"`
	TotalProfit        decimal.Decimal   `json:"totalProfit"`
	MostActiveCustomer string            `json:"mostActiveCustomer"` // "-" sin pedidos
	MostOrderedDesign  string            `json:"mostOrderedDesign"`  // "-" sin pedidos
	TopDesign          *TopDesignDTO     `json:"topDesign"`          // nil si el código no resuelve
	MonthlySales       []MonthlySalesDTO `json:"monthlySales"`
	RecentOrders       []OrderResponse   `json:"recentOrders"` // 5 más recientes
}
