package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/abaya-api/internal/application/analytics"
	"github.com/jhoicas/abaya-api/internal/application/usecase"
	"github.com/jhoicas/abaya-api/pkg/logger"
)

// ReportHandler vistas derivadas: clientes, dashboard y ventas.
type ReportHandler struct {
	customers *usecase.CustomerUseCase
	dashboard *analytics.DashboardUseCase
	sales     *analytics.SalesUseCase
	log       *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(
	customers *usecase.CustomerUseCase,
	dashboard *analytics.DashboardUseCase,
	sales *analytics.SalesUseCase,
	log *logger.Logger,
) *ReportHandler {
	return &ReportHandler{customers: customers, dashboard: dashboard, sales: sales, log: log}
}

// Customers godoc
// @Summary      Clientes distintos (derivados de los pedidos)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CustomersResponse
// @Router       /api/customers [get]
func (h *ReportHandler) Customers(c *fiber.Ctx) error {
	out, err := h.customers.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      KPIs del panel (admin)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// SalesSummary godoc
// @Summary      Total cobrado, ganancia y ventas por diseño (admin)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sales/summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	out, err := h.sales.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// SalesPDF godoc
// @Summary      Reporte de ventas en PDF (admin)
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sales/report.pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	pdf, err := h.sales.RenderPDF(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="sales-report.pdf"`)
	return c.Send(pdf)
}
