package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/abaya-api/internal/application/dto"
	"github.com/jhoicas/abaya-api/internal/application/usecase"
	"github.com/jhoicas/abaya-api/pkg/logger"
)

// DesignHandler maneja el catálogo de diseños (protegido). costPrice se filtra según el rol del token.
type DesignHandler struct {
	uc  *usecase.DesignUseCase
	log *logger.Logger
}

// NewDesignHandler construye el handler.
func NewDesignHandler(uc *usecase.DesignUseCase, log *logger.Logger) *DesignHandler {
	return &DesignHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar diseños
// @Tags         designs
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "búsqueda por código"
// @Param        sort  query  string  false  "createdAt | -createdAt (defecto)"
// @Success      200  {array}   dto.DesignResponse
// @Router       /api/designs [get]
func (h *DesignHandler) List(c *fiber.Ctx) error {
	var q dto.DesignListQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(c.UserContext(), GetRole(c), q)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener diseño por ID
// @Tags         designs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del diseño"
// @Success      200  {object}  dto.DesignResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/designs/{id} [get]
func (h *DesignHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetRole(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear diseño (costPrice solo admin)
// @Tags         designs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDesignRequest  true  "Datos del diseño"
// @Success      201   {object}  dto.DesignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/designs [post]
func (h *DesignHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDesignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetRole(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar diseño (parcial)
// @Tags         designs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del diseño"
// @Param        body  body  dto.UpdateDesignRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.DesignResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/designs/{id} [put]
func (h *DesignHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDesignRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar diseño (admin). Los pedidos no se modifican.
// @Tags         designs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del diseño"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/designs/{id} [delete]
func (h *DesignHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Design deleted"})
}
