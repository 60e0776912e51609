package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/geocadastro-api/internal/application/dto"
	"github.com/jhoicas/geocadastro-api/internal/application/usecase"
	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

// ClienteHandler maneja el CRUD de registros geolocalizados.
type ClienteHandler struct {
	uc  *usecase.ClienteUseCase
	log *logger.Logger
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, log *logger.Logger) *ClienteHandler {
	return &ClienteHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear registro geolocalizado
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClienteRequest  true  "Datos del registro"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Int64("id", out.ID).Str("unidade", out.Unidade).
		Str("user_id", GetUserID(c)).Str("unidade_usuario", GetUnidade(c)).Msg("cliente creado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar registros
// @Description  Más recientes primero. Una fecha inválida se ignora.
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        unidade  query     string  false  "Unidad"
// @Param        data     query     string  false  "Fecha de cadastro (AAAA-MM-DD)"
// @Success      200      {object}  dto.ClienteListResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var q dto.ClienteListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro por ID
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del registro"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar registro
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "ID del registro"
// @Param        body  body      dto.ClienteRequest  true  "Datos del registro"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Int64("id", id).Str("user_id", GetUserID(c)).Msg("cliente actualizado")
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro
// @Tags         clientes
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Int64("id", id).Str("user_id", GetUserID(c)).Msg("cliente eliminado")
	return c.JSON(dto.MessageResponse{Message: "registro eliminado"})
}

// Validate godoc
// @Summary      Validar registro sin persistir
// @Description  Siempre responde 200; los errores van por campo.
// @Tags         clientes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClienteRequest  true  "Datos del registro"
// @Success      200   {object}  dto.ValidationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes/validar [post]
func (h *ClienteHandler) Validate(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Validate(in); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return respondError(c, h.log, err)
		}
		return c.JSON(dto.ValidationResponse{Valid: false, Errors: verr.Fields})
	}
	return c.JSON(dto.ValidationResponse{Valid: true})
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		verr := &domain.ValidationError{}
		verr.Add("id", "identificador inválido")
		return 0, verr
	}
	return id, nil
}
