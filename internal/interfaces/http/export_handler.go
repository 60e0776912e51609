package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/geocadastro-api/internal/application/dto"
	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

const filterDateLayout = "2006-01-02"

// ExportHandler descarga los registros filtrados en el formato pedido.
type ExportHandler struct {
	uc  *export.UseCase
	log *logger.Logger
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.UseCase, log *logger.Logger) *ExportHandler {
	return &ExportHandler{uc: uc, log: log}
}

// Export godoc
// @Summary      Exportar registros
// @Description  Descarga los registros filtrados. Sin formato responde el resumen JSON de lo que se exportaría.
// @Tags         exports
// @Security     Bearer
// @Produce      json,octet-stream
// @Param        unidade      query     string  false  "Unidad"
// @Param        data_inicio  query     string  false  "Fecha inicial (AAAA-MM-DD)"
// @Param        data_fim     query     string  false  "Fecha final (AAAA-MM-DD)"
// @Param        formato      query     string  false  "Formato del archivo"  Enums(excel, csv, pdf, txt)
// @Success      200          {object}  dto.ExportSummaryResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      401          {object}  dto.ErrorResponse
// @Failure      501          {object}  dto.ErrorResponse
// @Router       /api/exports [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	var q dto.ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	filter := export.ParseFilter(q.Unidade, q.DataInicio, q.DataFim)

	if strings.TrimSpace(q.Formato) == "" {
		sum, err := h.uc.Summary(c.UserContext(), filter)
		if err != nil {
			return respondError(c, h.log, err)
		}
		resp := dto.ExportSummaryResponse{
			TotalRegistros: sum.Total,
			Filtros:        dto.ExportFilters{Unidade: string(sum.Filter.Unidade)},
			Unidades:       make([]string, 0, len(sum.Unidades)),
			Formatos:       export.Formats(),
		}
		if sum.Filter.From != nil {
			resp.Filtros.DataInicio = sum.Filter.From.Format(filterDateLayout)
		}
		if sum.Filter.To != nil {
			resp.Filtros.DataFim = sum.Filter.To.Format(filterDateLayout)
		}
		for _, u := range sum.Unidades {
			resp.Unidades = append(resp.Unidades, u.String())
		}
		return c.JSON(resp)
	}

	file, err := h.uc.Export(c.UserContext(), filter, q.Formato)
	if err != nil {
		return respondError(c, h.log, err)
	}
	attachment(c, file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(HeaderProcessed, strconv.Itoa(file.Count))
	return c.Send(file.Body)
}
