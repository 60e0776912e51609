package http

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/geocadastro-api/internal/application/dto"
	"github.com/jhoicas/geocadastro-api/internal/application/ingestion"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

// UploadField nombre del campo multipart con el archivo de origen.
const UploadField = "arquivo_csv"

// Cabeceras con el resumen del lote en la descarga del artefacto.
const (
	HeaderProcessed = "X-Registros-Processados"
	HeaderRejected  = "X-Registros-Rejeitados"
	HeaderEncoding  = "X-Encoding-Detectado"
	HeaderArchive   = "X-Archive-Key"
)

// IngestionHandler recibe el archivo delimitado y devuelve el artefacto normalizado.
type IngestionHandler struct {
	uc  *ingestion.UseCase
	log *logger.Logger
}

// NewIngestionHandler construye el handler.
func NewIngestionHandler(uc *ingestion.UseCase, log *logger.Logger) *IngestionHandler {
	return &IngestionHandler{uc: uc, log: log}
}

// Upload godoc
// @Summary      Procesar archivo de clientes
// @Description  Devuelve el artefacto {unidade}-{DD-MM-AAAA}.txt con líneas cliente;latitud;longitud. Roles: admin, responsavel.
// @Tags         ingestions
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      plain
// @Param        arquivo_csv  formData  file    true  "Archivo delimitado del sistema de origen"
// @Success      200          {string}  string  "Artefacto normalizado"
// @Header       200          {integer} X-Registros-Processados  "Filas aceptadas"
// @Header       200          {integer} X-Registros-Rejeitados   "Filas descartadas"
// @Header       200          {string}  X-Encoding-Detectado     "Codificación usada para leer el archivo"
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      401          {object}  dto.ErrorResponse
// @Failure      403          {object}  dto.ErrorResponse
// @Failure      422          {object}  dto.ErrorResponse
// @Router       /api/ingestions [post]
func (h *IngestionHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile(UploadField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo " + UploadField + " requerido"})
	}
	src, err := fh.Open()
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer src.Close()

	res, err := h.uc.Process(c.UserContext(), src, fh.Filename)
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer func() {
		if err := res.Cleanup(); err != nil {
			h.log.Warn().Err(err).Str("dir", res.Dir).Msg("no se pudo limpiar el artefacto")
		}
	}()

	// SendFile es diferido: el directorio se borra al volver, así que se envían los bytes.
	body, err := os.ReadFile(res.Path)
	if err != nil {
		return respondError(c, h.log, err)
	}

	h.log.Info().
		Str("user_id", GetUserID(c)).
		Str("unidade_usuario", GetUnidade(c)).
		Str("origen", fh.Filename).
		Str("artefacto", res.Filename).
		Int("registros", res.Count).
		Msg("ingestión enviada")

	attachment(c, res.Filename)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(HeaderProcessed, strconv.Itoa(res.Count))
	c.Set(HeaderRejected, strconv.Itoa(res.TotalRejected()))
	c.Set(HeaderEncoding, res.Encoding)
	if res.ArchiveKey != "" {
		c.Set(HeaderArchive, res.ArchiveKey)
	}
	return c.Send(body)
}
