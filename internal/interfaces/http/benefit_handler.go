package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/application/ports"
	"github.com/jhoicas/Beneficios-api/internal/application/usecase"
)

// HeaderCatalogDigest cabecera con el SHA-256 de la forma canónica del catálogo.
const HeaderCatalogDigest = "X-Catalog-Digest"

// BenefitHandler maneja las peticiones HTTP para Benefit y su catálogo XML.
type BenefitHandler struct {
	uc       *usecase.BenefitUseCase
	exporter ports.BenefitCatalogExporter
}

// NewBenefitHandler construye el handler.
func NewBenefitHandler(uc *usecase.BenefitUseCase, exporter ports.BenefitCatalogExporter) *BenefitHandler {
	return &BenefitHandler{uc: uc, exporter: exporter}
}

// Create godoc
// @Summary      Crear beneficio
// @Description  Las sucursales sin id reciben uno nuevo.
// @Tags         benefits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BenefitRequest  true  "Datos del beneficio"
// @Success      201   {object}  dto.BenefitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/benefits [post]
func (h *BenefitHandler) Create(c *fiber.Ctx) error {
	var in dto.BenefitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *BenefitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "beneficio")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar beneficios
// @Tags         benefits
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar en razón comercial y razón social"
// @Success      200  {object}  dto.BenefitListResponse
// @Router       /api/admin/benefits [get]
func (h *BenefitHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

func (h *BenefitHandler) Update(c *fiber.Ctx) error {
	var in dto.BenefitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	if out == nil {
		return notFound(c, "beneficio")
	}
	return c.JSON(out)
}

func (h *BenefitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Catalog godoc
// @Summary      Catálogo XML de beneficios
// @Description  Documento para el procesador de tarjetas. X-Catalog-Digest lleva el SHA-256 C14N.
// @Tags         benefits
// @Produce      xml
// @Success      200
// @Router       /api/admin/benefits/catalog.xml [get]
func (h *BenefitHandler) Catalog(c *fiber.Ctx) error {
	benefits, err := h.uc.Records(c.UserContext(), "")
	if err != nil {
		return handleError(c, err)
	}
	doc, digest, err := h.exporter.ExportCatalog(c.UserContext(), benefits)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(HeaderCatalogDigest, digest)
	return c.Send(doc)
}
