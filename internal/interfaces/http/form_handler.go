package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Beneficios-api/internal/application/dto"
	"github.com/jhoicas/Beneficios-api/internal/application/form"
)

// FormHandler expone los formularios modales del panel de administración.
type FormHandler struct {
	forms *form.Manager
}

// NewFormHandler construye el handler.
func NewFormHandler(forms *form.Manager) *FormHandler {
	return &FormHandler{forms: forms}
}

// Open godoc
// @Summary      Abrir formulario
// @Description  Sin record_id abre en modo alta con los valores por defecto; con record_id copia el registro.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FormOpenRequest  true  "Tipo y registro"
// @Success      201   {object}  dto.FormResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/forms [post]
func (h *FormHandler) Open(c *fiber.Ctx) error {
	var in dto.FormOpenRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	kind, err := form.ParseKind(in.Kind)
	if err != nil {
		return handleError(c, err)
	}
	f, err := h.forms.Open(c.UserContext(), kind, in.RecordID)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(f.View())
}

// Get GET /api/admin/forms/:id
func (h *FormHandler) Get(c *fiber.Ctx) error {
	f, err := h.forms.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(f.View())
}

// SetField godoc
// @Summary      Modificar un campo
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del formulario"
// @Param        body  body  dto.FormFieldRequest  true  "Campo y valor"
// @Success      200   {object}  dto.FormResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/forms/{id} [patch]
func (h *FormHandler) SetField(c *fiber.Ctx) error {
	var in dto.FormFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	f, err := h.forms.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if err := f.Set(in.Field, in.Value); err != nil {
		return handleError(c, err)
	}
	return c.JSON(f.View())
}

// Submit godoc
// @Summary      Enviar formulario
// @Description  422 con fields si faltan campos obligatorios (el formulario sigue abierto); 409 si ya estaba cerrado.
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "ID del formulario"
// @Success      200  {object}  dto.FormSubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/admin/forms/{id}/submit [post]
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	f, err := h.forms.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	result, err := f.Submit(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.FormSubmitResponse{Form: f.View(), Result: result})
}

// Cancel cierra el formulario sin guardar.
// DELETE /api/admin/forms/:id
func (h *FormHandler) Cancel(c *fiber.Ctx) error {
	f, err := h.forms.Get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	f.Cancel()
	return c.SendStatus(fiber.StatusNoContent)
}

// TogglePermission POST /api/admin/forms/:id/permissions/toggle
func (h *FormHandler) TogglePermission(c *fiber.Ctx) error {
	var in dto.PermissionToggleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	d, err := h.forms.Role(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if _, err := d.TogglePermission(in.Permission); err != nil {
		return handleError(c, err)
	}
	return c.JSON(d.View())
}

// SearchAccounts escribe q en el buscador de cuentas y devuelve las sugerencias.
// GET /api/admin/forms/:id/accounts?q=
func (h *FormHandler) SearchAccounts(c *fiber.Ctx) error {
	d, err := h.forms.Employee(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	out, err := d.Search(c.Query("q"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// FocusAccounts POST /api/admin/forms/:id/accounts/focus
func (h *FormHandler) FocusAccounts(c *fiber.Ctx) error {
	d, err := h.forms.Employee(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if err := d.Focus(); err != nil {
		return handleError(c, err)
	}
	return c.JSON(d.View())
}

// CloseAccounts POST /api/admin/forms/:id/accounts/close
func (h *FormHandler) CloseAccounts(c *fiber.Ctx) error {
	d, err := h.forms.Employee(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if err := d.CloseSuggestions(); err != nil {
		return handleError(c, err)
	}
	return c.JSON(d.View())
}

// SelectAccount POST /api/admin/forms/:id/accounts/select
func (h *FormHandler) SelectAccount(c *fiber.Ctx) error {
	var in dto.AccountSelectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	d, err := h.forms.Employee(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if err := d.Select(in.AccountID); err != nil {
		return handleError(c, err)
	}
	return c.JSON(d.View())
}

// OpenSucursal godoc
// @Summary      Abrir formulario de sucursal
// @Description  Dentro de un formulario de beneficio. Sin sucursal_id agrega una sucursal nueva.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del formulario de beneficio"
// @Param        body  body  dto.SucursalOpenRequest  false  "Sucursal a editar"
// @Success      201   {object}  dto.FormResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/forms/{id}/sucursales [post]
func (h *FormHandler) OpenSucursal(c *fiber.Ctx) error {
	var in dto.SucursalOpenRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	child, err := h.forms.OpenSucursal(c.Params("id"), in.SucursalID)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(child.View())
}
