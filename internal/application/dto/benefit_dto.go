package dto

// BenefitRequest entrada para crear o reemplazar un beneficio con sus sucursales.
type BenefitRequest struct {
	RazonComercial string            `json:"razon_comercial" validate:"required"`
	RazonSocial    string            `json:"razon_social" validate:"required"`
	RUC            string            `json:"ruc" validate:"required"`
	DV             string            `json:"dv" validate:"required"`
	Telefono       string            `json:"telefono" validate:"required"`
	Correo         string            `json:"correo" validate:"required"`
	Contacto       string            `json:"contacto" validate:"required"`
	Direccion      string            `json:"direccion" validate:"required"`
	Direccion2     string            `json:"direccion2"`
	Estado         string            `json:"estado" validate:"omitempty,oneof=Activo Inactivo Bloqueado"`
	Sucursales     []SucursalRequest `json:"sucursales"`
}

// SucursalRequest sucursal dentro de BenefitRequest. ID vacío crea una sucursal nueva.
type SucursalRequest struct {
	ID        string   `json:"id"`
	Nombre    string   `json:"nombre" validate:"required"`
	Direccion string   `json:"direccion" validate:"required"`
	MCC       []string `json:"mcc"`
}

// BenefitResponse salida de un beneficio.
type BenefitResponse struct {
	ID             string             `json:"id"`
	RazonComercial string             `json:"razon_comercial"`
	RazonSocial    string             `json:"razon_social"`
	RUC            string             `json:"ruc"`
	DV             string             `json:"dv"`
	Telefono       string             `json:"telefono"`
	Correo         string             `json:"correo"`
	Contacto       string             `json:"contacto"`
	Direccion      string             `json:"direccion"`
	Direccion2     string             `json:"direccion2"`
	Estado         string             `json:"estado"`
	Sucursales     []SucursalResponse `json:"sucursales"`
}

// SucursalResponse salida de una sucursal. MCCText es la lista unida con ", ".
type SucursalResponse struct {
	ID        string   `json:"id"`
	Nombre    string   `json:"nombre"`
	Direccion string   `json:"direccion"`
	MCC       []string `json:"mcc"`
	MCCText   string   `json:"mcc_text"`
}

// BenefitListResponse listado filtrado de beneficios.
type BenefitListResponse struct {
	Items []BenefitResponse `json:"items"`
	ListMeta
}
