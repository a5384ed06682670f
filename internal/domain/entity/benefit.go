package entity

import "strings"

// Benefit representa un comercio afiliado que ofrece beneficios a los tarjetahabientes.
type Benefit struct {
	ID             string
	RazonComercial string
	RazonSocial    string
	RUC            string
	DV             string
	Telefono       string
	Correo         string
	Contacto       string
	Direccion      string
	Direccion2     string
	Estado         string // Activo | Inactivo | Bloqueado
	Sucursales     []Sucursal
}

// Sucursal es un punto de venta de un Benefit. ID se asigna al crearla y
// identifica a la sucursal dentro de su beneficio.
type Sucursal struct {
	ID        string
	Nombre    string
	Direccion string
	MCC       []string // Merchant Category Codes
}

func (b *Benefit) GetID() string   { return b.ID }
func (b *Benefit) SetID(id string) { b.ID = id }

// Clone devuelve una copia profunda (sucursales y MCC incluidos).
func (b *Benefit) Clone() *Benefit {
	c := *b
	c.Sucursales = make([]Sucursal, len(b.Sucursales))
	for i, s := range b.Sucursales {
		c.Sucursales[i] = s.Clone()
	}
	return &c
}

// Clone devuelve una copia profunda de la sucursal.
func (s Sucursal) Clone() Sucursal {
	s.MCC = append([]string(nil), s.MCC...)
	return s
}

// SucursalIndex devuelve la posición de la sucursal con ese ID o -1.
func (b *Benefit) SucursalIndex(id string) int {
	for i := range b.Sucursales {
		if b.Sucursales[i].ID == id {
			return i
		}
	}
	return -1
}

// ParseMCC convierte el texto del campo MCC ("5411, 5412 ,5413") en la lista ordenada de
// códigos, recortando espacios. Los tokens vacíos se descartan.
func ParseMCC(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinMCC es el texto que se muestra en el campo MCC. Un código que contenga comas
// no sobrevive a ParseMCC(JoinMCC(x)).
func JoinMCC(codes []string) string {
	return strings.Join(codes, ", ")
}
