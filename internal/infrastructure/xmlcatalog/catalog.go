// Package xmlcatalog exporta los beneficios y sus sucursales como catálogo XML
// para el procesador de tarjetas.
package xmlcatalog

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/Beneficios-api/internal/application/ports"
	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

// Namespace del catálogo.
const Namespace = "urn:beneficios:catalogo:1"

var _ ports.BenefitCatalogExporter = (*Exporter)(nil)

// Exporter implementa ports.BenefitCatalogExporter con etree. El digest es el
// SHA-256 de la forma canónica (C14N) del documento.
type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// ExportCatalog construye el documento y su digest.
func (e *Exporter) ExportCatalog(_ context.Context, benefits []*entity.Benefit) ([]byte, string, error) {
	doc := Build(benefits)
	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xmlcatalog: serializar: %w", err)
	}
	digest, err := Digest(out)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

// Build arma el árbol <CatalogoBeneficios>.
func Build(benefits []*entity.Benefit) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("CatalogoBeneficios")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("version", "1.0")
	root.CreateAttr("total", strconv.Itoa(len(benefits)))

	for _, b := range benefits {
		be := root.CreateElement("Beneficio")
		be.CreateAttr("id", b.ID)
		be.CreateAttr("estado", b.Estado)
		be.CreateElement("RazonComercial").SetText(b.RazonComercial)
		be.CreateElement("RazonSocial").SetText(b.RazonSocial)

		ruc := be.CreateElement("RUC")
		ruc.CreateAttr("dv", b.DV)
		ruc.SetText(b.RUC)

		contacto := be.CreateElement("Contacto")
		contacto.CreateAttr("nombre", b.Contacto)
		contacto.CreateAttr("telefono", b.Telefono)
		contacto.CreateAttr("correo", b.Correo)

		be.CreateElement("Direccion").SetText(b.Direccion)
		if b.Direccion2 != "" {
			be.CreateElement("Direccion2").SetText(b.Direccion2)
		}

		sucursales := be.CreateElement("Sucursales")
		for _, s := range b.Sucursales {
			se := sucursales.CreateElement("Sucursal")
			se.CreateAttr("id", s.ID)
			se.CreateElement("Nombre").SetText(s.Nombre)
			se.CreateElement("Direccion").SetText(s.Direccion)
			for _, code := range s.MCC {
				se.CreateElement("MCC").SetText(code)
			}
		}
	}
	return doc
}

// Digest devuelve el SHA-256 hexadecimal de la forma canónica de data.
func Digest(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("xmlcatalog: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
