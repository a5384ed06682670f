package xmlcatalog

import (
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Beneficios-api/internal/domain/entity"
)

func sample() []*entity.Benefit {
	return []*entity.Benefit{{
		ID: "1", RazonComercial: "Super 99", RazonSocial: "Supermercados 99 S.A.", RUC: "155-1234-5678", DV: "45",
		Telefono: "+507 300-0000", Correo: "contacto@super99.example", Contacto: "Laura Díaz",
		Direccion: "Vía España", Estado: entity.StatusActivo,
		Sucursales: []entity.Sucursal{
			{ID: "s1", Nombre: "Centro", Direccion: "Calle 50", MCC: []string{"5411", "5412"}},
		},
	}}
}

func TestExportCatalog_Estructura(t *testing.T) {
	out, digest, err := NewExporter().ExportCatalog(context.Background(), sample())
	require.NoError(t, err)
	assert.Len(t, digest, 64)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "CatalogoBeneficios", root.Tag)
	assert.Equal(t, "1", root.SelectAttrValue("total", ""))

	b := root.SelectElement("Beneficio")
	require.NotNil(t, b)
	assert.Equal(t, "45", b.SelectElement("RUC").SelectAttrValue("dv", ""))
	assert.Nil(t, b.SelectElement("Direccion2"))

	mcc := b.FindElements("./Sucursales/Sucursal/MCC")
	require.Len(t, mcc, 2)
	assert.Equal(t, "5412", mcc[1].Text())
}

func TestExportCatalog_DigestEstable(t *testing.T) {
	_, d1, err := NewExporter().ExportCatalog(context.Background(), sample())
	require.NoError(t, err)
	_, d2, err := NewExporter().ExportCatalog(context.Background(), sample())
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	changed := sample()
	changed[0].Sucursales[0].MCC = []string{"5411"}
	_, d3, err := NewExporter().ExportCatalog(context.Background(), changed)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}

func TestDigest_IgnoraOrdenDeAtributos(t *testing.T) {
	a, err := Digest([]byte(`<Sucursal id="s1" nombre="Centro"></Sucursal>`))
	require.NoError(t, err)
	b, err := Digest([]byte(`<Sucursal nombre="Centro" id="s1"/>`))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExportCatalog_Vacio(t *testing.T) {
	out, _, err := NewExporter().ExportCatalog(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `total="0"`)
}
