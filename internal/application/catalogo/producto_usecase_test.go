package catalogo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/notas-venta-api/internal/application/catalogo"
	"github.com/tu-usuario/notas-venta-api/internal/application/dto"
	"github.com/tu-usuario/notas-venta-api/internal/domain"
)

func productoRequestValido() dto.ProductoRequest {
	return dto.ProductoRequest{
		Nombre:       "Caja de tornillos 1/4",
		UnidadMedida: "caja",
		PrecioBase:   decimal.RequireFromString("19.99"),
	}
}

func TestProductoCrear_Valido(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := catalogo.NewProductoUseCase(repo)

	out, err := uc.Crear(productoRequestValido())

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.PrecioBase.Equal(decimal.RequireFromString("19.99")))
}

func TestProductoCrear_PrecioCeroEsValido(t *testing.T) {
	uc := catalogo.NewProductoUseCase(newFakeProductoRepo())

	in := productoRequestValido()
	in.PrecioBase = decimal.Zero
	_, err := uc.Crear(in)

	assert.NoError(t, err, "un precio base de cero es válido, solo el negativo se rechaza")
}

func TestProductoCrear_PrecioNegativo(t *testing.T) {
	uc := catalogo.NewProductoUseCase(newFakeProductoRepo())

	in := productoRequestValido()
	in.PrecioBase = decimal.RequireFromString("-0.01")
	_, err := uc.Crear(in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductoObtener_Inexistente(t *testing.T) {
	uc := catalogo.NewProductoUseCase(newFakeProductoRepo())

	_, err := uc.Obtener("prod-fantasma")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductoActualizar_CambiaPrecio(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := catalogo.NewProductoUseCase(repo)
	creado, err := uc.Crear(productoRequestValido())
	require.NoError(t, err)

	in := productoRequestValido()
	in.PrecioBase = decimal.RequireFromString("21.50")
	out, err := uc.Actualizar(creado.ID, in)

	require.NoError(t, err)
	assert.True(t, out.PrecioBase.Equal(decimal.RequireFromString("21.50")))
	assert.True(t, repo.productos[creado.ID].PrecioBase.Equal(decimal.RequireFromString("21.50")))
}
