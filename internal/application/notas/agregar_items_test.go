package notas_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/notas-venta-api/internal/application/dto"
	"github.com/tu-usuario/notas-venta-api/internal/application/notas"
	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
	"github.com/tu-usuario/notas-venta-api/pkg/logger"
)

const baseURLPrueba = "http://api.local"

// entorno agrupa los fakes de una corrida de AgregarItemsUseCase.
type entorno struct {
	uc          *notas.AgregarItemsUseCase
	notaRepo    *fakeNotaRepo
	itemRepo    *fakeItemRepo
	blob        *fakeBlobStore
	generador   *fakeGenerador
	notificador *fakeNotificador
}

func nuevoEntorno(nota *entity.NotaVenta, productos ...*entity.Producto) *entorno {
	e := &entorno{
		notaRepo:    newFakeNotaRepo(),
		itemRepo:    &fakeItemRepo{},
		blob:        newFakeBlobStore(),
		generador:   newFakeGenerador(),
		notificador: &fakeNotificador{},
	}
	if nota != nil {
		e.notaRepo.notas[nota.ID] = nota
	}
	e.uc = notas.NewAgregarItemsUseCase(
		e.notaRepo,
		e.itemRepo,
		newFakeClienteRepo(clientePrueba()),
		newFakeProductoRepo(productos...),
		e.generador,
		notas.NewAlmacenDocumentos(e.blob),
		e.notificador,
		baseURLPrueba,
		logger.Nop(),
	)
	return e
}

func productoPrueba() *entity.Producto {
	return &entity.Producto{
		ID:           "prod-1",
		Nombre:       "Caja de tornillos 1/4",
		UnidadMedida: "caja",
		PrecioBase:   decimal.RequireFromString("19.99"),
	}
}

func partida(productoID string, cantidad int64, precio string) dto.ItemNotaRequest {
	return dto.ItemNotaRequest{
		ProductoID:     productoID,
		Cantidad:       cantidad,
		PrecioUnitario: decimal.RequireFromString(precio),
	}
}

func TestAgregar_CalculaImporteYTotalExactos(t *testing.T) {
	e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1"), productoPrueba())

	out, err := e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 3, "19.99")},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.VecesEnviado)
	assert.Equal(t, "PDF actualizado y notificación enviada. Veces enviado: 1", out.Message)

	require.Len(t, e.itemRepo.items, 1)
	// 3 * 19.99 = 59.97 exacto, sin deriva de flotantes.
	assert.True(t, e.itemRepo.items[0].Importe.Equal(decimal.RequireFromString("59.97")),
		"importe esperado 59.97, obtenido %s", e.itemRepo.items[0].Importe)
	assert.True(t, e.notaRepo.notas["nota-1"].Total.Equal(decimal.RequireFromString("59.97")))
}

// TestAgregar_LotesSucesivosAcumulan: el libro es aditivo y el total se
// recalcula sobre todas las partidas, no solo el lote nuevo.
func TestAgregar_LotesSucesivosAcumulan(t *testing.T) {
	e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1"), productoPrueba())

	primera, err := e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 2, "100.00")},
	})
	require.NoError(t, err)
	segunda, err := e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 1, "50.00")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, primera.VecesEnviado)
	assert.Equal(t, 2, segunda.VecesEnviado, "el segundo guardado bajo el mismo folio incrementa el contador")
	assert.Len(t, e.itemRepo.items, 2)
	assert.True(t, e.notaRepo.notas["nota-1"].Total.Equal(decimal.RequireFromString("250.00")))
}

// TestAgregar_PartidasIdenticasDuplican: repetir el mismo lote agrega
// renglones duplicados a propósito, nunca reemplaza.
func TestAgregar_PartidasIdenticasDuplican(t *testing.T) {
	e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1"), productoPrueba())
	lote := dto.AgregarItemsRequest{Items: []dto.ItemNotaRequest{partida("prod-1", 1, "10.00")}}

	_, err := e.uc.Agregar(context.Background(), "nota-1", lote)
	require.NoError(t, err)
	_, err = e.uc.Agregar(context.Background(), "nota-1", lote)
	require.NoError(t, err)

	assert.Len(t, e.itemRepo.items, 2, "el libro acumula renglones duplicados")
	assert.True(t, e.notaRepo.notas["nota-1"].Total.Equal(decimal.RequireFromString("20.00")))
}

func TestAgregar_NotaInexistente(t *testing.T) {
	e := nuevoEntorno(nil)

	_, err := e.uc.Agregar(context.Background(), "nota-fantasma", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 1, "10.00")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAgregar_ValidacionDePartidas(t *testing.T) {
	casos := []struct {
		nombre string
		in     dto.AgregarItemsRequest
	}{
		{"sin partidas", dto.AgregarItemsRequest{}},
		{"sin producto", dto.AgregarItemsRequest{Items: []dto.ItemNotaRequest{partida("", 1, "10.00")}}},
		{"cantidad cero", dto.AgregarItemsRequest{Items: []dto.ItemNotaRequest{partida("prod-1", 0, "10.00")}}},
		{"cantidad negativa", dto.AgregarItemsRequest{Items: []dto.ItemNotaRequest{partida("prod-1", -2, "10.00")}}},
		{"precio negativo", dto.AgregarItemsRequest{Items: []dto.ItemNotaRequest{partida("prod-1", 1, "-0.01")}}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1"), productoPrueba())

			_, err := e.uc.Agregar(context.Background(), "nota-1", tc.in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, e.itemRepo.items, "una partida inválida rechaza el lote completo")
		})
	}
}

func TestAgregar_AvisoLlevaFolioYEnlace(t *testing.T) {
	e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1"), productoPrueba())

	_, err := e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 1, "10.00")},
	})

	require.NoError(t, err)
	require.Len(t, e.notificador.avisos, 1)
	aviso := e.notificador.avisos[0]
	assert.Equal(t, "a1b2c3d4", aviso.Folio)
	assert.Equal(t, clientePrueba().RazonSocial, aviso.RazonSocial)
	assert.Equal(t, baseURLPrueba+"/api/notas/nota-1/pdf", aviso.Enlace)
}

func TestAgregar_DocumentoGuardadoBajoRFCDelCliente(t *testing.T) {
	e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1"), productoPrueba())

	_, err := e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 1, "10.00")},
	})

	require.NoError(t, err)
	key := notas.ClaveDocumento(clientePrueba().RFC, "a1b2c3d4")
	obj := e.blob.objetos[key]
	require.NotNil(t, obj, "el PDF vive bajo RFC/folio.pdf")
	assert.Equal(t, e.generador.salida, obj.data)
}

// TestAgregar_FallaPosteriorDejaLibroComprometido documenta la falla parcial
// visible: si la notificación falla, las partidas y el total ya quedaron
// escritos y no se revierten.
func TestAgregar_FallaPosteriorDejaLibroComprometido(t *testing.T) {
	e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1"), productoPrueba())
	e.notificador.err = errors.New("tópico no disponible")

	_, err := e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 1, "10.00")},
	})

	require.Error(t, err)
	assert.Len(t, e.itemRepo.items, 1, "las partidas ya comprometidas no se revierten")
	assert.True(t, e.notaRepo.notas["nota-1"].Total.Equal(decimal.RequireFromString("10.00")),
		"el total recalculado no se revierte")
	assert.NotEmpty(t, e.blob.objetos, "el documento ya guardado no se revierte")
}

// TestAgregar_ProductoBorradoUsaNombreDeRespaldo: una partida cuyo producto
// ya no está en el catálogo no bloquea la regeneración del documento.
func TestAgregar_ProductoBorradoUsaNombreDeRespaldo(t *testing.T) {
	e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1")) // catálogo vacío

	_, err := e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-borrado", 1, "10.00")},
	})

	require.NoError(t, err)
	require.Len(t, e.generador.llamadas, 1)
	require.Len(t, e.generador.llamadas[0].lineas, 1)
	assert.Equal(t, "Producto prod-borrado", e.generador.llamadas[0].lineas[0].Producto)
}

func TestAgregar_GeneradorRecibeLibroCompleto(t *testing.T) {
	e := nuevoEntorno(notaPrueba("nota-1", "a1b2c3d4", "cli-1"), productoPrueba())

	_, err := e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 2, "10.00")},
	})
	require.NoError(t, err)
	_, err = e.uc.Agregar(context.Background(), "nota-1", dto.AgregarItemsRequest{
		Items: []dto.ItemNotaRequest{partida("prod-1", 1, "5.00")},
	})
	require.NoError(t, err)

	require.Len(t, e.generador.llamadas, 2)
	assert.Len(t, e.generador.llamadas[1].lineas, 2,
		"el documento regenerado incluye todas las partidas del libro, no solo el lote nuevo")
	assert.Equal(t, "a1b2c3d4", e.generador.llamadas[1].folio)
}
