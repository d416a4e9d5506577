package notas_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/notas-venta-api/internal/application/notas"
	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
)

// Fakes en memoria de los puertos del paquete. Cada fake expone campos de
// error inyectables para simular fallas de la dependencia real.

// ── Repositorios ──────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
	err      error
}

func newFakeClienteRepo(clientes ...*entity.Cliente) *fakeClienteRepo {
	m := make(map[string]*entity.Cliente)
	for _, c := range clientes {
		m[c.ID] = c
	}
	return &fakeClienteRepo{clientes: m}
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error {
	f.clientes[c.ID] = c
	return f.err
}

func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.clientes[id], nil
}

func (f *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range f.clientes {
		out = append(out, c)
	}
	return out, f.err
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error {
	f.clientes[c.ID] = c
	return f.err
}

func (f *fakeClienteRepo) Delete(id string) error {
	delete(f.clientes, id)
	return f.err
}

type fakeDireccionRepo struct {
	direcciones map[string]*entity.Direccion
	err         error
}

func newFakeDireccionRepo(direcciones ...*entity.Direccion) *fakeDireccionRepo {
	m := make(map[string]*entity.Direccion)
	for _, d := range direcciones {
		m[d.ID] = d
	}
	return &fakeDireccionRepo{direcciones: m}
}

func (f *fakeDireccionRepo) Create(d *entity.Direccion) error {
	f.direcciones[d.ID] = d
	return f.err
}

func (f *fakeDireccionRepo) GetByID(id string) (*entity.Direccion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.direcciones[id], nil
}

func (f *fakeDireccionRepo) List(limit, offset int) ([]*entity.Direccion, error) {
	var out []*entity.Direccion
	for _, d := range f.direcciones {
		out = append(out, d)
	}
	return out, f.err
}

func (f *fakeDireccionRepo) Update(d *entity.Direccion) error {
	f.direcciones[d.ID] = d
	return f.err
}

func (f *fakeDireccionRepo) Delete(id string) error {
	delete(f.direcciones, id)
	return f.err
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
	err       error
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	m := make(map[string]*entity.Producto)
	for _, p := range productos {
		m[p.ID] = p
	}
	return &fakeProductoRepo{productos: m}
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	f.productos[p.ID] = p
	return f.err
}

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.productos[id], nil
}

func (f *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.productos {
		out = append(out, p)
	}
	return out, f.err
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error {
	f.productos[p.ID] = p
	return f.err
}

func (f *fakeProductoRepo) Delete(id string) error {
	delete(f.productos, id)
	return f.err
}

type fakeNotaRepo struct {
	notas          map[string]*entity.NotaVenta
	createErr      error
	getErr         error
	updateTotalErr error
}

func newFakeNotaRepo(notas ...*entity.NotaVenta) *fakeNotaRepo {
	m := make(map[string]*entity.NotaVenta)
	for _, n := range notas {
		m[n.ID] = n
	}
	return &fakeNotaRepo{notas: m}
}

func (f *fakeNotaRepo) Create(n *entity.NotaVenta) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.notas[n.ID] = n
	return nil
}

func (f *fakeNotaRepo) GetByID(id string) (*entity.NotaVenta, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.notas[id], nil
}

func (f *fakeNotaRepo) UpdateTotal(id string, total decimal.Decimal) error {
	if f.updateTotalErr != nil {
		return f.updateTotalErr
	}
	if n, ok := f.notas[id]; ok {
		n.Total = total
		n.UpdatedAt = time.Now()
	}
	return nil
}

type fakeItemRepo struct {
	items     []*entity.NotaVentaItem
	createErr error
	listErr   error
}

func (f *fakeItemRepo) Create(item *entity.NotaVentaItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, item)
	return nil
}

func (f *fakeItemRepo) ListByNotaID(notaID string) ([]*entity.NotaVentaItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.NotaVentaItem
	for _, it := range f.items {
		if it.NotaVentaID == notaID {
			out = append(out, it)
		}
	}
	return out, nil
}

// ── BlobStore ─────────────────────────────────────────────────────────────────

type objetoFake struct {
	data []byte
	meta entity.DocumentoMeta
}

type fakeBlobStore struct {
	objetos    map[string]*objetoFake
	headErr    error
	putErr     error
	getErr     error
	replaceErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objetos: make(map[string]*objetoFake)}
}

func (f *fakeBlobStore) Head(ctx context.Context, key string) (*entity.DocumentoMeta, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	obj, ok := f.objetos[key]
	if !ok {
		return nil, fmt.Errorf("%w: objeto %s", domain.ErrNotFound, key)
	}
	meta := obj.meta
	return &meta, nil
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte, meta entity.DocumentoMeta) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objetos[key] = &objetoFake{data: append([]byte(nil), data...), meta: meta}
	return nil
}

func (f *fakeBlobStore) Get(ctx context.Context, key string) ([]byte, *entity.DocumentoMeta, error) {
	if f.getErr != nil {
		return nil, nil, f.getErr
	}
	obj, ok := f.objetos[key]
	if !ok {
		return nil, nil, fmt.Errorf("%w: objeto %s", domain.ErrNotFound, key)
	}
	meta := obj.meta
	return append([]byte(nil), obj.data...), &meta, nil
}

func (f *fakeBlobStore) ReplaceMeta(ctx context.Context, key string, meta entity.DocumentoMeta) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	obj, ok := f.objetos[key]
	if !ok {
		return fmt.Errorf("%w: objeto %s", domain.ErrNotFound, key)
	}
	obj.meta = meta
	return nil
}

// ── Generador y notificador ───────────────────────────────────────────────────

type llamadaGenerador struct {
	cliente *entity.Cliente
	folio   string
	lineas  []notas.LineaNotaPDF
}

type fakeGenerador struct {
	salida   []byte
	err      error
	llamadas []llamadaGenerador
}

func newFakeGenerador() *fakeGenerador {
	return &fakeGenerador{salida: []byte("%PDF-1.7 fake")}
}

func (f *fakeGenerador) GenerarNotaPDF(ctx context.Context, cliente *entity.Cliente, folio string, lineas []notas.LineaNotaPDF) ([]byte, error) {
	f.llamadas = append(f.llamadas, llamadaGenerador{cliente: cliente, folio: folio, lineas: lineas})
	if f.err != nil {
		return nil, f.err
	}
	return f.salida, nil
}

type fakeNotificador struct {
	avisos []notas.AvisoNota
	err    error
}

func (f *fakeNotificador) Publicar(ctx context.Context, aviso notas.AvisoNota) error {
	if f.err != nil {
		return f.err
	}
	f.avisos = append(f.avisos, aviso)
	return nil
}

// ── Entidades de prueba ───────────────────────────────────────────────────────

func clientePrueba() *entity.Cliente {
	return &entity.Cliente{
		ID:                "cli-1",
		RazonSocial:       "Comercializadora del Norte SA de CV",
		NombreComercial:   "CDN",
		RFC:               "CNO840101AB1",
		CorreoElectronico: "contacto@cdn.mx",
		Telefono:          "8112345678",
	}
}

func direccionPrueba(id, tipo string) *entity.Direccion {
	return &entity.Direccion{
		ID:            id,
		Domicilio:     "Av. Constitución 400",
		Colonia:       "Centro",
		Municipio:     "Monterrey",
		Estado:        "Nuevo León",
		TipoDireccion: tipo,
	}
}

func notaPrueba(id, folio, clienteID string) *entity.NotaVenta {
	return &entity.NotaVenta{
		ID:                     id,
		Folio:                  folio,
		ClienteID:              clienteID,
		DireccionFacturacionID: "dir-fac",
		DireccionEnvioID:       "dir-env",
		Total:                  decimal.Zero,
		CreatedAt:              time.Now(),
		UpdatedAt:              time.Now(),
	}
}
