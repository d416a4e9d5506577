package catalogo_test

import (
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
)

// Fakes en memoria de los repositorios del catálogo.

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
	err      error
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: make(map[string]*entity.Cliente)}
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error {
	if f.err != nil {
		return f.err
	}
	f.clientes[c.ID] = c
	return nil
}

func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.clientes[id], nil
}

func (f *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Cliente
	for _, c := range f.clientes {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error {
	if f.err != nil {
		return f.err
	}
	f.clientes[c.ID] = c
	return nil
}

func (f *fakeClienteRepo) Delete(id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.clientes, id)
	return nil
}

type fakeDireccionRepo struct {
	direcciones map[string]*entity.Direccion
	err         error
}

func newFakeDireccionRepo() *fakeDireccionRepo {
	return &fakeDireccionRepo{direcciones: make(map[string]*entity.Direccion)}
}

func (f *fakeDireccionRepo) Create(d *entity.Direccion) error {
	if f.err != nil {
		return f.err
	}
	f.direcciones[d.ID] = d
	return nil
}

func (f *fakeDireccionRepo) GetByID(id string) (*entity.Direccion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.direcciones[id], nil
}

func (f *fakeDireccionRepo) List(limit, offset int) ([]*entity.Direccion, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Direccion
	for _, d := range f.direcciones {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDireccionRepo) Update(d *entity.Direccion) error {
	if f.err != nil {
		return f.err
	}
	f.direcciones[d.ID] = d
	return nil
}

func (f *fakeDireccionRepo) Delete(id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.direcciones, id)
	return nil
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
	err       error
}

func newFakeProductoRepo() *fakeProductoRepo {
	return &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
}

func (f *fakeProductoRepo) Create(p *entity.Producto) error {
	if f.err != nil {
		return f.err
	}
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.productos[id], nil
}

func (f *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Producto
	for _, p := range f.productos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductoRepo) Update(p *entity.Producto) error {
	if f.err != nil {
		return f.err
	}
	f.productos[p.ID] = p
	return nil
}

func (f *fakeProductoRepo) Delete(id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.productos, id)
	return nil
}
