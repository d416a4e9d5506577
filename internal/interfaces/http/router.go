package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/notas-venta-api/internal/application/catalogo"
	"github.com/tu-usuario/notas-venta-api/internal/application/notas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC   *catalogo.ClienteUseCase
	DireccionUC *catalogo.DireccionUseCase
	ProductoUC  *catalogo.ProductoUseCase
	NotaUC      *notas.NotaUseCase
	AgregarUC   *notas.AgregarItemsUseCase
	DescargaUC  *notas.DescargaUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Direcciones
	direcciones := api.Group("/direcciones")
	direccionHandler := NewDireccionHandler(deps.DireccionUC)
	direcciones.Post("/", direccionHandler.Create)
	direcciones.Get("/", direccionHandler.List)
	direcciones.Get("/:id", direccionHandler.GetByID)
	direcciones.Put("/:id", direccionHandler.Update)
	direcciones.Delete("/:id", direccionHandler.Delete)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Notas de venta
	notasGroup := api.Group("/notas")
	notaHandler := NewNotaHandler(deps.NotaUC, deps.AgregarUC, deps.DescargaUC)
	notasGroup.Post("/", notaHandler.Create)
	notasGroup.Get("/:id", notaHandler.GetByID)
	notasGroup.Post("/:id/items", notaHandler.AgregarItems)
	notasGroup.Get("/:id/pdf", notaHandler.DescargarPDF)
}
