package dto

import "github.com/shopspring/decimal"

// ProductoFilter is bound from the query string of GET /v1/productos.
type ProductoFilter struct {
	Texto     string           `form:"q"`
	Categoria string           `form:"categoria"`
	PrecioMin *decimal.Decimal `form:"precio_min"`
	PrecioMax *decimal.Decimal `form:"precio_max"`
	Orden     string           `form:"orden,default=reciente"`
	Page      int              `form:"page,default=1"   validate:"min=1"`
	Limit     int              `form:"limit,default=12" validate:"min=1,max=100"`
}

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Imagenes    []string        `json:"imagenes"`
	Activo      bool            `json:"activo"`
	CreatedAt   string          `json:"created_at"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type CrearProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=2"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"   validate:"required"`
	Precio      decimal.Decimal `json:"precio"      validate:"required,min=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
	Imagenes    []string        `json:"imagenes"    validate:"omitempty,dive,url"`
}

type ActualizarProductoRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=2"`
	Descripcion string          `json:"descripcion"`
	Categoria   string          `json:"categoria"   validate:"required"`
	Precio      decimal.Decimal `json:"precio"      validate:"required,min=0"`
	Imagenes    []string        `json:"imagenes"    validate:"omitempty,dive,url"`
}

type AjustarStockRequest struct {
	// Delta positivo = entrada, negativo = salida.
	Delta int `json:"delta" validate:"required"`
}
