package dto

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from the query string of GET /v1/admin/ventas.
type VentaFilter struct {
	Estado string `form:"estado"` // consulta | reservado | pagado | entregado | cancelado | all
	Fecha  string `form:"fecha"`  // YYYY-MM-DD sobre fecha_venta; vacío = todas
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarVentaRequest crea la venta y reserva el cerdito en una sola
// transacción. Sin cupón: ese lo emite el sincronizador al entregar.
type RegistrarVentaRequest struct {
	CerditoID       string  `json:"cerdito_id"       validate:"required,uuid"`
	ClienteNombre   string  `json:"cliente_nombre"   validate:"required,min=2"`
	ClienteTelefono string  `json:"cliente_telefono"`
	ClienteEmail    *string `json:"cliente_email"    validate:"omitempty,email"`
	ClienteID       *string `json:"cliente_id"       validate:"omitempty,uuid"`
	Estado          string  `json:"estado"           validate:"omitempty,oneof=consulta reservado pagado entregado"`
	// min=0 sin required: una adopción gratuita es precio 0.
	Precio          int64   `json:"precio"           validate:"min=0"`
	FechaVenta      string  `json:"fecha_venta"      validate:"required,datetime=2006-01-02"`
}

// ActualizarVentaRequest es el reemplazo completo del estado deseado de la
// venta: quien llama provee todo el siguiente estado, incluido "estado".
type ActualizarVentaRequest struct {
	ClienteNombre   string  `json:"cliente_nombre"   validate:"required,min=2"`
	ClienteTelefono string  `json:"cliente_telefono"`
	ClienteEmail    *string `json:"cliente_email"    validate:"omitempty,email"`
	ClienteID       *string `json:"cliente_id"       validate:"omitempty,uuid"`
	Estado          string  `json:"estado"           validate:"required,oneof=consulta reservado pagado entregado cancelado"`
	Precio          int64   `json:"precio"           validate:"min=0"`
	FechaVenta      string  `json:"fecha_venta"      validate:"required,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CuponResponse struct {
	Codigo    string `json:"codigo"`
	Descuento int    `json:"descuento"`
	Estado    string `json:"estado"`
}

type VentaResponse struct {
	ID              string         `json:"id"`
	CerditoID       string         `json:"cerdito_id"`
	NombreCerdito   string         `json:"nombre_cerdito"`
	ClienteNombre   string         `json:"cliente_nombre"`
	ClienteTelefono string         `json:"cliente_telefono,omitempty"`
	ClienteEmail    *string        `json:"cliente_email,omitempty"`
	ClienteID       *string        `json:"cliente_id,omitempty"`
	Estado          string         `json:"estado"`
	Precio          int64          `json:"precio"`
	FechaVenta      string         `json:"fecha_venta"`
	CuponBienvenida *CuponResponse `json:"cupon_bienvenida,omitempty"`
	CreatedAt       string         `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
