package dto

// ─── Filter / List ──────────────────────────────────────────────────────────

// CerditoFilter is bound from the query string of GET /v1/cerditos.
// Los rangos son opcionales; un cerdito sin edad pasa el filtro de edad.
type CerditoFilter struct {
	Texto     string `form:"q"`
	Sexo      string `form:"sexo"       validate:"omitempty,oneof=macho hembra"`
	Estado    string `form:"estado"     validate:"omitempty,oneof=disponible reservado vendido"`
	EdadMin   *int   `form:"edad_min"   validate:"omitempty,min=0"`
	EdadMax   *int   `form:"edad_max"   validate:"omitempty,min=0"`
	PrecioMin *int64 `form:"precio_min" validate:"omitempty,min=0"`
	PrecioMax *int64 `form:"precio_max" validate:"omitempty,min=0"`
	Orden     string `form:"orden,default=reciente"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=12" validate:"min=1,max=100"`
}

type HitoResponse struct {
	ID          string `json:"id"`
	Fecha       string `json:"fecha"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono"`
}

type CerditoResponse struct {
	ID              string         `json:"id"`
	Nombre          string         `json:"nombre"`
	Descripcion     string         `json:"descripcion"`
	EdadMeses       *int           `json:"edad_meses,omitempty"`
	PrecioCRC       int64          `json:"precio_crc"`
	Sexo            string         `json:"sexo"`
	Imagenes        []string       `json:"imagenes"`
	FechaNacimiento *string        `json:"fecha_nacimiento,omitempty"`
	EsCerditoDelMes bool           `json:"es_cerdito_del_mes"`
	Estado          string         `json:"estado"`
	Visibilidad     string         `json:"visibilidad"`
	Hitos           []HitoResponse `json:"hitos,omitempty"`
	CreatedAt       string         `json:"created_at"`
}

type CerditoListResponse struct {
	Data  []CerditoResponse `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Admin CRUD ──────────────────────────────────────────────────────────────

// CrearCerditoRequest: el estado no se acepta — todo cerdito nace "disponible"
// y de ahí en adelante sólo el sincronizador de ventas lo mueve.
type CrearCerditoRequest struct {
	Nombre          string   `json:"nombre"      validate:"required,min=2"`
	Descripcion     string   `json:"descripcion"`
	EdadMeses       *int     `json:"edad_meses"  validate:"omitempty,min=0"`
	PrecioCRC       int64    `json:"precio_crc"  validate:"required,min=0"`
	Sexo            string   `json:"sexo"        validate:"required,oneof=macho hembra"`
	Imagenes        []string `json:"imagenes"    validate:"omitempty,dive,url"`
	FechaNacimiento *string  `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Visibilidad     string   `json:"visibilidad" validate:"omitempty,oneof=public private"`
}

// ActualizarCerditoRequest: mismo contrato que crear; estado/dueño excluidos
// a propósito.
type ActualizarCerditoRequest struct {
	Nombre          string   `json:"nombre"      validate:"required,min=2"`
	Descripcion     string   `json:"descripcion"`
	EdadMeses       *int     `json:"edad_meses"  validate:"omitempty,min=0"`
	PrecioCRC       int64    `json:"precio_crc"  validate:"required,min=0"`
	Sexo            string   `json:"sexo"        validate:"required,oneof=macho hembra"`
	Imagenes        []string `json:"imagenes"    validate:"omitempty,dive,url"`
	FechaNacimiento *string  `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	Visibilidad     string   `json:"visibilidad" validate:"omitempty,oneof=public private"`
}

type CrearHitoRequest struct {
	// Plantilla opcional: "nacimiento" | "control_veterinario" | "adopcion".
	// Si viene vacía, titulo es obligatorio.
	Plantilla   string `json:"plantilla"   validate:"omitempty,oneof=nacimiento control_veterinario adopcion"`
	Fecha       string `json:"fecha"       validate:"required,datetime=2006-01-02"`
	Titulo      string `json:"titulo"      validate:"required_without=Plantilla"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono"`
}
