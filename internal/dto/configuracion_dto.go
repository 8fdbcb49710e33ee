package dto

// ActualizarConfiguracionRequest upserts site settings in bulk.
type ActualizarConfiguracionRequest struct {
	Valores map[string]string `json:"valores" validate:"required,min=1"`
}
