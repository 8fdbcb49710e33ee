package dto

// ─── Área de cliente: diario del cerdito ─────────────────────────────────────

// DiarioResponse es la vista completa del diario de un cerdito adoptado:
// hitos de vida más la checklist de adaptación al hogar.
type DiarioResponse struct {
	Cerdito             CerditoResponse `json:"cerdito"`
	Hitos               []HitoResponse  `json:"hitos"`
	ChecklistCompletado []string        `json:"checklist_completado"`
}

// ActualizarChecklistRequest reemplaza el set de ítems marcados.
type ActualizarChecklistRequest struct {
	Items []string `json:"items" validate:"required"`
}

// CrearHitoDiarioRequest: entrada manual del dueño en el diario.
type CrearHitoDiarioRequest struct {
	Fecha       string `json:"fecha"       validate:"required,datetime=2006-01-02"`
	Titulo      string `json:"titulo"      validate:"required,min=2"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono"`
}
