package dto

type CrearTestimonioRequest struct {
	Autor        string `json:"autor"        validate:"required,min=2"`
	Texto        string `json:"texto"        validate:"required,min=10"`
	Calificacion int    `json:"calificacion" validate:"required,min=1,max=5"`
}

type TestimonioResponse struct {
	ID           string `json:"id"`
	Autor        string `json:"autor"`
	Texto        string `json:"texto"`
	Calificacion int    `json:"calificacion"`
	Aprobado     bool   `json:"aprobado"`
	CreatedAt    string `json:"created_at"`
}
