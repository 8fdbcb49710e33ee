package dto

type RegistroRequest struct {
	Email    string  `json:"email"    validate:"required,email"`
	Nombre   string  `json:"nombre"   validate:"required,min=2"`
	Telefono *string `json:"telefono" validate:"omitempty,min=8"`
	Password string  `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UsuarioResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Nombre   string  `json:"nombre"`
	Telefono *string `json:"telefono,omitempty"`
	Rol      string  `json:"rol"`
	Activo   bool    `json:"activo"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}
