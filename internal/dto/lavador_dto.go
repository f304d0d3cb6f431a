package dto

type CrearLavadorRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=2"`
	Telefono string `json:"telefono"`
}

type ActualizarLavadorRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=2"`
	Telefono *string `json:"telefono"`
}

type LavadorResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Telefono    string `json:"telefono"`
	Activo      bool   `json:"activo"`
	FechaInicio string `json:"fecha_inicio"`
}
