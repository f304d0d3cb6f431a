package dto

type CrearClienteRequest struct {
	Nombre         string `json:"nombre" validate:"required,min=2"`
	Telefono       string `json:"telefono"`
	Notas          string `json:"notas"`
	Frecuente      bool   `json:"frecuente"`
	VehiculoModelo string `json:"vehiculo_modelo"`
	VehiculoColor  string `json:"vehiculo_color"`
}

type ActualizarClienteRequest struct {
	Nombre         *string `json:"nombre" validate:"omitempty,min=2"`
	Telefono       *string `json:"telefono"`
	Notas          *string `json:"notas"`
	Frecuente      *bool   `json:"frecuente"`
	VehiculoModelo *string `json:"vehiculo_modelo"`
	VehiculoColor  *string `json:"vehiculo_color"`
}

type ClienteResponse struct {
	ID             string  `json:"id"`
	Nombre         string  `json:"nombre"`
	Telefono       string  `json:"telefono"`
	Notas          string  `json:"notas"`
	Frecuente      bool    `json:"frecuente"`
	VehiculoModelo string  `json:"vehiculo_modelo"`
	VehiculoColor  string  `json:"vehiculo_color"`
	UltimaVisita   *string `json:"ultima_visita"`
}
