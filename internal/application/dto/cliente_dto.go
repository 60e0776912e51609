package dto

import "time"

// ClienteRequest entrada para crear, editar o validar un registro.
// Latitud y longitud llegan como strings decimales para no perder precisión.
type ClienteRequest struct {
	Unidade       string `json:"unidade"`
	DataCadastro  string `json:"data_cadastro"` // AAAA-MM-DD
	CodigoCliente string `json:"codigo_cliente"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
}

// ClienteResponse salida de un registro.
type ClienteResponse struct {
	ID            int64     `json:"id"`
	Unidade       string    `json:"unidade"`
	CodigoCliente string    `json:"codigo_cliente"`
	Latitude      string    `json:"latitude"`
	Longitude     string    `json:"longitude"`
	DataCadastro  string    `json:"data_cadastro"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ClienteListResponse listado filtrado (más recientes primero).
type ClienteListResponse struct {
	Clientes []ClienteResponse `json:"clientes"`
	Total    int               `json:"total"`
}

// ClienteListQuery filtros del listado.
type ClienteListQuery struct {
	Unidade string `query:"unidade"`
	Data    string `query:"data"` // AAAA-MM-DD; inválida = sin filtro
}

// ValidationResponse resultado de /clientes/validar.
type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}
