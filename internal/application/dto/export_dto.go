package dto

// ExportQuery parámetros de /exports.
type ExportQuery struct {
	Unidade    string `query:"unidade"`
	DataInicio string `query:"data_inicio"`
	DataFim    string `query:"data_fim"`
	Formato    string `query:"formato"`
}

// ExportFilters filtros efectivamente aplicados (fechas inválidas quedan vacías).
type ExportFilters struct {
	Unidade    string `json:"unidade"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
}

// ExportSummaryResponse respuesta cuando no se pide formato.
type ExportSummaryResponse struct {
	TotalRegistros int           `json:"total_registros"`
	Filtros        ExportFilters `json:"filtros"`
	Unidades       []string      `json:"unidades"`
	Formatos       []string      `json:"formatos"`
}

// IngestionResponse resumen del lote; se expone en cabeceras de la descarga y en el CLI.
type IngestionResponse struct {
	Arquivo    string         `json:"arquivo"`
	Registros  int            `json:"registros"`
	Encoding   string         `json:"encoding"`
	Rejeitados map[string]int `json:"rejeitados"`
	ArchiveKey string         `json:"archive_key,omitempty"`
}
