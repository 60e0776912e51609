package geo

import (
	"strings"

	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

// sentinelCoordinates marca filas sin ubicación en el archivo de origen.
const sentinelCoordinates = "000,000000"

// RejectReason motivo por el que una fila fue descartada.
type RejectReason string

// Motivos de descarte.
const (
	ReasonEmptyCoordinates     RejectReason = "empty_coordinates"
	ReasonSentinelCoordinates  RejectReason = "sentinel_coordinates"
	ReasonUnknownUnit          RejectReason = "unknown_unit"
	ReasonMissingClient        RejectReason = "missing_client"
	ReasonMalformedCoordinates RejectReason = "malformed_coordinates"
)

// RejectReasons devuelve todos los motivos (útil para inicializar contadores).
func RejectReasons() []RejectReason {
	return []RejectReason{
		ReasonEmptyCoordinates, ReasonSentinelCoordinates, ReasonUnknownUnit,
		ReasonMissingClient, ReasonMalformedCoordinates,
	}
}

// RawRow fila tal como viene del archivo subido.
type RawRow struct {
	UnitCode    string
	ClientCode  string
	Coordinates string
	Date        string
}

// Row fila aceptada: unidad mapeada y coordenadas decodificadas.
type Row struct {
	Unidade    entity.Unidade
	ClientCode string
	Latitude   string
	Longitude  string
	Date       string
}

// Evaluate aplica el filtro y, si la fila pasa, decodifica sus coordenadas.
// Los chequeos de vacío/centinela ocurren antes de decodificar.
// Devuelve reason vacío cuando la fila es aceptada.
func Evaluate(raw RawRow) (Row, RejectReason) {
	coords := strings.TrimSpace(raw.Coordinates)
	switch {
	case coords == "" || strings.EqualFold(coords, "nan") || coords == "0":
		return Row{}, ReasonEmptyCoordinates
	case strings.Contains(coords, sentinelCoordinates):
		return Row{}, ReasonSentinelCoordinates
	}

	unidade, ok := MapUnitCode(raw.UnitCode)
	if !ok {
		return Row{}, ReasonUnknownUnit
	}

	client := strings.TrimSpace(raw.ClientCode)
	if client == "" || strings.EqualFold(client, "nan") {
		return Row{}, ReasonMissingClient
	}

	decoded, err := DecodeSplitCoordinates(coords)
	if err != nil {
		return Row{}, ReasonMalformedCoordinates
	}

	return Row{
		Unidade:    unidade,
		ClientCode: client,
		Latitude:   decoded.Latitude,
		Longitude:  decoded.Longitude,
		Date:       strings.TrimSpace(raw.Date),
	}, ""
}
