package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CoordinateScale es la cantidad de decimales con que se almacenan latitud y longitud (NUMERIC(18,15)).
const CoordinateScale = 15

// Cliente es un registro geolocalizado de cliente, agrupado por unidad.
// Latitude ∈ [-90, 90], Longitude ∈ [-180, 180]; se validan en el borde del formulario.
type Cliente struct {
	ID            int64
	Unidade       Unidade
	DataCadastro  time.Time // solo fecha
	CodigoCliente string    // solo dígitos
	Latitude      decimal.Decimal
	Longitude     decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
