package geo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/geocadastro-api/internal/domain"
)

// Formato de origen ("split-integer"): "<lat_int>,<lat_frac>,<lon_int>,<lon_frac>".
// El sistema productor no escribe el punto decimal; el signo solo aparece en la parte entera.
var (
	integerPart    = regexp.MustCompile(`^-?[0-9]+$`)
	fractionalPart = regexp.MustCompile(`^[0-9]+$`)
)

// Coordinates par latitud/longitud decodificado, como strings decimales sin redondeo.
type Coordinates struct {
	Latitude  string
	Longitude string
}

// DecodeSplitCoordinates reconstruye latitud y longitud desde el formato de 4 segmentos.
//
//	"-000045,123,000090,456" → {"-45.123", "90.456"}
//
// Se eliminan todos los espacios; segmentos adicionales al cuarto se ignoran.
// Los rangos (-90..90 / -180..180) se validan al persistir, no aquí.
func DecodeSplitCoordinates(raw string) (Coordinates, error) {
	compact := strings.Join(strings.Fields(raw), "")
	parts := strings.Split(compact, ",")
	if len(parts) < 4 {
		return Coordinates{}, fmt.Errorf("%w: se esperaban 4 segmentos, hay %d", domain.ErrMalformedCoordinate, len(parts))
	}

	lat, err := joinDecimal(parts[0], parts[1])
	if err != nil {
		return Coordinates{}, fmt.Errorf("latitud: %w", err)
	}
	lon, err := joinDecimal(parts[2], parts[3])
	if err != nil {
		return Coordinates{}, fmt.Errorf("longitud: %w", err)
	}
	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

func joinDecimal(intPart, fracPart string) (string, error) {
	if !integerPart.MatchString(intPart) {
		return "", fmt.Errorf("%w: parte entera %q", domain.ErrMalformedCoordinate, intPart)
	}
	if !fractionalPart.MatchString(fracPart) {
		return "", fmt.Errorf("%w: parte decimal %q", domain.ErrMalformedCoordinate, fracPart)
	}
	return stripLeadingZeros(intPart) + "." + fracPart, nil
}

// stripLeadingZeros quita ceros a la izquierda conservando el signo y al menos un dígito.
// "-000123" → "-123", "000123" → "123", "000" → "0".
func stripLeadingZeros(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	return sign + s
}
