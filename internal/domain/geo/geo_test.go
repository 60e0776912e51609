package geo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/internal/domain/geo"
)

// ──────────────────────────────────────────────────────────────────────────────
// Decodificación de coordenadas
// ──────────────────────────────────────────────────────────────────────────────

func TestDecodeSplitCoordinates_ConservaSigno(t *testing.T) {
	got, err := geo.DecodeSplitCoordinates("-000045,123,000090,456")
	require.NoError(t, err)
	assert.Equal(t, "-45.123", got.Latitude)
	assert.Equal(t, "90.456", got.Longitude)
}

func TestDecodeSplitCoordinates_Casos(t *testing.T) {
	cases := []struct {
		in       string
		lat, lon string
	}{
		{"-023,123456,-051,654321", "-23.123456", "-51.654321"},
		{" -23 , 987 , -51 , 0001 ", "-23.987", "-51.0001"},
		{"-0023,5,-0051,5,extra,segmentos", "-23.5", "-51.5"},
		{"000,1,-000,2", "0.1", "-0.2"},
		{"23,000100,51,000200", "23.000100", "51.000200"},
		{"-\t25,1\n,-49,2", "-25.1", "-49.2"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := geo.DecodeSplitCoordinates(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.lat, got.Latitude)
			assert.Equal(t, tc.lon, got.Longitude)
		})
	}
}

// Para cualquier split válido, el resultado equivale a int(sin ceros) + "." + frac.
func TestDecodeSplitCoordinates_ReensambladoEquivalente(t *testing.T) {
	for latI := -90; latI <= 90; latI += 15 {
		for lonI := -180; lonI <= 180; lonI += 45 {
			raw := fmt.Sprintf("%s,%s,%s,%s", padInt(latI), "123450", padInt(lonI), "000987")
			got, err := geo.DecodeSplitCoordinates(raw)
			require.NoError(t, err, raw)

			wantLat := decimal.RequireFromString(fmt.Sprintf("%d.123450", latI))
			wantLon := decimal.RequireFromString(fmt.Sprintf("%d.000987", lonI))
			assert.True(t, wantLat.Equal(decimal.RequireFromString(got.Latitude)), raw)
			assert.True(t, wantLon.Equal(decimal.RequireFromString(got.Longitude)), raw)
		}
	}
}

func padInt(n int) string {
	if n < 0 {
		return fmt.Sprintf("-%04d", -n)
	}
	return fmt.Sprintf("%04d", n)
}

func TestDecodeSplitCoordinates_Malformadas(t *testing.T) {
	for _, in := range []string{"", "-23,1,-51", "a,1,2,3", "-23,1a,-51,2", "--1,1,2,2", "-23,,-51,2", "-23.5,1,-51,2"} {
		t.Run(in, func(t *testing.T) {
			_, err := geo.DecodeSplitCoordinates(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedCoordinate))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de filial
// ──────────────────────────────────────────────────────────────────────────────

func TestMapUnitCode(t *testing.T) {
	cases := map[string]entity.Unidade{
		"0001":   entity.UnidadeMaringa,
		"1":      entity.UnidadeMaringa,
		" 0002 ": entity.UnidadeGuarapuava,
		"3":      entity.UnidadePontaGrossa,
		"0004":   entity.UnidadeNortePioneiro,
	}
	for code, want := range cases {
		got, ok := geo.MapUnitCode(code)
		assert.True(t, ok, code)
		assert.Equal(t, want, got, code)
	}

	for _, code := range []string{"9999", "", "5", "01", "0005"} {
		_, ok := geo.MapUnitCode(code)
		assert.False(t, ok, code)
	}
}

func TestUnidade_FileLabel(t *testing.T) {
	assert.Equal(t, "Ponta_Grossa", entity.UnidadePontaGrossa.FileLabel())
	assert.Equal(t, "Norte_Pioneiro", entity.UnidadeNortePioneiro.FileLabel())
	assert.Equal(t, "Maringá", entity.UnidadeMaringa.FileLabel())
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro de filas
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_DescartaSinUbicacion(t *testing.T) {
	for _, coords := range []string{"", "  ", "nan", "NaN", "0", "000,000000,000,000000", "-023,1,000,000000"} {
		t.Run(coords, func(t *testing.T) {
			_, reason := geo.Evaluate(geo.RawRow{UnitCode: "0001", ClientCode: "123", Coordinates: coords})
			assert.NotEmpty(t, reason, "la fila debe descartarse siempre")
			assert.Contains(t, []geo.RejectReason{geo.ReasonEmptyCoordinates, geo.ReasonSentinelCoordinates}, reason)
		})
	}
}

func TestEvaluate_Motivos(t *testing.T) {
	valid := "-023,123456,-051,654321"

	_, reason := geo.Evaluate(geo.RawRow{UnitCode: "9999", ClientCode: "1", Coordinates: valid})
	assert.Equal(t, geo.ReasonUnknownUnit, reason)

	_, reason = geo.Evaluate(geo.RawRow{UnitCode: "1", ClientCode: " ", Coordinates: valid})
	assert.Equal(t, geo.ReasonMissingClient, reason)

	_, reason = geo.Evaluate(geo.RawRow{UnitCode: "1", ClientCode: "nan", Coordinates: valid})
	assert.Equal(t, geo.ReasonMissingClient, reason)

	_, reason = geo.Evaluate(geo.RawRow{UnitCode: "1", ClientCode: "7", Coordinates: "-23,1,-51"})
	assert.Equal(t, geo.ReasonMalformedCoordinates, reason)
}

func TestEvaluate_Aceptada(t *testing.T) {
	row, reason := geo.Evaluate(geo.RawRow{
		UnitCode:    " 0003",
		ClientCode:  " 4521 ",
		Coordinates: "-025, 094512 ,-050,161234",
		Date:        " 15/03/2024 ",
	})
	require.Empty(t, reason)
	assert.Equal(t, entity.UnidadePontaGrossa, row.Unidade)
	assert.Equal(t, "4521", row.ClientCode)
	assert.Equal(t, "-25.094512", row.Latitude)
	assert.Equal(t, "-50.161234", row.Longitude)
	assert.Equal(t, "15/03/2024", row.Date)
}
