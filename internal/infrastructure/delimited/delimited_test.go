package delimited_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/internal/infrastructure/delimited"
)

func records() []*entity.Cliente {
	return []*entity.Cliente{
		{
			ID: 7, Unidade: entity.UnidadePontaGrossa, CodigoCliente: "4521",
			Latitude:     decimal.RequireFromString("-23.123450000000000"),
			Longitude:    decimal.RequireFromString("-51.654321"),
			DataCadastro: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: 3, Unidade: entity.UnidadeMaringa, CodigoCliente: "88",
			Latitude:     decimal.Zero,
			Longitude:    decimal.RequireFromString("10"),
			DataCadastro: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestCSVFormatter_Render(t *testing.T) {
	body, err := delimited.NewCSVFormatter().Render(context.Background(), export.Report{Records: records()})
	require.NoError(t, err)

	want := "ID,Unidade,Código Cliente,Latitude,Longitude,Data Cadastro\n" +
		"7,Ponta Grossa,4521,-23.123450000000000,-51.654321000000000,05/03/2024\n" +
		"3,Maringá,88,0.000000000000000,10.000000000000000,31/12/2023\n"
	assert.Equal(t, want, string(body))
	assert.NotContains(t, string(body), "\r")
}

func TestCSVFormatter_SinRegistrosSoloCabecera(t *testing.T) {
	body, err := delimited.NewCSVFormatter().Render(context.Background(), export.Report{})
	require.NoError(t, err)
	assert.Equal(t, "ID,Unidade,Código Cliente,Latitude,Longitude,Data Cadastro\n", string(body))
}

func TestTXTFormatter_Render(t *testing.T) {
	body, err := delimited.NewTXTFormatter().Render(context.Background(), export.Report{Records: records()})
	require.NoError(t, err)
	assert.Equal(t, "4521;-23.12345;-51.654321\n88;0;10\n", string(body))
}

func TestTXTFormatter_SinRegistrosCeroBytes(t *testing.T) {
	body, err := delimited.NewTXTFormatter().Render(context.Background(), export.Report{})
	require.NoError(t, err)
	assert.Len(t, body, 0)
}

func TestCompactCoordinate(t *testing.T) {
	cases := map[string]string{
		"-23.123450000000000": "-23.12345",
		"0":                   "0",
		"0.000000000000000":   "0",
		"100":                 "100",
		"-0.5":                "-0.5",
		"45.123456789012345":  "45.123456789012345",
		"45.1234567890123456": "45.123456789012346",
	}
	for in, want := range cases {
		assert.Equal(t, want, delimited.CompactCoordinate(decimal.RequireFromString(in)), in)
	}
}

func TestFormatters_Metadatos(t *testing.T) {
	csv := delimited.NewCSVFormatter()
	assert.Equal(t, export.FormatCSV, csv.Format())
	assert.Equal(t, "csv", csv.Extension())

	txt := delimited.NewTXTFormatter()
	assert.Equal(t, export.FormatTXT, txt.Format())
	assert.Equal(t, "text/plain; charset=utf-8", txt.ContentType())
}
