package entity

import "strings"

// Unidade identifica la unidad de negocio (regional) a la que pertenece un cliente.
type Unidade string

// Unidades válidas.
const (
	UnidadeMaringa       Unidade = "Maringá"
	UnidadeGuarapuava    Unidade = "Guarapuava"
	UnidadePontaGrossa   Unidade = "Ponta Grossa"
	UnidadeNortePioneiro Unidade = "Norte Pioneiro"
)

// Unidades devuelve las unidades en el orden de presentación.
func Unidades() []Unidade {
	return []Unidade{UnidadeMaringa, UnidadeGuarapuava, UnidadePontaGrossa, UnidadeNortePioneiro}
}

// Valid indica si u es una de las unidades conocidas.
func (u Unidade) Valid() bool {
	switch u {
	case UnidadeMaringa, UnidadeGuarapuava, UnidadePontaGrossa, UnidadeNortePioneiro:
		return true
	}
	return false
}

// FileLabel es el nombre usado en archivos generados: espacios → "_".
// Ej: "Ponta Grossa" → "Ponta_Grossa".
func (u Unidade) FileLabel() string {
	return strings.ReplaceAll(string(u), " ", "_")
}

func (u Unidade) String() string { return string(u) }
