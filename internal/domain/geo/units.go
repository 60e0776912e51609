// Package geo contiene las reglas puras del pipeline de geolocalización:
// mapeo de códigos de filial, decodificación de coordenadas y filtro de filas.
package geo

import (
	"strings"

	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

// unitCodes mapea el código de filial del sistema de origen a la unidad.
// Solo lectura: se accede únicamente a través de MapUnitCode.
var unitCodes = map[string]entity.Unidade{
	"0001": entity.UnidadeMaringa,
	"0002": entity.UnidadeGuarapuava,
	"0003": entity.UnidadePontaGrossa,
	"0004": entity.UnidadeNortePioneiro,
	"1":    entity.UnidadeMaringa,
	"2":    entity.UnidadeGuarapuava,
	"3":    entity.UnidadePontaGrossa,
	"4":    entity.UnidadeNortePioneiro,
}

// MapUnitCode normaliza un código de filial ("0001" o "1") a su unidad.
// Códigos desconocidos devuelven ok=false.
func MapUnitCode(raw string) (entity.Unidade, bool) {
	u, ok := unitCodes[strings.TrimSpace(raw)]
	return u, ok
}
