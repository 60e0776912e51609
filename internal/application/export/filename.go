package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

const allUnitsLabel = "todas-unidades"

// Filename devuelve "geolocalizacao-{unidade|todas-unidades}-{DD-MM-AAAA}.{ext}".
// La unidad va en minúsculas y conserva sus espacios.
func Filename(unidade entity.Unidade, at time.Time, ext string) string {
	label := allUnitsLabel
	if unidade != "" {
		label = strings.ToLower(string(unidade))
	}
	return fmt.Sprintf("geolocalizacao-%s-%s.%s", label, at.Format("02-01-2006"), ext)
}
