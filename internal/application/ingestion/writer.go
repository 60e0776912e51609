package ingestion

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/internal/domain/geo"
)

// sourceDateLayout formato dd/mm/aaaa del sistema de origen (acepta días/meses sin cero).
const sourceDateLayout = "2/1/2006"

// artifactDateLayout fecha en el nombre del artefacto.
const artifactDateLayout = "02-01-2006"

// Artifact archivo de ingestión generado.
type Artifact struct {
	Path     string
	Filename string
	Count    int
	// Mixed cuenta filas cuya unidad o fecha difiere de la primera fila aceptada.
	Mixed int
}

// ArtifactFilename construye "{unidad}-{DD-MM-AAAA}.txt" a partir de la primera fila.
// Si la fecha no se puede interpretar se usa today.
func ArtifactFilename(first geo.Row, today time.Time) string {
	date, err := time.Parse(sourceDateLayout, strings.TrimSpace(first.Date))
	if err != nil {
		date = today
	}
	return fmt.Sprintf("%s-%s.txt", first.Unidade.FileLabel(), date.Format(artifactDateLayout))
}

// WriteArtifact escribe las filas aceptadas en dir como "cliente;latitud;longitud\n" (UTF-8).
// La unidad y la fecha del nombre salen de la primera fila: se asume un lote por unidad.
func WriteArtifact(dir string, rows []geo.Row, today time.Time) (*Artifact, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNoValidRecords
	}

	first := rows[0]
	art := &Artifact{Filename: ArtifactFilename(first, today)}
	art.Path = filepath.Join(dir, art.Filename)

	f, err := os.Create(art.Path)
	if err != nil {
		return nil, fmt.Errorf("ingestion: crear artefacto: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, r := range rows {
		if r.Unidade != first.Unidade || r.Date != first.Date {
			art.Mixed++
		}
		if _, err := fmt.Fprintf(w, "%s;%s;%s\n", r.ClientCode, r.Latitude, r.Longitude); err != nil {
			return nil, fmt.Errorf("ingestion: escribir artefacto: %w", err)
		}
		art.Count++
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("ingestion: escribir artefacto: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("ingestion: cerrar artefacto: %w", err)
	}
	return art, nil
}
