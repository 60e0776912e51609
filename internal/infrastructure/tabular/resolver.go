// Package tabular lee los archivos delimitados por ';' que exporta el sistema
// de origen: resuelve la codificación y expone las filas por nombre de columna.
package tabular

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding se usa cuando el detector no da un resultado.
const DefaultEncoding = "latin1"

// fallbackEncodings se prueban, en orden, después del detectado.
var fallbackEncodings = []string{"latin1", "iso-8859-1", "windows-1252", "utf-8"}

// aliases normaliza los nombres frecuentes a un nombre canónico.
var aliases = map[string]string{
	"utf-8":        "utf-8",
	"utf8":         "utf-8",
	"ascii":        "utf-8",
	"us-ascii":     "utf-8",
	"latin1":       "iso-8859-1",
	"latin-1":      "iso-8859-1",
	"iso-8859-1":   "iso-8859-1",
	"iso8859-1":    "iso-8859-1",
	"l1":           "iso-8859-1",
	"windows-1252": "windows-1252",
	"cp1252":       "windows-1252",
}

var knownEncodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// Candidates devuelve la lista ordenada y sin duplicados de codificaciones a probar:
// la detectada estadísticamente primero y luego las de respaldo. Nunca está vacía.
func Candidates(data []byte) []string {
	detected := DefaultEncoding
	if res, err := chardet.NewTextDetector().DetectBest(data); err == nil && res != nil && res.Charset != "" {
		detected = res.Charset
	}

	out := make([]string, 0, len(fallbackEncodings)+1)
	seen := make(map[string]bool, len(fallbackEncodings)+1)
	for _, name := range append([]string{detected}, fallbackEncodings...) {
		key := canonical(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

// Lookup resuelve un nombre de codificación. Primero la tabla de alias, luego el índice IANA.
func Lookup(name string) (encoding.Encoding, bool) {
	if enc, ok := knownEncodings[canonical(name)]; ok {
		return enc, true
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, false
	}
	return enc, true
}

func canonical(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := aliases[key]; ok {
		return c
	}
	return key
}

func isUTF8(name string) bool {
	return canonical(name) == "utf-8"
}
