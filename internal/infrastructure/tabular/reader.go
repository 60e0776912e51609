package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/geocadastro-api/internal/domain"
)

const bom = "\uFEFF"

// Table resultado de leer un archivo delimitado: cabecera + filas.
type Table struct {
	Header   []string
	Rows     [][]string
	Encoding string // codificación con la que se pudo leer

	index map[string]int
}

// Column devuelve el índice de la columna cuyo nombre coincide (sin mayúsculas ni espacios).
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[normalizeHeader(name)]
	return i, ok
}

// ColumnContaining devuelve la primera columna cuyo nombre contiene alguno de los fragmentos.
func (t *Table) ColumnContaining(fragments ...string) (int, bool) {
	for i, h := range t.Header {
		name := normalizeHeader(h)
		for _, f := range fragments {
			if strings.Contains(name, normalizeHeader(f)) {
				return i, true
			}
		}
	}
	return -1, false
}

// Value devuelve la celda idx de row, o "" si la fila es más corta o idx < 0.
func Value(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Read decodifica data con cada candidata, en orden, y devuelve la primera que
// produce una tabla válida. Si ninguna sirve devuelve domain.ErrUnreadableFile.
func Read(data []byte, delimiter rune, candidates []string) (*Table, error) {
	var lastErr error
	for _, name := range candidates {
		text, err := decode(data, name)
		if err != nil {
			lastErr = err
			continue
		}
		table, err := parse(text, delimiter)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", name, err)
			continue
		}
		table.Encoding = name
		return table, nil
	}
	if lastErr == nil {
		lastErr = errors.New("sin codificaciones candidatas")
	}
	return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, lastErr)
}

// decode es estricto: UTF-8 debe ser válido y los demás decodificadores no
// pueden producir el carácter de reemplazo.
func decode(data []byte, name string) (string, error) {
	if isUTF8(name) {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s: secuencia utf-8 inválida", name)
		}
		return strings.TrimPrefix(string(data), bom), nil
	}

	enc, ok := Lookup(name)
	if !ok {
		return "", fmt.Errorf("%s: codificación desconocida", name)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	text := string(out)
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", fmt.Errorf("%s: bytes no representables", name)
	}
	return strings.TrimPrefix(text, bom), nil
}

func parse(text string, delimiter rune) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("archivo vacío")
	}
	if err != nil {
		return nil, err
	}

	t := &Table{Header: header, index: make(map[string]int, len(header))}
	for i, h := range header {
		key := normalizeHeader(h)
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if blank(rec) {
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
