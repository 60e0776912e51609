package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Pipeline de ingestión.
	ErrUnreadableFile      = errors.New("no fue posible leer el archivo con ninguna codificación")
	ErrNoValidRecords      = errors.New("ningún registro válido encontrado en el archivo")
	ErrMissingColumn       = errors.New("columna obligatoria ausente en el archivo")
	ErrMalformedCoordinate = errors.New("coordenada con formato inválido")

	// Exportación.
	ErrUnsupportedFormat = errors.New("formato de exportación no soportado")
	ErrMissingDependency = errors.New("dependencia de renderizado no disponible")
)

// ValidationError agrupa errores de validación por campo (formulario de cliente).
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error()
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Add registra un error para el campo indicado (conserva el primero).
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// OrNil devuelve nil cuando no hay errores registrados.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
