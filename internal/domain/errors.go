package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrDocumentNotFound   = errors.New("documento no encontrado")
	ErrPresetNotFound     = errors.New("preset no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidPresetKind  = errors.New("tipo de preset inválido")
	ErrPresetNameRequired = errors.New("el nombre del preset es requerido")
	ErrLastItem           = errors.New("la factura debe conservar al menos un ítem")
)
