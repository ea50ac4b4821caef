package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los mensajes de producto/variante conservan el texto que la interfaz ya muestra.
var (
	ErrProductNotFound     = errors.New("producto no existe")
	ErrVariantNotFound     = errors.New("variante no existe")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrUnsupportedMovement = errors.New("tipo de movimiento no soportado")
	ErrNoSnapshot          = errors.New("no hay snapshot persistido")
)
