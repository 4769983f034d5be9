package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrSessionExpired  = errors.New("sesión expirada por inactividad")
	ErrEmptyCart       = errors.New("el carrito está vacío")
	ErrUnknownVariation = errors.New("variación desconocida")
)
