package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrItemNotFound       = errors.New("producto no encontrado en inventario")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrParse              = errors.New("el cuerpo de la petición tiene un formato inválido")
	ErrMissingFields      = errors.New("faltan campos requeridos")
	ErrNoItems            = errors.New("la venta debe incluir al menos un producto")
	ErrInvalidPayment     = errors.New("método de pago no reconocido")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)
