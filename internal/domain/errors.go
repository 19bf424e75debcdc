package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Auth: variantes de fallo de login.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmailNotConfirmed  = errors.New("email no confirmado")
	ErrAccountInactive    = errors.New("cuenta inactiva")
	ErrRateLimited        = errors.New("demasiados intentos de login")

	// Resolución de perfil: sin perfil resuelto no hay decisiones de
	// autorización seguras, el login completo falla.
	ErrProfileResolution = errors.New("no se pudo resolver el perfil")

	// Edición de stock. ErrEditRejected es un resultado de política, no un
	// fallo; ErrEditPersist es un fallo de escritura después de autorizar.
	ErrEditRejected = errors.New("edición de stock rechazada")
	ErrEditPersist  = errors.New("no se pudo persistir la edición de stock")

	// Export sobre inventario vacío.
	ErrNothingToExport = errors.New("no hay productos para exportar")
)
