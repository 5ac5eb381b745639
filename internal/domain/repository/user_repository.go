package repository

import "github.com/clinivet/pos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	// GetByEmail devuelve nil, nil si no existe un usuario con ese email.
	GetByEmail(email string) (*entity.User, error)
}
