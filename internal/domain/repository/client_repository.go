package repository

import "github.com/clinivet/pos-api/internal/domain/entity"

// ClientRepository define el puerto de lectura de clientes.
type ClientRepository interface {
	// GetByID devuelve nil, nil si el cliente no existe.
	GetByID(id string) (*entity.Client, error)
}
