package repository

import (
	"time"

	"github.com/clinivet/pos-api/internal/domain/entity"
)

// SaleFilter filtros del listado de ventas.
// StartDate y EndDate son inclusivos sobre created_at.
type SaleFilter struct {
	Search    string // subcadena del nombre del cliente, case-insensitive
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Create y CreateItem se invocan únicamente dentro de la transacción de venta.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	// List devuelve la página de ventas ordenada por created_at descendente
	// y el total de filas que cumplen el filtro.
	List(filter SaleFilter) ([]*entity.Sale, int, error)
}
