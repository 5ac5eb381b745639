package pos

import (
	"fmt"
	"time"

	"github.com/clinivet/pos-api/internal/application/dto"
	"github.com/clinivet/pos-api/internal/domain"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// SaleQueryUseCase consultas de solo lectura sobre ventas ya confirmadas.
type SaleQueryUseCase struct {
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
}

// NewSaleQueryUseCase construye el caso de uso de consultas.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository, clientRepo repository.ClientRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo, clientRepo: clientRepo}
}

// List devuelve la página de ventas que cumple los filtros, ordenada por
// created_at descendente, con los metadatos de paginación.
func (uc *SaleQueryUseCase) List(q dto.ListSalesQuery) (*dto.SaleListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	filter := repository.SaleFilter{
		Search: q.Search,
		Status: q.Status,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if q.StartDate != "" {
		t, err := time.Parse(dateLayout, q.StartDate)
		if err != nil {
			return nil, fmt.Errorf("startDate: %w", domain.ErrInvalidInput)
		}
		filter.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse(dateLayout, q.EndDate)
		if err != nil {
			return nil, fmt.Errorf("endDate: %w", domain.ErrInvalidInput)
		}
		// Rango inclusivo: el filtro cubre hasta el último instante del día.
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}

	sales, total, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleListResponse{
		Sales: make([]dto.SaleResponse, 0, len(sales)),
		Pagination: dto.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + limit - 1) / limit,
		},
	}
	for _, s := range sales {
		resp.Sales = append(resp.Sales, *toSaleResponse(s, nil))
	}
	return resp, nil
}

// GetByID devuelve una venta con sus líneas y el nombre del cliente.
func (uc *SaleQueryUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	if sale.ClientName == "" {
		client, err := uc.clientRepo.GetByID(sale.ClientID)
		if err != nil {
			return nil, err
		}
		if client != nil {
			sale.ClientName = client.Name
		}
	}
	return toSaleResponse(sale, items), nil
}
