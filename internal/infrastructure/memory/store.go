// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Lo usan la suite de tests y el modo demo sin PostgreSQL. Un mutex
// global serializa las transacciones: cada Run trabaja sobre una copia del
// estado y solo la publica si el callback termina sin error, de modo que un
// fallo a mitad de la venta no deja efectos parciales visibles.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/clinivet/pos-api/internal/application/pos"
	"github.com/clinivet/pos-api/internal/domain/entity"
	"github.com/clinivet/pos-api/internal/domain/repository"
)

var _ pos.TxRunner = (*Store)(nil)

type state struct {
	sales     map[string]entity.Sale
	saleItems map[string][]entity.SaleItem // por saleID
	items     map[string]entity.InventoryItem
	movements []entity.MovementHistory
	clients   map[string]entity.Client
	users     map[string]entity.User
}

func newState() *state {
	return &state{
		sales:     map[string]entity.Sale{},
		saleItems: map[string][]entity.SaleItem{},
		items:     map[string]entity.InventoryItem{},
		clients:   map[string]entity.Client{},
		users:     map[string]entity.User{},
	}
}

func (st *state) clone() *state {
	c := newState()
	for k, v := range st.sales {
		c.sales[k] = v
	}
	for k, v := range st.saleItems {
		c.saleItems[k] = append([]entity.SaleItem(nil), v...)
	}
	for k, v := range st.items {
		c.items[k] = v
	}
	c.movements = append([]entity.MovementHistory(nil), st.movements...)
	for k, v := range st.clients {
		c.clients[k] = v
	}
	for k, v := range st.users {
		c.users[k] = v
	}
	return c
}

// Store contiene el estado compartido. Los puertos se obtienen con las vistas
// SaleRepo, ItemRepo, MovementRepo, ClientRepo y UserRepo; el propio Store
// actúa como TxRunner.
type Store struct {
	mu sync.RWMutex
	st *state
}

// New crea un Store vacío.
func New() *Store {
	return &Store{st: newState()}
}

// SeedItem registra un producto de inventario.
func (s *Store) SeedItem(it entity.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.items[it.ID] = it
}

// SeedClient registra un cliente.
func (s *Store) SeedClient(c entity.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.clients[c.ID] = c
}

// SeedUser registra un usuario.
func (s *Store) SeedUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID] = u
}

// SeedSale registra una venta ya confirmada con sus líneas.
func (s *Store) SeedSale(sale entity.Sale, items []entity.SaleItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.sales[sale.ID] = sale
	s.st.saleItems[sale.ID] = append([]entity.SaleItem(nil), items...)
}

// Item devuelve una copia del producto, para aserciones en tests.
func (s *Store) Item(id string) (entity.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.st.items[id]
	return it, ok
}

// Movements devuelve una copia del historial completo, para aserciones en tests.
func (s *Store) Movements() []entity.MovementHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.MovementHistory(nil), s.st.movements...)
}

// Run ejecuta fn sobre una copia del estado y la publica solo si fn no falla.
func (s *Store) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.MovementHistoryRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.st.clone()
	err := fn(saleView{st: staged}, itemView{st: staged}, movementView{st: staged})
	if err != nil {
		return err
	}
	s.st = staged
	return nil
}

// SaleRepo devuelve la vista SaleRepository del store.
func (s *Store) SaleRepo() repository.SaleRepository { return saleView{s: s} }

// ItemRepo devuelve la vista InventoryItemRepository del store.
func (s *Store) ItemRepo() repository.InventoryItemRepository { return itemView{s: s} }

// MovementRepo devuelve la vista MovementHistoryRepository del store.
func (s *Store) MovementRepo() repository.MovementHistoryRepository { return movementView{s: s} }

// ClientRepo devuelve la vista ClientRepository del store.
func (s *Store) ClientRepo() repository.ClientRepository { return clientView{s: s} }

// UserRepo devuelve la vista UserRepository del store.
func (s *Store) UserRepo() repository.UserRepository { return userView{s: s} }

// Las vistas operan en dos modos: atadas al Store (toman el lock) o atadas al
// estado de una transacción en curso (st != nil, el lock ya lo sostiene Run).

type saleView struct {
	s  *Store
	st *state
}

var _ repository.SaleRepository = saleView{}

func (v saleView) run(write bool, fn func(st *state)) {
	if v.st != nil {
		fn(v.st)
		return
	}
	if write {
		v.s.mu.Lock()
		defer v.s.mu.Unlock()
	} else {
		v.s.mu.RLock()
		defer v.s.mu.RUnlock()
	}
	fn(v.s.st)
}

func (v saleView) Create(sale *entity.Sale) error {
	v.run(true, func(st *state) { st.sales[sale.ID] = *sale })
	return nil
}

func (v saleView) CreateItem(item *entity.SaleItem) error {
	v.run(true, func(st *state) {
		st.saleItems[item.SaleID] = append(st.saleItems[item.SaleID], *item)
	})
	return nil
}

func (v saleView) GetByID(id string) (*entity.Sale, error) {
	var out *entity.Sale
	v.run(false, func(st *state) {
		s, ok := st.sales[id]
		if !ok {
			return
		}
		if c, ok := st.clients[s.ClientID]; ok {
			s.ClientName = c.Name
		}
		out = &s
	})
	return out, nil
}

func (v saleView) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	v.run(false, func(st *state) {
		items := st.saleItems[saleID]
		out = make([]*entity.SaleItem, 0, len(items))
		for i := range items {
			it := items[i]
			out = append(out, &it)
		}
	})
	return out, nil
}

func (v saleView) List(filter repository.SaleFilter) ([]*entity.Sale, int, error) {
	var (
		page  []*entity.Sale
		total int
	)
	v.run(false, func(st *state) {
		var matched []entity.Sale
		search := strings.ToLower(filter.Search)
		for _, s := range st.sales {
			if c, ok := st.clients[s.ClientID]; ok {
				s.ClientName = c.Name
			}
			if search != "" && !strings.Contains(strings.ToLower(s.ClientName), search) {
				continue
			}
			if filter.Status != "" && s.Status != filter.Status {
				continue
			}
			if filter.StartDate != nil && s.CreatedAt.Before(*filter.StartDate) {
				continue
			}
			if filter.EndDate != nil && s.CreatedAt.After(*filter.EndDate) {
				continue
			}
			matched = append(matched, s)
		}
		sort.Slice(matched, func(i, j int) bool {
			if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
				return matched[i].CreatedAt.After(matched[j].CreatedAt)
			}
			return matched[i].ID > matched[j].ID
		})

		total = len(matched)
		start, end := pageBounds(total, filter.Limit, filter.Offset)
		page = make([]*entity.Sale, 0, end-start)
		for i := start; i < end; i++ {
			s := matched[i]
			page = append(page, &s)
		}
	})
	return page, total, nil
}

type itemView struct {
	s  *Store
	st *state
}

var _ repository.InventoryItemRepository = itemView{}

func (v itemView) run(write bool, fn func(st *state)) {
	saleView{s: v.s, st: v.st}.run(write, fn)
}

func (v itemView) GetByID(id string) (*entity.InventoryItem, error) {
	var out *entity.InventoryItem
	v.run(false, func(st *state) {
		if it, ok := st.items[id]; ok {
			out = &it
		}
	})
	return out, nil
}

func (v itemView) List(limit, offset int) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	v.run(false, func(st *state) {
		all := make([]entity.InventoryItem, 0, len(st.items))
		for _, it := range st.items {
			all = append(all, it)
		}
		sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
		start, end := pageBounds(len(all), limit, offset)
		out = make([]*entity.InventoryItem, 0, end-start)
		for i := start; i < end; i++ {
			it := all[i]
			out = append(out, &it)
		}
	})
	return out, nil
}

// DecrementStock emula el update condicional del store SQL: la guarda
// stock >= quantity se evalúa bajo el mismo lock que aplica el write.
func (v itemView) DecrementStock(id string, quantity int) (bool, error) {
	var ok bool
	v.run(true, func(st *state) {
		it, found := st.items[id]
		if !found || it.Stock < quantity {
			return
		}
		it.Stock -= quantity
		it.UpdatedAt = time.Now()
		st.items[id] = it
		ok = true
	})
	return ok, nil
}

type movementView struct {
	s  *Store
	st *state
}

var _ repository.MovementHistoryRepository = movementView{}

func (v movementView) run(write bool, fn func(st *state)) {
	saleView{s: v.s, st: v.st}.run(write, fn)
}

func (v movementView) Create(m *entity.MovementHistory) error {
	v.run(true, func(st *state) { st.movements = append(st.movements, *m) })
	return nil
}

func (v movementView) ListByItem(itemID string, limit, offset int) ([]*entity.MovementHistory, error) {
	var out []*entity.MovementHistory
	v.run(false, func(st *state) {
		var matched []entity.MovementHistory
		for _, m := range st.movements {
			if m.InventoryItemID == itemID {
				matched = append(matched, m)
			}
		}
		sort.Slice(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
		start, end := pageBounds(len(matched), limit, offset)
		out = make([]*entity.MovementHistory, 0, end-start)
		for i := start; i < end; i++ {
			m := matched[i]
			out = append(out, &m)
		}
	})
	return out, nil
}

type clientView struct {
	s *Store
}

var _ repository.ClientRepository = clientView{}

func (v clientView) GetByID(id string) (*entity.Client, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if c, ok := v.s.st.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

type userView struct {
	s *Store
}

var _ repository.UserRepository = userView{}

func (v userView) GetByID(id string) (*entity.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	if u, ok := v.s.st.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (v userView) GetByEmail(email string) (*entity.User, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	for _, u := range v.s.st.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func pageBounds(total, limit, offset int) (int, int) {
	start := offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + limit
	if limit <= 0 || end > total {
		end = total
	}
	return start, end
}
