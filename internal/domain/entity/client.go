package entity

import "time"

// Client representa un cliente de la clínica (dueño de mascotas).
// Su CRUD pertenece a otro subsistema; aquí solo se lee para asociar ventas
// y resolver el nombre en listados y recibos.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}
