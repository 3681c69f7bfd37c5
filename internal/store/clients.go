package store

import (
	"context"
	"database/sql"

	"zielarnia/internal/domain"
)

const (
	selectClientsSQL       = "SELECT id, imie, nazwisko, email, telefon, adres_id, id_paczkomatu FROM Klienci"
	selectClientSQL        = "SELECT id, imie, nazwisko, email, telefon, adres_id, id_paczkomatu FROM Klienci WHERE id = ?"
	selectClientByEmailSQL = "SELECT id, imie, nazwisko, email, telefon, adres_id, id_paczkomatu FROM Klienci WHERE email = ? LIMIT 1"
	insertClientSQL        = "INSERT INTO Klienci (imie, nazwisko, email, telefon, adres_id, id_paczkomatu) VALUES (?, ?, ?, ?, ?, ?)"
	updateClientSQL        = "UPDATE Klienci SET imie = ?, nazwisko = ?, email = ?, telefon = ?, adres_id = ?, id_paczkomatu = ? WHERE id = ?"
	deleteClientSQL        = "DELETE FROM Klienci WHERE id = ?"
)

func scanClient(rows *sql.Rows) (domain.Client, error) {
	var (
		c      domain.Client
		locker sql.NullString
	)
	if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.AddressID, &locker); err != nil {
		return domain.Client{}, err
	}
	c.ParcelLockerID = strPtr(locker)
	return c, nil
}

func (s *Store) Clients(ctx context.Context) ([]domain.Client, error) {
	return queryList(ctx, s, selectClientsSQL, scanClient)
}

func (s *Store) ClientByID(ctx context.Context, id int) (*domain.Client, error) {
	return queryOne(ctx, s, selectClientSQL, scanClient, id)
}

// ClientByEmail resolves the logged-in identity to a client profile; the
// credential-store login is the client's email address.
func (s *Store) ClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	return queryOne(ctx, s, selectClientByEmailSQL, scanClient, email)
}

func (s *Store) AddClient(ctx context.Context, c domain.Client) error {
	return s.exec(ctx, insertClientSQL,
		c.FirstName, c.LastName, c.Email, c.Phone, c.AddressID, nullString(c.ParcelLockerID))
}

func (s *Store) UpdateClient(ctx context.Context, c domain.Client) error {
	return s.exec(ctx, updateClientSQL,
		c.FirstName, c.LastName, c.Email, c.Phone, c.AddressID, nullString(c.ParcelLockerID), c.ID)
}

func (s *Store) DeleteClient(ctx context.Context, id int) error {
	return s.exec(ctx, deleteClientSQL, id)
}
