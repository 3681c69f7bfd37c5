package store

import (
	"context"
	"database/sql"

	"zielarnia/internal/domain"
)

const (
	selectAddressSQL = "SELECT id, Kraj, miasto, ulica, numer_budynku, numer_mieszkania FROM adresy WHERE id = ?"
	insertAddressSQL = "INSERT INTO adresy (Kraj, miasto, ulica, numer_budynku, numer_mieszkania) VALUES (?, ?, ?, ?, ?)"
	updateAddressSQL = "UPDATE adresy SET Kraj = ?, miasto = ?, ulica = ?, numer_budynku = ?, numer_mieszkania = ? WHERE id = ?"
)

func scanAddress(rows *sql.Rows) (domain.Address, error) {
	var (
		a   domain.Address
		apt sql.NullString
	)
	if err := rows.Scan(&a.ID, &a.Country, &a.City, &a.Street, &a.BuildingNumber, &apt); err != nil {
		return domain.Address{}, err
	}
	a.ApartmentNumber = strPtr(apt)
	return a, nil
}

// AddressByID returns (nil, nil) when the address does not exist.
func (s *Store) AddressByID(ctx context.Context, id int) (*domain.Address, error) {
	return queryOne(ctx, s, selectAddressSQL, scanAddress, id)
}

// AddAddress inserts the address and returns the generated id.
func (s *Store) AddAddress(ctx context.Context, a domain.Address) (int, error) {
	return s.insertID(ctx, insertAddressSQL,
		a.Country, a.City, a.Street, a.BuildingNumber, nullString(a.ApartmentNumber))
}

func (s *Store) UpdateAddress(ctx context.Context, a domain.Address) error {
	return s.exec(ctx, updateAddressSQL,
		a.Country, a.City, a.Street, a.BuildingNumber, nullString(a.ApartmentNumber), a.ID)
}
