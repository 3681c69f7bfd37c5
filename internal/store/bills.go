package store

import (
	"context"
	"database/sql"

	"zielarnia/internal/domain"
)

const (
	selectBillTypesSQL      = "SELECT id, typ, opis FROM typy_rachunkow ORDER BY typ"
	selectBillTypeSQL       = "SELECT id, typ, opis FROM typy_rachunkow WHERE id = ?"
	selectBillTypeByNameSQL = "SELECT id, typ, opis FROM typy_rachunkow WHERE typ = ? LIMIT 1"
	insertBillTypeSQL       = "INSERT INTO typy_rachunkow (typ, opis) VALUES (?, ?)"
	updateBillTypeSQL       = "UPDATE typy_rachunkow SET typ = ?, opis = ? WHERE id = ?"
	deleteBillTypeSQL       = "DELETE FROM typy_rachunkow WHERE id = ?"

	selectBillsSQL = "SELECT id, data, typ, kwota FROM rachunki ORDER BY data DESC"
	selectBillSQL  = "SELECT id, data, typ, kwota FROM rachunki WHERE id = ?"
	insertBillSQL  = "INSERT INTO rachunki (data, typ, kwota) VALUES (?, ?, ?)"
	updateBillSQL  = "UPDATE rachunki SET data = ?, typ = ?, kwota = ? WHERE id = ?"
)

func scanBillType(rows *sql.Rows) (domain.BillType, error) {
	var (
		bt   domain.BillType
		desc sql.NullString
	)
	if err := rows.Scan(&bt.ID, &bt.TypeName, &desc); err != nil {
		return domain.BillType{}, err
	}
	bt.Description = strPtr(desc)
	return bt, nil
}

func (s *Store) BillTypes(ctx context.Context) ([]domain.BillType, error) {
	return queryList(ctx, s, selectBillTypesSQL, scanBillType)
}

func (s *Store) BillTypeByID(ctx context.Context, id int) (*domain.BillType, error) {
	return queryOne(ctx, s, selectBillTypeSQL, scanBillType, id)
}

func (s *Store) BillTypeByName(ctx context.Context, name string) (*domain.BillType, error) {
	return queryOne(ctx, s, selectBillTypeByNameSQL, scanBillType, name)
}

func (s *Store) AddBillType(ctx context.Context, bt domain.BillType) error {
	return s.exec(ctx, insertBillTypeSQL, bt.TypeName, nullString(bt.Description))
}

func (s *Store) UpdateBillType(ctx context.Context, bt domain.BillType) error {
	return s.exec(ctx, updateBillTypeSQL, bt.TypeName, nullString(bt.Description), bt.ID)
}

func (s *Store) DeleteBillType(ctx context.Context, id int) error {
	return s.exec(ctx, deleteBillTypeSQL, id)
}

func scanBill(rows *sql.Rows) (domain.Bill, error) {
	var b domain.Bill
	if err := rows.Scan(&b.ID, &b.BillDate, &b.BillTypeID, &b.Amount); err != nil {
		return domain.Bill{}, err
	}
	return b, nil
}

func (s *Store) Bills(ctx context.Context) ([]domain.Bill, error) {
	return queryList(ctx, s, selectBillsSQL, scanBill)
}

func (s *Store) BillByID(ctx context.Context, id int) (*domain.Bill, error) {
	return queryOne(ctx, s, selectBillSQL, scanBill, id)
}

func (s *Store) AddBill(ctx context.Context, b domain.Bill) error {
	return s.exec(ctx, insertBillSQL, b.BillDate, b.BillTypeID, b.Amount)
}

func (s *Store) UpdateBill(ctx context.Context, b domain.Bill) error {
	return s.exec(ctx, updateBillSQL, b.BillDate, b.BillTypeID, b.Amount, b.ID)
}
