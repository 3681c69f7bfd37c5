package store

import (
	"context"
	"database/sql"

	"zielarnia/internal/domain"
)

const (
	selectSuppliersSQL = "SELECT id, nazwa, kontakt, adres_id FROM Dostawcy ORDER BY nazwa"
	selectSupplierSQL  = "SELECT id, nazwa, kontakt, adres_id FROM Dostawcy WHERE id = ?"
	insertSupplierSQL  = "INSERT INTO Dostawcy (nazwa, kontakt, adres_id) VALUES (?, ?, ?)"
	updateSupplierSQL  = "UPDATE Dostawcy SET nazwa = ?, kontakt = ?, adres_id = ? WHERE id = ?"
	deleteSupplierSQL  = "DELETE FROM Dostawcy WHERE id = ?"

	selectDeliveryLinksSQL = "SELECT d.dostawca_id, s.nazwa, d.produkt_id, p.nazwa FROM Dostawy d JOIN Dostawcy s ON d.dostawca_id = s.id JOIN Produkty p ON d.produkt_id = p.id ORDER BY s.nazwa, p.nazwa"
	insertDeliveryLinkSQL  = "INSERT IGNORE INTO Dostawy (dostawca_id, produkt_id) VALUES (?, ?)"
	deleteDeliveryLinkSQL  = "DELETE FROM Dostawy WHERE dostawca_id = ? AND produkt_id = ?"
)

func scanSupplier(rows *sql.Rows) (domain.Supplier, error) {
	var (
		sp      domain.Supplier
		contact sql.NullString
		addrID  sql.NullInt64
	)
	if err := rows.Scan(&sp.ID, &sp.Name, &contact, &addrID); err != nil {
		return domain.Supplier{}, err
	}
	sp.ContactInfo = strPtr(contact)
	sp.AddressID = intPtr(addrID)
	return sp, nil
}

func (s *Store) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	return queryList(ctx, s, selectSuppliersSQL, scanSupplier)
}

func (s *Store) SupplierByID(ctx context.Context, id int) (*domain.Supplier, error) {
	return queryOne(ctx, s, selectSupplierSQL, scanSupplier, id)
}

func (s *Store) AddSupplier(ctx context.Context, sp domain.Supplier) error {
	return s.exec(ctx, insertSupplierSQL, sp.Name, nullString(sp.ContactInfo), nullInt(sp.AddressID))
}

func (s *Store) UpdateSupplier(ctx context.Context, sp domain.Supplier) error {
	return s.exec(ctx, updateSupplierSQL, sp.Name, nullString(sp.ContactInfo), nullInt(sp.AddressID), sp.ID)
}

func (s *Store) DeleteSupplier(ctx context.Context, id int) error {
	return s.exec(ctx, deleteSupplierSQL, id)
}

func scanDeliveryLink(rows *sql.Rows) (domain.DeliveryLink, error) {
	var l domain.DeliveryLink
	if err := rows.Scan(&l.SupplierID, &l.SupplierName, &l.ProductID, &l.ProductName); err != nil {
		return domain.DeliveryLink{}, err
	}
	return l, nil
}

// DeliveryLinks lists supplier–product pairs with their names resolved.
func (s *Store) DeliveryLinks(ctx context.Context) ([]domain.DeliveryLink, error) {
	return queryList(ctx, s, selectDeliveryLinksSQL, scanDeliveryLink)
}

// AddDeliveryLink ties a supplier to a product; adding an existing pair is
// a no-op (INSERT IGNORE).
func (s *Store) AddDeliveryLink(ctx context.Context, supplierID, productID int) error {
	return s.exec(ctx, insertDeliveryLinkSQL, supplierID, productID)
}

func (s *Store) RemoveDeliveryLink(ctx context.Context, supplierID, productID int) error {
	return s.exec(ctx, deleteDeliveryLinkSQL, supplierID, productID)
}
