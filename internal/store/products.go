package store

import (
	"context"
	"database/sql"

	"zielarnia/internal/domain"
)

const (
	selectProductsSQL = "SELECT id, nazwa, opis, cena, kategoria_id FROM Produkty ORDER BY nazwa"
	selectProductSQL  = "SELECT id, nazwa, opis, cena, kategoria_id FROM Produkty WHERE id = ?"
	insertProductSQL  = "INSERT INTO Produkty (nazwa, opis, cena, kategoria_id) VALUES (?, ?, ?, ?)"
	updateProductSQL  = "UPDATE Produkty SET nazwa = ?, opis = ?, cena = ?, kategoria_id = ? WHERE id = ?"
	deleteProductSQL  = "DELETE FROM Produkty WHERE id = ?"

	selectCategoriesSQL = "SELECT id, nazwa FROM Kategorie ORDER BY nazwa"
	selectCategorySQL   = "SELECT id, nazwa FROM Kategorie WHERE id = ?"
	insertCategorySQL   = "INSERT INTO Kategorie (nazwa) VALUES (?)"
	updateCategorySQL   = "UPDATE Kategorie SET nazwa = ? WHERE id = ?"
	deleteCategorySQL   = "DELETE FROM Kategorie WHERE id = ?"
)

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var (
		p     domain.Product
		desc  sql.NullString
		catID sql.NullInt64
	)
	if err := rows.Scan(&p.ID, &p.Name, &desc, &p.Price, &catID); err != nil {
		return domain.Product{}, err
	}
	p.Description = strPtr(desc)
	p.CategoryID = intPtr(catID)
	return p, nil
}

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	return queryList(ctx, s, selectProductsSQL, scanProduct)
}

func (s *Store) ProductByID(ctx context.Context, id int) (*domain.Product, error) {
	return queryOne(ctx, s, selectProductSQL, scanProduct, id)
}

func (s *Store) AddProduct(ctx context.Context, p domain.Product) error {
	return s.exec(ctx, insertProductSQL, p.Name, nullString(p.Description), p.Price, nullInt(p.CategoryID))
}

func (s *Store) UpdateProduct(ctx context.Context, p domain.Product) error {
	return s.exec(ctx, updateProductSQL, p.Name, nullString(p.Description), p.Price, nullInt(p.CategoryID), p.ID)
}

func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	return s.exec(ctx, deleteProductSQL, id)
}

func scanCategory(rows *sql.Rows) (domain.Category, error) {
	var c domain.Category
	if err := rows.Scan(&c.ID, &c.Name); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *Store) Categories(ctx context.Context) ([]domain.Category, error) {
	return queryList(ctx, s, selectCategoriesSQL, scanCategory)
}

func (s *Store) CategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	return queryOne(ctx, s, selectCategorySQL, scanCategory, id)
}

func (s *Store) AddCategory(ctx context.Context, c domain.Category) error {
	return s.exec(ctx, insertCategorySQL, c.Name)
}

func (s *Store) UpdateCategory(ctx context.Context, c domain.Category) error {
	return s.exec(ctx, updateCategorySQL, c.Name, c.ID)
}

func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	return s.exec(ctx, deleteCategorySQL, id)
}
