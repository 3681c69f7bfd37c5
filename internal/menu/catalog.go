package menu

import (
	"context"
	"fmt"

	"zielarnia/internal/domain"
)

func (m *Menu) listProducts(ctx context.Context) error {
	products, err := m.store.Products(ctx)
	if err != nil {
		return err
	}
	m.ui.Header("Products")
	if len(products) == 0 {
		m.ui.Println("No products in the catalogue.")
		return nil
	}
	for _, p := range products {
		desc := ""
		if p.Description != nil {
			desc = *p.Description
		}
		cat := "-"
		if p.CategoryID != nil {
			cat = fmt.Sprintf("%d", *p.CategoryID)
		}
		m.ui.Printf("%4d  %-30s %8.2f zł  cat:%-4s %s\n", p.ID, p.Name, p.Price, cat, desc)
	}
	return nil
}

func (m *Menu) manageProducts(ctx context.Context) error {
	for {
		m.ui.Header("Product management")
		m.ui.Println("1. List  2. Add  3. Edit  4. Delete  0. Back")
		switch m.ui.ReadInt("Choose:") {
		case 1:
			if err := m.listProducts(ctx); err != nil {
				return err
			}
		case 2:
			if err := m.addProduct(ctx); err != nil {
				return err
			}
		case 3:
			if err := m.editProduct(ctx); err != nil {
				return err
			}
		case 4:
			if err := m.deleteProduct(ctx); err != nil {
				return err
			}
		case 0:
			return nil
		default:
			m.ui.Warn("Unknown option.")
		}
		if m.ui.EOF() {
			return nil
		}
	}
}

func (m *Menu) addProduct(ctx context.Context) error {
	form := productForm{
		Name:  m.ui.ReadString("Product name:", false),
		Price: m.ui.ReadFloat("Price:", 0),
	}
	if !m.checkForm(form) {
		return nil
	}
	p := domain.Product{Name: form.Name, Price: form.Price}
	if desc := m.ui.ReadString("Description (optional):", true); desc != "" {
		p.Description = &desc
	}
	if catID := m.ui.ReadInt("Category id (0 for none):"); catID > 0 {
		category, err := m.store.CategoryByID(ctx, catID)
		if err != nil {
			return err
		}
		if category == nil {
			m.ui.Warn("No such category, product not saved.")
			return nil
		}
		p.CategoryID = &catID
	}
	if err := m.store.AddProduct(ctx, p); err != nil {
		return err
	}
	m.ui.Success(fmt.Sprintf("Product %q added.", p.Name))
	m.log.Info(fmt.Sprintf("product %q added", p.Name))
	return nil
}

func (m *Menu) editProduct(ctx context.Context) error {
	id := m.ui.ReadIntAtLeast("Product id to edit:", 1)
	p, err := m.store.ProductByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		m.ui.Warn("No such product.")
		return nil
	}
	if name := m.ui.ReadString(fmt.Sprintf("Name [%s]:", p.Name), true); name != "" {
		p.Name = name
	}
	if m.ui.Confirm("Change the price?") {
		p.Price = m.ui.ReadFloat("New price:", 0.01)
	}
	if err := m.store.UpdateProduct(ctx, *p); err != nil {
		return err
	}
	m.ui.Success("Product updated.")
	m.log.Info(fmt.Sprintf("product %d updated", p.ID))
	return nil
}

func (m *Menu) deleteProduct(ctx context.Context) error {
	id := m.ui.ReadIntAtLeast("Product id to delete:", 1)
	if !m.ui.Confirm(fmt.Sprintf("Really delete product %d?", id)) {
		return nil
	}
	if err := m.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	m.ui.Success("Product deleted.")
	m.log.Warn(fmt.Sprintf("product %d deleted", id))
	return nil
}

func (m *Menu) manageCategories(ctx context.Context) error {
	for {
		m.ui.Header("Category management")
		m.ui.Println("1. List  2. Add  3. Rename  4. Delete  0. Back")
		switch m.ui.ReadInt("Choose:") {
		case 1:
			categories, err := m.store.Categories(ctx)
			if err != nil {
				return err
			}
			for _, c := range categories {
				m.ui.Printf("%4d  %s\n", c.ID, c.Name)
			}
		case 2:
			name := m.ui.ReadString("Category name:", false)
			if name == "" {
				return nil
			}
			if err := m.store.AddCategory(ctx, domain.Category{Name: name}); err != nil {
				return err
			}
			m.ui.Success(fmt.Sprintf("Category %q added.", name))
		case 3:
			id := m.ui.ReadIntAtLeast("Category id:", 1)
			category, err := m.store.CategoryByID(ctx, id)
			if err != nil {
				return err
			}
			if category == nil {
				m.ui.Warn("No such category.")
				continue
			}
			name := m.ui.ReadString(fmt.Sprintf("New name [%s]:", category.Name), false)
			if name == "" {
				return nil
			}
			if err := m.store.UpdateCategory(ctx, domain.Category{ID: id, Name: name}); err != nil {
				return err
			}
			m.ui.Success("Category renamed.")
		case 4:
			id := m.ui.ReadIntAtLeast("Category id to delete:", 1)
			if !m.ui.Confirm(fmt.Sprintf("Really delete category %d?", id)) {
				continue
			}
			if err := m.store.DeleteCategory(ctx, id); err != nil {
				return err
			}
			m.ui.Success("Category deleted.")
		case 0:
			return nil
		default:
			m.ui.Warn("Unknown option.")
		}
		if m.ui.EOF() {
			return nil
		}
	}
}
