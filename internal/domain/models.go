package domain

import "time"

// The shop database is consumed, not owned, by this application: table and
// column names (Polish) are fixed by the existing schema, so the SQL in
// internal/store refers to them verbatim. The Go-side names live here.

// Address is a postal address referenced by clients and suppliers.
type Address struct {
	ID              int
	Country         string
	City            string
	Street          string
	BuildingNumber  string
	ApartmentNumber *string // nullable
}

// Product is an item sold by the shop.
type Product struct {
	ID          int
	Name        string
	Description *string
	Price       float64
	CategoryID  *int
}

// Category groups products.
type Category struct {
	ID   int
	Name string
}

// Client is a shop customer. Login in the credential store matches Email.
type Client struct {
	ID             int
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	AddressID      int
	ParcelLockerID *string
}

// Order is an order header; its line items live in OrderItem rows.
// Status is the only field that changes after creation.
type Order struct {
	ID        int
	ClientID  *int
	OrderDate time.Time
	Status    OrderStatus
}

// OrderItem is one product+quantity row belonging to an order. OrderID is
// backfilled from the generated order id during placement.
type OrderItem struct {
	OrderID   int
	ProductID int
	Quantity  int
}

// Supplier delivers products to the shop.
type Supplier struct {
	ID          int
	Name        string
	ContactInfo *string
	AddressID   *int
}

// DeliveryLink ties a supplier to a product it delivers.
type DeliveryLink struct {
	SupplierID   int
	SupplierName string
	ProductID    int
	ProductName  string
}

// BillType classifies bills (rent, utilities, ...).
type BillType struct {
	ID          int
	TypeName    string
	Description *string
}

// Bill is a single billing record.
type Bill struct {
	ID         int
	BillDate   time.Time
	BillTypeID int
	Amount     float64
}
