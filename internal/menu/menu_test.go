package menu

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"zielarnia/internal/auth"
	"zielarnia/internal/console"
	"zielarnia/internal/logging"
	"zielarnia/internal/store"
)

const (
	productsQuery      = "SELECT id, nazwa, opis, cena, kategoria_id FROM Produkty ORDER BY nazwa"
	clientByEmailQuery = "SELECT id, imie, nazwisko, email, telefon, adres_id, id_paczkomatu FROM Klienci WHERE email = ? LIMIT 1"
	openOrdersQuery    = "SELECT id, klient_id, data_zamowienia, status FROM Zamowienia WHERE status IN (?,?) ORDER BY data_zamowienia DESC"
	orderItemsQuery    = "SELECT zamowienie_id, produkt_id, ilosc FROM SzczegolyZamowienia WHERE zamowienie_id = ?"
	insertOrderQuery   = "INSERT INTO Zamowienia (klient_id, data_zamowienia, status) VALUES (?, ?, ?)"
	insertItemQuery    = "INSERT INTO SzczegolyZamowienia (zamowienie_id, produkt_id, ilosc) VALUES (?, ?, ?)"
	updateStatusQuery  = "UPDATE Zamowienia SET status = ? WHERE id = ?"
	clientByIDQuery    = "SELECT id, imie, nazwisko, email, telefon, adres_id, id_paczkomatu FROM Klienci WHERE id = ?"
	supplierByIDQuery  = "SELECT id, nazwa, kontakt, adres_id FROM Dostawcy WHERE id = ?"
	addressByIDQuery   = "SELECT id, Kraj, miasto, ulica, numer_budynku, numer_mieszkania FROM adresy WHERE id = ?"
	updateClientQuery  = "UPDATE Klienci SET imie = ?, nazwisko = ?, email = ?, telefon = ?, adres_id = ?, id_paczkomatu = ? WHERE id = ?"
	updateAddressQuery = "UPDATE adresy SET Kraj = ?, miasto = ?, ulica = ?, numer_budynku = ?, numer_mieszkania = ? WHERE id = ?"
)

// newTestMenu wires a Menu against a sqlmock database and a scripted console.
func newTestMenu(t *testing.T, input string) (*Menu, sqlmock.Sqlmock, *bytes.Buffer) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log, err := logging.New(filepath.Join(t.TempDir(), "logs.txt"))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	ui := console.New(strings.NewReader(input), out)
	return New(store.New(db, log), log, ui), mock, out
}

func identity(login string, role auth.Role) *auth.Identity {
	return &auth.Identity{Login: login, Role: role, SessionID: uuid.New()}
}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "nazwa", "opis", "cena", "kategoria_id"}).
		AddRow(1, "Mięta", "suszona", 12.50, nil).
		AddRow(2, "Rumianek", nil, 9.99, nil)
}

func TestClientCannotReachManagementOptions(t *testing.T) {
	// option 10 is herbalist territory; nothing may hit the database
	m, mock, out := newTestMenu(t, "10\n0\n")

	m.Run(context.Background(), identity("jan@example.com", auth.RoleClient))

	require.Contains(t, out.String(), "Unknown option.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientMenuHidesManagementSections(t *testing.T) {
	m, _, out := newTestMenu(t, "0\n")
	m.Run(context.Background(), identity("jan@example.com", auth.RoleClient))

	require.NotContains(t, out.String(), "Shop management")
	require.NotContains(t, out.String(), "Administration")

	m, _, out = newTestMenu(t, "0\n")
	m.Run(context.Background(), identity("boss@example.com", auth.RoleAdmin))
	require.Contains(t, out.String(), "Shop management")
	require.Contains(t, out.String(), "Administration")
}

func TestListProducts(t *testing.T) {
	m, mock, out := newTestMenu(t, "1\n0\n")
	mock.ExpectQuery(productsQuery).WillReturnRows(productRows())

	m.Run(context.Background(), identity("jan@example.com", auth.RoleClient))

	require.Contains(t, out.String(), "Mięta")
	require.Contains(t, out.String(), "Rumianek")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	// choose 2, order two positions, finish with 0, confirm, log out
	m, mock, out := newTestMenu(t, "2\n1\n2\n2\n3\n0\ny\n0\n")

	clientRows := sqlmock.NewRows([]string{"id", "imie", "nazwisko", "email", "telefon", "adres_id", "id_paczkomatu"}).
		AddRow(4, "Jan", "Kowalski", "jan@example.com", "600700800", 2, nil)
	mock.ExpectQuery(clientByEmailQuery).WithArgs("jan@example.com").WillReturnRows(clientRows)
	mock.ExpectQuery(productsQuery).WillReturnRows(productRows())

	mock.ExpectBegin()
	mock.ExpectExec(insertOrderQuery).
		WithArgs(4, sqlmock.AnyArg(), "Nowe").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(insertItemQuery).WithArgs(7, 1, 2).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertItemQuery).WithArgs(7, 2, 3).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	m.Run(context.Background(), identity("jan@example.com", auth.RoleClient))

	require.Contains(t, out.String(), "Order 7 saved.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderMergesDuplicatePicks(t *testing.T) {
	// the same product picked twice becomes one line item with the summed quantity
	m, mock, out := newTestMenu(t, "2\n1\n2\n1\n3\n0\ny\n0\n")

	clientRows := sqlmock.NewRows([]string{"id", "imie", "nazwisko", "email", "telefon", "adres_id", "id_paczkomatu"}).
		AddRow(4, "Jan", "Kowalski", "jan@example.com", "600700800", 2, nil)
	mock.ExpectQuery(clientByEmailQuery).WithArgs("jan@example.com").WillReturnRows(clientRows)
	mock.ExpectQuery(productsQuery).WillReturnRows(productRows())

	mock.ExpectBegin()
	mock.ExpectExec(insertOrderQuery).
		WithArgs(4, sqlmock.AnyArg(), "Nowe").
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectExec(insertItemQuery).WithArgs(8, 1, 5).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	m.Run(context.Background(), identity("jan@example.com", auth.RoleClient))

	require.Contains(t, out.String(), "Save the order with 1 positions?")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrderRequiresClientProfile(t *testing.T) {
	m, mock, out := newTestMenu(t, "2\n0\n")

	mock.ExpectQuery(clientByEmailQuery).WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "imie", "nazwisko", "email", "telefon", "adres_id", "id_paczkomatu"}))

	m.Run(context.Background(), identity("ghost@example.com", auth.RoleClient))

	require.Contains(t, out.String(), "No client profile matches your login.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmptyOrderIsDiscarded(t *testing.T) {
	m, mock, out := newTestMenu(t, "2\n0\n0\n")

	clientRows := sqlmock.NewRows([]string{"id", "imie", "nazwisko", "email", "telefon", "adres_id", "id_paczkomatu"}).
		AddRow(4, "Jan", "Kowalski", "jan@example.com", "600700800", 2, nil)
	mock.ExpectQuery(clientByEmailQuery).WithArgs("jan@example.com").WillReturnRows(clientRows)
	mock.ExpectQuery(productsQuery).WillReturnRows(productRows())

	m.Run(context.Background(), identity("jan@example.com", auth.RoleClient))

	require.Contains(t, out.String(), "Order is empty, nothing was saved.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuSurvivesStoreFailure(t *testing.T) {
	// the first action fails, the session continues and logs out cleanly
	m, mock, out := newTestMenu(t, "1\n0\n")
	mock.ExpectQuery(productsQuery).WillReturnError(errors.New("server has gone away"))

	m.Run(context.Background(), identity("jan@example.com", auth.RoleClient))

	require.Contains(t, out.String(), "The operation failed")
	require.Contains(t, out.String(), "Log out and exit")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManageOrdersUpdatesStatus(t *testing.T) {
	// choose 13, pick order 7, move it to Fulfilled (third status), log out
	m, mock, out := newTestMenu(t, "13\n7\n3\n0\n")

	orderRows := sqlmock.NewRows([]string{"id", "klient_id", "data_zamowienia", "status"}).
		AddRow(7, 4, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), "Nowe")
	mock.ExpectQuery(openOrdersQuery).WithArgs("Nowe", "W trakcie").WillReturnRows(orderRows)
	mock.ExpectQuery(orderItemsQuery).WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"zamowienie_id", "produkt_id", "ilosc"}).AddRow(7, 1, 2))
	mock.ExpectExec(updateStatusQuery).WithArgs("Zrealizowane", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	m.Run(context.Background(), identity("herb@example.com", auth.RoleHerbalist))

	require.Contains(t, out.String(), "Order 7 is now Fulfilled.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestManageOrdersStopsWhenInputRunsOut(t *testing.T) {
	// input dries up at the status prompt; the session must end cleanly
	// with no status update instead of blowing up on a bad pick
	m, mock, out := newTestMenu(t, "13\n7\n")

	orderRows := sqlmock.NewRows([]string{"id", "klient_id", "data_zamowienia", "status"}).
		AddRow(7, 4, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), "Nowe")
	mock.ExpectQuery(openOrdersQuery).WithArgs("Nowe", "W trakcie").WillReturnRows(orderRows)
	mock.ExpectQuery(orderItemsQuery).WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"zamowienie_id", "produkt_id", "ilosc"}))

	m.Run(context.Background(), identity("herb@example.com", auth.RoleHerbalist))

	require.Contains(t, out.String(), "Unknown status.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShowClientAddress(t *testing.T) {
	m, mock, out := newTestMenu(t, "12\n5\n3\n0\n0\n")

	clientRows := sqlmock.NewRows([]string{"id", "imie", "nazwisko", "email", "telefon", "adres_id", "id_paczkomatu"}).
		AddRow(3, "Jan", "Kowalski", "jan@example.com", "600700800", 2, nil)
	mock.ExpectQuery(clientByIDQuery).WithArgs(3).WillReturnRows(clientRows)
	addressRows := sqlmock.NewRows([]string{"id", "Kraj", "miasto", "ulica", "numer_budynku", "numer_mieszkania"}).
		AddRow(2, "Polska", "Kraków", "Długa", "12", "4")
	mock.ExpectQuery(addressByIDQuery).WithArgs(2).WillReturnRows(addressRows)

	m.Run(context.Background(), identity("herb@example.com", auth.RoleHerbalist))

	require.Contains(t, out.String(), "Długa 12/4, Kraków, Polska")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShowSupplierAddress(t *testing.T) {
	m, mock, out := newTestMenu(t, "14\n5\n1\n0\n0\n")

	supplierRows := sqlmock.NewRows([]string{"id", "nazwa", "kontakt", "adres_id"}).
		AddRow(1, "Herbafarm", "kontakt@herbafarm.pl", 9)
	mock.ExpectQuery(supplierByIDQuery).WithArgs(1).WillReturnRows(supplierRows)
	addressRows := sqlmock.NewRows([]string{"id", "Kraj", "miasto", "ulica", "numer_budynku", "numer_mieszkania"}).
		AddRow(9, "Polska", "Poznań", "Zielna", "3", nil)
	mock.ExpectQuery(addressByIDQuery).WithArgs(9).WillReturnRows(addressRows)

	m.Run(context.Background(), identity("herb@example.com", auth.RoleHerbalist))

	require.Contains(t, out.String(), "Zielna 3, Poznań, Polska")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEditClientUpdatesAddress(t *testing.T) {
	// keep every client field, then change only the address city
	m, mock, out := newTestMenu(t, "12\n3\n5\n\n\n\n\ny\n\nGdańsk\n\n\n\n0\n0\n")

	clientRows := sqlmock.NewRows([]string{"id", "imie", "nazwisko", "email", "telefon", "adres_id", "id_paczkomatu"}).
		AddRow(5, "Jan", "Kowalski", "jan@example.com", "600700800", 2, nil)
	mock.ExpectQuery(clientByIDQuery).WithArgs(5).WillReturnRows(clientRows)
	mock.ExpectExec(updateClientQuery).
		WithArgs("Jan", "Kowalski", "jan@example.com", "600700800", 2, nil, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	addressRows := sqlmock.NewRows([]string{"id", "Kraj", "miasto", "ulica", "numer_budynku", "numer_mieszkania"}).
		AddRow(2, "Polska", "Kraków", "Długa", "12", nil)
	mock.ExpectQuery(addressByIDQuery).WithArgs(2).WillReturnRows(addressRows)
	mock.ExpectExec(updateAddressQuery).
		WithArgs("Polska", "Gdańsk", "Długa", "12", nil, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	m.Run(context.Background(), identity("herb@example.com", auth.RoleHerbalist))

	require.Contains(t, out.String(), "Address updated.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductFormValidation(t *testing.T) {
	m, _, out := newTestMenu(t, "")

	require.False(t, m.checkForm(productForm{Name: "", Price: 0}))
	require.Contains(t, out.String(), "Name")
	require.Contains(t, out.String(), "Price")

	require.True(t, m.checkForm(productForm{Name: "Mięta", Price: 12.5}))
}

func TestClientFormRejectsBadEmail(t *testing.T) {
	m, _, out := newTestMenu(t, "")

	form := clientForm{FirstName: "Jan", LastName: "Kowalski", Email: "not-an-email", Phone: "600700800"}
	require.False(t, m.checkForm(form))
	require.Contains(t, out.String(), `"email"`)
}
