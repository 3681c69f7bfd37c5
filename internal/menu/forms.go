package menu

import (
	"errors"
	"fmt"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Input forms collected from the console before anything touches the store.
// Validation rules live on the tags; checkForm turns violations into console
// warnings.

type productForm struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"required,gt=0"`
}

type clientForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required"`
}

type supplierForm struct {
	Name string `validate:"required"`
}

type billForm struct {
	BillTypeID int     `validate:"required,gt=0"`
	Amount     float64 `validate:"required,gt=0"`
}

// checkForm validates the form and prints one warning per broken rule.
// Returns true when the form is clean.
func (m *Menu) checkForm(form any) bool {
	err := m.validate.Struct(form)
	if err == nil {
		return true
	}
	var violations validatorv10.ValidationErrors
	if errors.As(err, &violations) {
		for _, v := range violations {
			m.ui.Warn(fmt.Sprintf("%s does not satisfy rule %q.", v.Field(), v.Tag()))
		}
	} else {
		m.ui.Warn(err.Error())
	}
	return false
}
