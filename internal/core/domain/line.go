package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Unit prices are stored as NUMERIC(18, 2).
const PriceScale = 2

var MaxUnitPrice = decimal.MustParse("9999999999999999.99")

// OrderLine is keyed by (OrderID, ServiceID). The line amount is never stored.
type OrderLine struct {
	OrderID   uint64
	ServiceID uint64
	Quantity  int64
	UnitPrice decimal.Decimal
}

func (l *OrderLine) Validate() error {
	if l.ServiceID == 0 {
		return ErrMissingField
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if l.UnitPrice.IsNeg() {
		return ErrInvalidPrice
	}
	if l.UnitPrice.Trim(0).Scale() > PriceScale {
		return ErrPricePrecision
	}
	if l.UnitPrice.Cmp(MaxUnitPrice) > 0 {
		return ErrPriceTooLarge
	}
	return nil
}

// Amount returns Quantity * UnitPrice.
func (l *OrderLine) Amount() (decimal.Decimal, error) {
	qty, err := decimal.New(l.Quantity, 0)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	amount, err := l.UnitPrice.Mul(qty)
	if err != nil {
		return decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	return amount, nil
}

type LineKey struct {
	OrderID   uint64
	ServiceID uint64
}

func (l *OrderLine) Key() LineKey {
	return LineKey{OrderID: l.OrderID, ServiceID: l.ServiceID}
}
