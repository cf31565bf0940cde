package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
)

type InvoiceLine struct {
	ServiceID   uint64
	Description string
	Unit        string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

// Invoice is derived from an order and its lines on every read. It is never stored.
type Invoice struct {
	OrderID         uint64
	OrderDate       time.Time
	RealisationDate time.Time
	DeliveryDate    time.Time
	Client          Client
	Lines           []InvoiceLine
	Total           decimal.Decimal
}

// NewInvoice computes line amounts and the total. services may miss entries;
// those lines are rendered with placeholder description and unit.
func NewInvoice(order *Order, client *Client, lines []*OrderLine, services map[uint64]*Service) (*Invoice, error) {
	inv := &Invoice{
		OrderID:         order.ID,
		OrderDate:       order.OrderDate,
		RealisationDate: order.RealisationDate,
		DeliveryDate:    order.DeliveryDate,
		Client:          Client{ID: order.ClientID, Name: UnknownLabel},
		Lines:           make([]InvoiceLine, 0, len(lines)),
		Total:           decimal.Zero,
	}
	if client != nil {
		inv.Client = *client
	}

	for _, l := range lines {
		amount, err := l.Amount()
		if err != nil {
			return nil, err
		}
		il := InvoiceLine{
			ServiceID:   l.ServiceID,
			Description: UnknownLabel,
			Unit:        UnknownUnit,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      amount,
		}
		if s, ok := services[l.ServiceID]; ok && s != nil {
			il.Description = s.Title
			if s.Unit != "" {
				il.Unit = s.Unit
			}
		}
		inv.Lines = append(inv.Lines, il)

		inv.Total, err = inv.Total.Add(amount)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
	}

	sort.Slice(inv.Lines, func(i, j int) bool {
		return inv.Lines[i].ServiceID < inv.Lines[j].ServiceID
	})

	return inv, nil
}

// SearchText is the rendered content the invoice search matches against.
func (inv *Invoice) SearchText() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(inv.OrderID, 10))
	b.WriteByte(' ')
	b.WriteString(inv.Client.Name)
	b.WriteByte(' ')
	b.WriteString(inv.OrderDate.Format(DateLayout))
	b.WriteByte(' ')
	b.WriteString(inv.Total.String())
	for _, l := range inv.Lines {
		fmt.Fprintf(&b, " %s %s %d %s %s", l.Description, l.Unit, l.Quantity, l.UnitPrice.String(), l.Amount.String())
	}
	return b.String()
}

// MonthlyRevenue is the sum of line amounts of orders placed in one month.
type MonthlyRevenue struct {
	Year    int
	Month   int
	Revenue decimal.Decimal
}
