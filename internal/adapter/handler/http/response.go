package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/govalues/decimal"
)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", domain.ErrBadRequest, s)
	}
	return t, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: id %q", domain.ErrBadRequest, s)
	}
	return id, nil
}

// parseMoney accepts a JSON number or a numeric string.
func parseMoney(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Decimal{}, domain.ErrMissingField
	}
	d, err := decimal.Parse(n.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q", domain.ErrBadRequest, n.String())
	}
	return d, nil
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

type LineReq struct {
	OrderID   uint64      `json:"orderId"`
	ServiceID uint64      `json:"serviceId"`
	Quantity  int64       `json:"quantity"`
	UnitPrice json.Number `json:"unitPrice" swaggertype:"string" example:"50000.00"`
}

func (r LineReq) toDomain() (*domain.OrderLine, error) {
	price, err := parseMoney(r.UnitPrice)
	if err != nil {
		return nil, err
	}
	return &domain.OrderLine{
		OrderID:   r.OrderID,
		ServiceID: r.ServiceID,
		Quantity:  r.Quantity,
		UnitPrice: price,
	}, nil
}

type LineResp struct {
	OrderID    uint64          `json:"orderId"`
	ServiceID  uint64          `json:"serviceId"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	LineAmount decimal.Decimal `json:"lineAmount" swaggertype:"string"`
}

func newLineResp(l *domain.OrderLine) (LineResp, error) {
	amount, err := l.Amount()
	if err != nil {
		return LineResp{}, err
	}
	return LineResp{
		OrderID:    l.OrderID,
		ServiceID:  l.ServiceID,
		Quantity:   l.Quantity,
		UnitPrice:  l.UnitPrice,
		LineAmount: amount,
	}, nil
}

func newLineList(lines []*domain.OrderLine) ([]LineResp, error) {
	result := make([]LineResp, 0, len(lines))
	for _, l := range lines {
		r, err := newLineResp(l)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}

type OrderReq struct {
	OrderDate       string    `json:"orderDate"`
	RealisationDate string    `json:"realisationDate"`
	DeliveryDate    string    `json:"deliveryDate"`
	ClientID        uint64    `json:"clientId"`
	Lines           []LineReq `json:"lines"`
}

func (r OrderReq) toDomain() (*domain.Order, error) {
	order := &domain.Order{ClientID: r.ClientID}

	var err error
	if r.OrderDate != "" {
		order.OrderDate, err = parseDate(r.OrderDate)
		if err != nil {
			return nil, err
		}
	}
	if r.RealisationDate == "" || r.DeliveryDate == "" {
		return nil, domain.ErrMissingField
	}
	order.RealisationDate, err = parseDate(r.RealisationDate)
	if err != nil {
		return nil, err
	}
	order.DeliveryDate, err = parseDate(r.DeliveryDate)
	if err != nil {
		return nil, err
	}

	for _, lr := range r.Lines {
		line, err := lr.toDomain()
		if err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}

	return order, nil
}

type OrderPatchReq struct {
	OrderDate       *string `json:"orderDate"`
	RealisationDate *string `json:"realisationDate"`
	DeliveryDate    *string `json:"deliveryDate"`
	ClientID        *uint64 `json:"clientId"`
}

func (r OrderPatchReq) toDomain() (domain.OrderPatch, error) {
	patch := domain.OrderPatch{ClientID: r.ClientID}

	dates := []struct {
		src *string
		dst **time.Time
	}{
		{r.OrderDate, &patch.OrderDate},
		{r.RealisationDate, &patch.RealisationDate},
		{r.DeliveryDate, &patch.DeliveryDate},
	}
	for _, d := range dates {
		if d.src == nil {
			continue
		}
		t, err := parseDate(*d.src)
		if err != nil {
			return domain.OrderPatch{}, err
		}
		*d.dst = &t
	}

	return patch, nil
}

type OrderResp struct {
	ID              uint64     `json:"id"`
	OrderDate       string     `json:"orderDate"`
	RealisationDate string     `json:"realisationDate"`
	DeliveryDate    string     `json:"deliveryDate"`
	ClientID        uint64     `json:"clientId"`
	ClientName      string     `json:"clientName,omitempty"`
	Lines           []LineResp `json:"lines,omitempty"`
}

func newOrderResp(o *domain.Order) (OrderResp, error) {
	lines, err := newLineList(o.Lines)
	if err != nil {
		return OrderResp{}, err
	}
	return OrderResp{
		ID:              o.ID,
		OrderDate:       formatDate(o.OrderDate),
		RealisationDate: formatDate(o.RealisationDate),
		DeliveryDate:    formatDate(o.DeliveryDate),
		ClientID:        o.ClientID,
		Lines:           lines,
	}, nil
}

type InvoiceLineResp struct {
	ServiceID   uint64          `json:"serviceId"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
}

type InvoiceResp struct {
	OrderID         uint64            `json:"orderId"`
	OrderDate       string            `json:"orderDate"`
	RealisationDate string            `json:"realisationDate"`
	DeliveryDate    string            `json:"deliveryDate"`
	ClientID        uint64            `json:"clientId"`
	ClientName      string            `json:"clientName"`
	ClientPhone     string            `json:"clientPhone,omitempty"`
	Lines           []InvoiceLineResp `json:"lines"`
	Total           decimal.Decimal   `json:"total" swaggertype:"string"`
}

func newInvoiceResp(inv *domain.Invoice) InvoiceResp {
	resp := InvoiceResp{
		OrderID:         inv.OrderID,
		OrderDate:       formatDate(inv.OrderDate),
		RealisationDate: formatDate(inv.RealisationDate),
		DeliveryDate:    formatDate(inv.DeliveryDate),
		ClientID:        inv.Client.ID,
		ClientName:      inv.Client.Name,
		ClientPhone:     inv.Client.Phone,
		Lines:           make([]InvoiceLineResp, 0, len(inv.Lines)),
		Total:           inv.Total,
	}
	for _, l := range inv.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResp{
			ServiceID:   l.ServiceID,
			Description: l.Description,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
		})
	}
	return resp
}

type CapacityResp struct {
	Admitted             bool   `json:"admitted"`
	Reason               string `json:"reason,omitempty"`
	RealisationRemaining int    `json:"realisationRemaining"`
	DeliveryRemaining    int    `json:"deliveryRemaining"`
}

type RevenueResp struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue" swaggertype:"string"`
}
