package domain

import (
	"time"
)

const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar date. Orders only carry dates,
// so every date that enters the ledger goes through Day first.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Order struct {
	ID              uint64
	OrderDate       time.Time
	RealisationDate time.Time
	DeliveryDate    time.Time
	ClientID        uint64
	Lines           []*OrderLine
}

// OrderView is an order row joined with the client's display name.
type OrderView struct {
	Order
	ClientName string
}

// OrderPatch lists the fields of an update; nil means "leave as is".
type OrderPatch struct {
	OrderDate       *time.Time
	RealisationDate *time.Time
	DeliveryDate    *time.Time
	ClientID        *uint64
}

func (p OrderPatch) Empty() bool {
	return p.OrderDate == nil && p.RealisationDate == nil && p.DeliveryDate == nil && p.ClientID == nil
}

type OrderFilter struct {
	ClientID        *uint64
	RealisationDate *time.Time
	DeliveryDate    *time.Time
	Ascending       bool
	Query           string
}
