package domain

// Client and Service are owned by the catalog; the ledger only reads them.
type Client struct {
	ID    uint64
	Name  string
	Phone string
}

type Service struct {
	ID    uint64
	Title string
	Unit  string
}

// Placeholders rendered for references the catalog no longer resolves.
const (
	UnknownLabel = "Unknown"
	UnknownUnit  = "-"
)
