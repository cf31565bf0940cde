package port

import "github.com/MikeRez0/studiodesk/internal/core/domain"

//go:generate mockgen -source=observer.go -destination=mock/observer.go -package=mock
type OrderObserver interface {
	OrderAdmitted()
	OrderRejected(reason domain.CapacityReason)
	OrderDeleted()
	InvoiceBuilt()
}
