package domain

// Per-date ceilings on new orders. They are system-wide and not configurable.
const (
	MaxOrdersPerRealisationDate = 10
	MaxOrdersPerDeliveryDate    = 15
)

type CapacityReason string

const (
	ReasonRealisationCapacity CapacityReason = "realisation-capacity"
	ReasonDeliveryCapacity    CapacityReason = "delivery-capacity"
)

// CapacityUsage is the number of existing orders on the candidate dates.
type CapacityUsage struct {
	Realisation int
	Delivery    int
}

type Decision struct {
	Admitted bool
	Reason   CapacityReason
}

func (d Decision) Err() error {
	if d.Admitted {
		return nil
	}
	return NewCapacityError(d.Reason)
}

// CanAdmit decides whether one more order fits on top of usage.
func CanAdmit(usage CapacityUsage) Decision {
	if usage.Realisation >= MaxOrdersPerRealisationDate {
		return Decision{Reason: ReasonRealisationCapacity}
	}
	if usage.Delivery >= MaxOrdersPerDeliveryDate {
		return Decision{Reason: ReasonDeliveryCapacity}
	}
	return Decision{Admitted: true}
}

// CapacityStatus is what remains bookable on a pair of dates.
type CapacityStatus struct {
	Decision
	RealisationRemaining int
	DeliveryRemaining    int
}

func NewCapacityStatus(usage CapacityUsage) CapacityStatus {
	return CapacityStatus{
		Decision:             CanAdmit(usage),
		RealisationRemaining: max(MaxOrdersPerRealisationDate-usage.Realisation, 0),
		DeliveryRemaining:    max(MaxOrdersPerDeliveryDate-usage.Delivery, 0),
	}
}
