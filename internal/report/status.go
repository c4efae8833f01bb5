package report

import "github.com/kingcart/console/internal/model"

// Status is the single display status derived from an order's flag set.
type Status int

const (
	StatusPending Status = iota
	StatusShipped
	StatusDelivered
	StatusCanceled
)

// DeriveStatus collapses the order flags into one status. Priority is
// cancel > delivered > shipped, with pending as the default. This is the only
// place that ordering lives; label and color both key off the result.
func DeriveStatus(o model.OrderRecord) Status {
	switch {
	case o.Cancel:
		return StatusCanceled
	case o.Status3:
		return StatusDelivered
	case o.Status2:
		return StatusShipped
	}
	return StatusPending
}

func (s Status) Label() string {
	switch s {
	case StatusCanceled:
		return "Canceled"
	case StatusDelivered:
		return "Delivered"
	case StatusShipped:
		return "Shipped"
	}
	return "Pending"
}

func (s Status) Color() RGB {
	switch s {
	case StatusCanceled:
		return colorDanger
	case StatusDelivered:
		return colorSuccess
	case StatusShipped:
		return colorWarning
	}
	return colorLightText
}
