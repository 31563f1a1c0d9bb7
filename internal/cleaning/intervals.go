package cleaning

import (
	"deliverycli/internal/dataset"
)

// DeriveTimeIntervals computes order_to_pick_minutes and
// pickup_to_delivery_minutes from the parsed order date, the standardized
// time-of-day minutes, and the measured total delivery duration. If any
// prerequisite column is absent the dataset passes through unchanged.
//
// A pickup that appears earlier in the day than its order is assumed to
// have crossed midnight and gains 24 hours. A negative pickup-to-delivery
// interval means the measured total is inconsistent with the derived
// order-to-pickup leg; it becomes missing rather than being clamped to
// zero. Missing inputs propagate to missing outputs at every step.
func DeriveTimeIntervals(ds *dataset.Dataset) *dataset.Dataset {
	cleaned := ds.Clone()

	orderMinutesName := ColTimeOrdered + minutesSuffix
	pickupMinutesName := ColTimePicked + minutesSuffix
	if !cleaned.Has(ColOrderDateClean, orderMinutesName, pickupMinutesName, ColTimeTaken) {
		return cleaned
	}

	date, _ := cleaned.Column(ColOrderDateClean)
	orderMinutes, _ := cleaned.Column(orderMinutesName)
	pickupMinutes, _ := cleaned.Column(pickupMinutesName)
	taken, _ := cleaned.Column(ColTimeTaken)

	n := cleaned.Rows()
	orderToPick := dataset.NewMissingColumn(ColOrderToPick, dataset.Float, n)
	pickupToDelivery := dataset.NewMissingColumn(ColPickupToDelivery, dataset.Float, n)

	for i := 0; i < n; i++ {
		om, okOrder := cellFloat(orderMinutes, i)
		pm, okPickup := cellFloat(pickupMinutes, i)
		if date.IsMissing(i) || !okOrder || !okPickup {
			continue
		}
		interval := pm - om
		if interval < 0 {
			interval += minutesPerDay
		}
		orderToPick.Floats[i] = interval
		orderToPick.ClearMissing(i)

		total, okTotal := cellFloat(taken, i)
		if !okTotal {
			continue
		}
		remainder := total - interval
		if remainder < 0 {
			continue
		}
		pickupToDelivery.Floats[i] = remainder
		pickupToDelivery.ClearMissing(i)
	}

	cleaned.Add(orderToPick)
	cleaned.Add(pickupToDelivery)
	return cleaned
}
