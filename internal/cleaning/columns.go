package cleaning

// Column names of the fixed delivery-logistics schema.
const (
	ColAge                = "Delivery_person_Age"
	ColRating             = "Delivery_person_Ratings"
	ColRestaurantLat      = "Restaurant_latitude"
	ColRestaurantLon      = "Restaurant_longitude"
	ColDeliveryLat        = "Delivery_location_latitude"
	ColDeliveryLon        = "Delivery_location_longitude"
	ColOrderDate          = "Order_Date"
	ColOrderDateClean     = "Order_Date_clean"
	ColTimeOrdered        = "Time_Orderd"
	ColTimePicked         = "Time_Order_picked"
	ColTimeTaken          = "Time_taken (min)"
	ColMultipleDeliveries = "multiple_deliveries"
	ColCity               = "City"
	ColOrderID            = "Order_ID"
	ColID                 = "ID"
	ColCourierID          = "Delivery_person_ID"
	ColOrderToPick        = "order_to_pick_minutes"
	ColPickupToDelivery   = "pickup_to_delivery_minutes"

	cleanSuffix   = "_clean"
	minutesSuffix = "_minutes"
)

// timeOfDayColumns are the free-form time columns the standardizer runs on.
var timeOfDayColumns = []string{ColTimeOrdered, ColTimePicked}

// coordinateColumns use 0 as an "unknown location" sentinel.
var coordinateColumns = []string{
	ColRestaurantLat,
	ColRestaurantLon,
	ColDeliveryLat,
	ColDeliveryLon,
}

// minuteDenominatedColumns are expected to hold minutes once cleaned.
var minuteDenominatedColumns = []string{
	ColTimeTaken,
	ColOrderToPick,
	ColPickupToDelivery,
	ColTimeOrdered + minutesSuffix,
	ColTimePicked + minutesSuffix,
}

// distanceColumns are expected to hold kilometres when present.
var distanceColumns = []string{
	"haversine_km",
	"Distance_km",
	"Delivery_distance",
}

// outlierColumns get Tukey-fence capping.
var outlierColumns = []string{
	ColAge,
	ColRating,
	ColTimeTaken,
	ColOrderToPick,
	ColPickupToDelivery,
}

// categoricalColumns are cast to the category kind for downstream use.
var categoricalColumns = []string{
	"Weather_conditions",
	"Road_traffic_density",
	"Type_of_order",
	"Type_of_vehicle",
	"Festival",
	ColCity,
}

// cityRemap fixes categorical misspellings discovered during profiling.
var cityRemap = map[string]string{
	"Metropolitian": "Metropolitan",
}
