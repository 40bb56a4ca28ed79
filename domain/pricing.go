package domain

const (
	ApartmentBaseRent       = 700.0
	ApartmentSecondBedroom  = 200.0
	ApartmentGarage         = 300.0
	ApartmentNoChildrenRate = 0.95 // 5% off when there are no children

	HouseBaseRent      = 900.0
	HouseSecondBedroom = 250.0
	HouseGarage        = 300.0

	StudioBaseRent     = 1200.0
	StudioParkingPack  = 250.0 // covers two spots
	StudioExtraSpotFee = 60.0
)

// MonthlyRent applies the surcharges first and the no-children discount
// last, over the running total.
func (a Apartment) MonthlyRent() float64 {
	rent := ApartmentBaseRent
	if a.Bedrooms == 2 {
		rent += ApartmentSecondBedroom
	}
	if a.Garage {
		rent += ApartmentGarage
	}
	if !a.HasChildren {
		rent *= ApartmentNoChildrenRate
	}
	return rent
}

func (h House) MonthlyRent() float64 {
	rent := HouseBaseRent
	if h.Bedrooms == 2 {
		rent += HouseSecondBedroom
	}
	if h.Garage {
		rent += HouseGarage
	}
	return rent
}

// MonthlyRent ignores ExtraSpots entirely when Parking is false.
func (s Studio) MonthlyRent() float64 {
	rent := StudioBaseRent
	if s.Parking {
		rent += StudioParkingPack
		if s.ExtraSpots > 0 {
			rent += StudioExtraSpotFee * float64(s.ExtraSpots)
		}
	}
	return rent
}
