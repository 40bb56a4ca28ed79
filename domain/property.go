package domain

import (
	"errors"
	"fmt"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyStudio    PropertyType = "studio"
)

var (
	ErrUnknownPropertyType = errors.New("tipo de imóvel desconhecido")
	ErrInvalidBedrooms     = errors.New("quantidade de quartos inválida: use 1 ou 2")
	ErrNegativeExtraSpots  = errors.New("vagas extras não podem ser negativas")
)

// Property is one of Apartment, House or Studio. The set is closed: only
// types in this package implement it.
type Property interface {
	Type() PropertyType
	MonthlyRent() float64
	isProperty()
}

type Apartment struct {
	Bedrooms    int  `json:"bedrooms"`
	Garage      bool `json:"garage"`
	HasChildren bool `json:"has_children"`
}

type House struct {
	Bedrooms int  `json:"bedrooms"`
	Garage   bool `json:"garage"`
}

// Studio has no bedroom count. ExtraSpots only counts when Parking is set.
type Studio struct {
	Parking    bool `json:"parking"`
	ExtraSpots int  `json:"extra_spots"`
}

func (Apartment) Type() PropertyType { return PropertyApartment }
func (House) Type() PropertyType     { return PropertyHouse }
func (Studio) Type() PropertyType    { return PropertyStudio }

func (Apartment) isProperty() {}
func (House) isProperty()     {}
func (Studio) isProperty()    {}

// PropertyTypeFromMenu maps the console menu option (1..3) to a type.
func PropertyTypeFromMenu(option int) (PropertyType, error) {
	switch option {
	case 1:
		return PropertyApartment, nil
	case 2:
		return PropertyHouse, nil
	case 3:
		return PropertyStudio, nil
	}
	return "", fmt.Errorf("%w: opção %d", ErrUnknownPropertyType, option)
}

// ValidateProperty checks the range rules enforced at the input boundary.
// Pricing itself assumes a valid property and never calls this.
func ValidateProperty(p Property) error {
	switch v := p.(type) {
	case Apartment:
		return validateBedrooms(v.Bedrooms)
	case House:
		return validateBedrooms(v.Bedrooms)
	case Studio:
		if v.Parking && v.ExtraSpots < 0 {
			return fmt.Errorf("%w: %d", ErrNegativeExtraSpots, v.ExtraSpots)
		}
		return nil
	case nil:
		return ErrUnknownPropertyType
	}
	return fmt.Errorf("%w: %T", ErrUnknownPropertyType, p)
}

func validateBedrooms(n int) error {
	if n != 1 && n != 2 {
		return fmt.Errorf("%w (recebido %d)", ErrInvalidBedrooms, n)
	}
	return nil
}

// PropertyInput is the flat request shape used by the HTTP API and the
// non-interactive command. HasChildren defaults to true when omitted.
type PropertyInput struct {
	Type        PropertyType `json:"type"`
	Bedrooms    int          `json:"bedrooms"`
	Garage      bool         `json:"garage"`
	HasChildren *bool        `json:"has_children,omitempty"`
	Parking     bool         `json:"parking"`
	ExtraSpots  int          `json:"extra_spots"`
}

// ToProperty builds and validates the concrete property.
func (in PropertyInput) ToProperty() (Property, error) {
	var p Property
	switch in.Type {
	case PropertyApartment:
		hasChildren := true
		if in.HasChildren != nil {
			hasChildren = *in.HasChildren
		}
		p = Apartment{Bedrooms: in.Bedrooms, Garage: in.Garage, HasChildren: hasChildren}
	case PropertyHouse:
		p = House{Bedrooms: in.Bedrooms, Garage: in.Garage}
	case PropertyStudio:
		spots := 0
		if in.Parking {
			spots = in.ExtraSpots
		}
		p = Studio{Parking: in.Parking, ExtraSpots: spots}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPropertyType, in.Type)
	}

	if err := ValidateProperty(p); err != nil {
		return nil, err
	}
	return p, nil
}
