package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyTypeFromMenu(t *testing.T) {
	typ, err := PropertyTypeFromMenu(1)
	require.NoError(t, err)
	assert.Equal(t, PropertyApartment, typ)

	typ, err = PropertyTypeFromMenu(3)
	require.NoError(t, err)
	assert.Equal(t, PropertyStudio, typ)

	_, err = PropertyTypeFromMenu(4)
	assert.ErrorIs(t, err, ErrUnknownPropertyType)
}

func TestValidateProperty(t *testing.T) {
	assert.NoError(t, ValidateProperty(Apartment{Bedrooms: 2}))
	assert.NoError(t, ValidateProperty(House{Bedrooms: 1}))
	assert.NoError(t, ValidateProperty(Studio{ExtraSpots: -1}), "spots without parking are ignored")

	assert.ErrorIs(t, ValidateProperty(Apartment{Bedrooms: 3}), ErrInvalidBedrooms)
	assert.ErrorIs(t, ValidateProperty(House{Bedrooms: 0}), ErrInvalidBedrooms)
	assert.ErrorIs(t, ValidateProperty(Studio{Parking: true, ExtraSpots: -1}), ErrNegativeExtraSpots)
	assert.ErrorIs(t, ValidateProperty(nil), ErrUnknownPropertyType)
}

func TestPropertyInput_ToProperty(t *testing.T) {
	no := false

	p, err := PropertyInput{Type: PropertyApartment, Bedrooms: 2, Garage: true, HasChildren: &no}.ToProperty()
	require.NoError(t, err)
	assert.Equal(t, Apartment{Bedrooms: 2, Garage: true, HasChildren: false}, p)

	p, err = PropertyInput{Type: PropertyApartment, Bedrooms: 1}.ToProperty()
	require.NoError(t, err)
	assert.Equal(t, Apartment{Bedrooms: 1, HasChildren: true}, p, "children default to true")

	p, err = PropertyInput{Type: PropertyStudio, ExtraSpots: 4}.ToProperty()
	require.NoError(t, err)
	assert.Equal(t, Studio{}, p, "extra spots dropped without parking")

	_, err = PropertyInput{Type: PropertyHouse, Bedrooms: 5}.ToProperty()
	assert.ErrorIs(t, err, ErrInvalidBedrooms)

	_, err = PropertyInput{Type: "castle"}.ToProperty()
	assert.ErrorIs(t, err, ErrUnknownPropertyType)
}

func TestQuote_InstallmentAmount(t *testing.T) {
	q := NewQuote(House{Bedrooms: 1})
	assert.Equal(t, 2000.0, q.ContractTotal)
	assert.Equal(t, 5, q.ContractInstallments)
	assert.InDelta(t, 400.0, q.InstallmentAmount(), 1e-9)
	assert.InDelta(t, 900.0, q.MonthlyRent(), 1e-9)

	q = NewQuoteWithTerms(House{Bedrooms: 1}, ContractTerms{Total: 1000, Installments: 0})
	assert.Zero(t, q.InstallmentAmount())
}
