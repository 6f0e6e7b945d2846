package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDetailsMatchBusinessType(t *testing.T) {
	pharmacy := ProductDetails{Pharmacy: &PharmacyDetails{Dosage: "500mg", RequiresPrescription: true}}
	assert.NoError(t, pharmacy.Validate(BusinessTypePharmacy))
	assert.ErrorIs(t, pharmacy.Validate(BusinessTypeRestaurant), ErrDetailsMismatch)
	assert.ErrorIs(t, pharmacy.Validate(BusinessTypeElectronics), ErrDetailsMismatch)

	electronics := ProductDetails{Electronics: &ElectronicsDetails{Brand: "Samsung", WarrantyMonths: 12}}
	assert.NoError(t, electronics.Validate(BusinessTypeElectronics))
	assert.ErrorIs(t, electronics.Validate(BusinessTypeGrocery), ErrDetailsMismatch)

	food := ProductDetails{Food: &FoodDetails{PrepTimeMinutes: 20, SpiceLevel: 2}}
	assert.NoError(t, food.Validate(BusinessTypeRestaurant))
	assert.ErrorIs(t, food.Validate(BusinessTypePharmacy), ErrDetailsMismatch)
}

func TestProductDetailsEmptyIsAlwaysValid(t *testing.T) {
	var empty ProductDetails
	for _, bt := range []BusinessType{
		BusinessTypeRestaurant, BusinessTypeGrocery, BusinessTypePharmacy, BusinessTypeElectronics,
	} {
		assert.NoError(t, empty.Validate(bt))
	}
}

func TestProductDetailsRejectsMultipleVariants(t *testing.T) {
	mixed := ProductDetails{
		Food:     &FoodDetails{PrepTimeMinutes: 10},
		Pharmacy: &PharmacyDetails{Dosage: "250mg"},
	}
	assert.ErrorIs(t, mixed.Validate(BusinessTypeRestaurant), ErrDetailsMismatch)
}

func TestProductDetailsScanValue(t *testing.T) {
	in := ProductDetails{Pharmacy: &PharmacyDetails{Dosage: "500mg", ActiveIngredient: "paracetamol"}}

	raw, err := in.Value()
	require.NoError(t, err)

	var out ProductDetails
	require.NoError(t, out.Scan(raw))
	require.NotNil(t, out.Pharmacy)
	assert.Equal(t, "500mg", out.Pharmacy.Dosage)
	assert.Nil(t, out.Food)
	assert.Nil(t, out.Electronics)

	var fromNil ProductDetails
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil.Pharmacy)
}
