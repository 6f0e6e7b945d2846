package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

func TestCartAccepts(t *testing.T) {
	cases := []struct {
		name            string
		cartBusinessID  uint
		itemCount       int
		productBusiness uint
		wantErr         error
	}{
		{"empty cart takes any business", 0, 0, 7, nil},
		{"empty cart left over from a previous business", 3, 0, 7, nil},
		{"same business with items", 7, 2, 7, nil},
		{"different business with items", 7, 2, 3, models.ErrCrossMerchantCart},
		{"different business with a single item", 7, 1, 8, models.ErrCrossMerchantCart},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cartAccepts(tc.cartBusinessID, tc.itemCount, tc.productBusiness)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
