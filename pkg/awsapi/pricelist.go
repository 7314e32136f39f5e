package awsapi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// priceListItem mirrors the slice of the Pricing API price-list JSON we
// need: terms -> OnDemand -> offer -> priceDimensions -> pricePerUnit.
type priceListItem struct {
	Terms struct {
		OnDemand map[string]struct {
			PriceDimensions map[string]struct {
				PricePerUnit map[string]string `json:"pricePerUnit"`
			} `json:"priceDimensions"`
		} `json:"OnDemand"`
	} `json:"terms"`
}

// parseOnDemandUSDPrice extracts the first USD price dimension from one
// price-list entry. The entry layout nests prices under opaque SKU keys, so
// we take the first offer term and the first dimension carrying a USD rate.
func parseOnDemandUSDPrice(entry string) (float64, error) {
	var item priceListItem
	if err := json.Unmarshal([]byte(entry), &item); err != nil {
		return 0, fmt.Errorf("malformed price list entry: %w", err)
	}

	for _, offer := range item.Terms.OnDemand {
		for _, dimension := range offer.PriceDimensions {
			usd, ok := dimension.PricePerUnit["USD"]
			if !ok {
				continue
			}
			price, err := strconv.ParseFloat(usd, 64)
			if err != nil {
				return 0, fmt.Errorf("malformed USD price %q: %w", usd, err)
			}
			return price, nil
		}
	}

	return 0, fmt.Errorf("no USD price dimension in price list entry")
}
