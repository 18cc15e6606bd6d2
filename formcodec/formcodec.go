// Package formcodec flattens restaurant submissions into bracket-indexed
// multipart keys and rebuilds them on the server side.
//
// Schema:
//
//	restaurantName, address, city, state, country, pincode, phoneNumber,
//	deliveryPrice, estimatedDeliveryTime   scalar, first value wins
//	cuisines[i]                            one entry per index
//	menuItems[i][name], menuItems[i][price] one group per index
//
// Indices are non-negative integers. Groups are emitted in ascending index
// order with gaps compacted; keys whose index does not parse are ignored.
package formcodec

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"

	"eatery/validation"
)

var scalarKeys = []string{
	"restaurantName", "address", "city", "state", "country", "pincode",
	"phoneNumber", "deliveryPrice", "estimatedDeliveryTime",
}

var (
	cuisineKey  = regexp.MustCompile(`^cuisines\[(\d+)\]$`)
	menuItemKey = regexp.MustCompile(`^menuItems\[(\d+)\]\[(name|price)\]$`)
)

// MenuItem holds the values as the owner entered them.
type MenuItem struct {
	Name  string
	Price string
}

// RestaurantForm is the client-side shape of a submission. Prices are the
// entered decimal amounts; conversion to minor units happens on the server.
type RestaurantForm struct {
	RestaurantName        string
	Address               string
	City                  string
	State                 string
	Country               string
	Pincode               string
	PhoneNumber           string
	DeliveryPrice         string
	EstimatedDeliveryTime string
	Cuisines              []string
	MenuItems             []MenuItem
}

// EncodeRestaurant flattens f into multipart field values.
func EncodeRestaurant(f RestaurantForm) url.Values {
	v := url.Values{}
	v.Set("restaurantName", f.RestaurantName)
	v.Set("address", f.Address)
	v.Set("city", f.City)
	v.Set("state", f.State)
	v.Set("country", f.Country)
	v.Set("pincode", f.Pincode)
	v.Set("phoneNumber", f.PhoneNumber)
	v.Set("deliveryPrice", f.DeliveryPrice)
	v.Set("estimatedDeliveryTime", f.EstimatedDeliveryTime)
	for i, c := range f.Cuisines {
		v.Set("cuisines["+strconv.Itoa(i)+"]", c)
	}
	for i, m := range f.MenuItems {
		idx := strconv.Itoa(i)
		v.Set("menuItems["+idx+"][name]", m.Name)
		v.Set("menuItems["+idx+"][price]", m.Price)
	}
	return v
}

// DecodeRestaurant rebuilds the structured payload from multipart values.
// Sequences are absent, not empty, when no indexed key was sent, so the
// validation rules can tell "missing" from "empty".
func DecodeRestaurant(values map[string][]string) validation.Fields {
	out := validation.Fields{}
	for _, k := range scalarKeys {
		if vs := values[k]; len(vs) > 0 {
			out[k] = vs[0]
		}
	}

	cuisines := map[int]string{}
	menuItems := map[int]map[string]any{}
	for k, vs := range values {
		if len(vs) == 0 {
			continue
		}
		if m := cuisineKey.FindStringSubmatch(k); m != nil {
			i, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			cuisines[i] = vs[0]
			continue
		}
		if m := menuItemKey.FindStringSubmatch(k); m != nil {
			i, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if menuItems[i] == nil {
				menuItems[i] = map[string]any{}
			}
			menuItems[i][m[2]] = vs[0]
		}
	}

	if len(cuisines) > 0 {
		seq := make([]any, 0, len(cuisines))
		for _, i := range sortedKeys(cuisines) {
			seq = append(seq, cuisines[i])
		}
		out["cuisines"] = seq
	}
	if len(menuItems) > 0 {
		seq := make([]any, 0, len(menuItems))
		for _, i := range sortedKeys(menuItems) {
			seq = append(seq, menuItems[i])
		}
		out["menuItems"] = seq
	}
	return out
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
