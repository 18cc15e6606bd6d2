// services/restaurant_submission.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"eatery/entity"
	"eatery/pkg/apperr"
	"eatery/storage"
	"eatery/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(math.MaxInt64)
)

// ErrAmountOutOfRange is returned for amounts whose minor units do not fit an int64.
var ErrAmountOutOfRange = errors.New("amount out of range")

var errImageRequired = apperr.FieldError{Field: "imageFile", Message: "Restaurant image is required"}

// RestaurantSubmissionService turns a decoded multipart submission into a
// persisted restaurant profile. The image is always stored before the profile
// is written, so a failed upload never leaves a profile behind.
type RestaurantSubmissionService struct {
	Repo   RestaurantStore
	Images storage.ImageStore
	Now    func() time.Time
}

func NewRestaurantSubmissionService(repo RestaurantStore, images storage.ImageStore) *RestaurantSubmissionService {
	return &RestaurantSubmissionService{Repo: repo, Images: images, Now: time.Now}
}

// Create registers the owner's first profile. img is required.
func (s *RestaurantSubmissionService) Create(ctx context.Context, ownerID uint, fields validation.Fields, img *storage.Image) (*entity.Restaurant, error) {
	errs := validation.RestaurantProfileRules.Validate(fields)
	if img == nil {
		errs = append(errs, errImageRequired)
	}
	if len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}

	rest, err := BuildRestaurant(ownerID, fields)
	if err != nil {
		return nil, err
	}

	_, err = s.Repo.FindByOwner(ctx, ownerID)
	switch {
	case err == nil:
		return nil, apperr.Conflict("User restaurant already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storeErr(err, "restaurant not found")
	}

	url, err := s.Images.Store(ctx, *img)
	if err != nil {
		return nil, apperr.Storage("image upload failed", err)
	}
	rest.ImageURL = url
	rest.LastUpdated = s.Now()

	saved, err := s.Repo.Upsert(ctx, rest)
	if err != nil {
		return nil, storeErr(err, "restaurant not found")
	}
	return saved, nil
}

// Update merges a submission into the owner's existing profile. Without a new
// image the stored image URL is kept.
func (s *RestaurantSubmissionService) Update(ctx context.Context, ownerID uint, fields validation.Fields, img *storage.Image) (*entity.Restaurant, error) {
	if err := validation.RestaurantProfileRules.Err(fields); err != nil {
		return nil, err
	}
	rest, err := BuildRestaurant(ownerID, fields)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err, "restaurant not found")
	}

	rest.ImageURL = existing.ImageURL
	if img != nil {
		url, err := s.Images.Store(ctx, *img)
		if err != nil {
			return nil, apperr.Storage("image upload failed", err)
		}
		rest.ImageURL = url
	}
	if rest.ImageURL == "" {
		return nil, apperr.Validation([]apperr.FieldError{errImageRequired})
	}
	rest.LastUpdated = s.Now()

	saved, err := s.Repo.Upsert(ctx, rest)
	if err != nil {
		return nil, storeErr(err, "restaurant not found")
	}
	return saved, nil
}

// BuildRestaurant assembles a profile from fields that already passed
// RestaurantProfileRules. Prices are converted to minor units here and
// nowhere else.
func BuildRestaurant(ownerID uint, fields validation.Fields) (*entity.Restaurant, error) {
	var errs []apperr.FieldError
	fail := func(field, msg string) { errs = append(errs, apperr.FieldError{Field: field, Message: msg}) }

	rest := &entity.Restaurant{
		UserID:      ownerID,
		Name:        scalar(fields["restaurantName"]),
		Address:     scalar(fields["address"]),
		City:        scalar(fields["city"]),
		State:       scalar(fields["state"]),
		Country:     scalar(fields["country"]),
		Pincode:     scalar(fields["pincode"]),
		PhoneNumber: scalar(fields["phoneNumber"]),
	}

	price, err := ToMinorUnits(fields["deliveryPrice"])
	switch {
	case errors.Is(err, ErrAmountOutOfRange):
		fail("deliveryPrice", "Delivery price is too large")
	case err != nil || price < 0:
		fail("deliveryPrice", "Delivery price must be a positive number")
	}
	rest.DeliveryPriceMinor = price

	eta, err := strconv.Atoi(strings.TrimSpace(scalar(fields["estimatedDeliveryTime"])))
	if err != nil {
		fail("estimatedDeliveryTime", "Estimated delivery time must be a positive number")
	}
	rest.EstimatedDeliveryTimeMinutes = eta

	rest.Cuisines = cuisines(fields["cuisines"])
	if len(rest.Cuisines) == 0 {
		fail("cuisines", "Cuisines array cannot be empty")
	}

	items, _ := validation.AsSlice(fields["menuItems"])
	rest.MenuItems = make([]entity.MenuItem, 0, len(items))
	for i, raw := range items {
		m, _ := raw.(map[string]any)
		name, hasName := m["name"]
		rawPrice, hasPrice := m["price"]
		if !hasName || !hasPrice {
			fail(fmt.Sprintf("menuItems[%d]", i), "Menu item needs a name and a price")
			continue
		}
		p, err := ToMinorUnits(rawPrice)
		if errors.Is(err, ErrAmountOutOfRange) {
			fail(fmt.Sprintf("menuItems[%d].price", i), "Price is too large")
			continue
		}
		if err != nil || p < 0 {
			fail(fmt.Sprintf("menuItems[%d].price", i), "Price must be a positive number")
			continue
		}
		rest.MenuItems = append(rest.MenuItems, entity.MenuItem{Name: scalar(name), PriceMinor: p})
	}

	if len(errs) > 0 {
		return nil, apperr.Validation(errs)
	}
	return rest, nil
}

// ToMinorUnits returns round(v * 100), rounding half away from zero. Results
// outside the int64 range fail with ErrAmountOutOfRange.
func ToMinorUnits(v any) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(scalar(v)))
	if err != nil {
		return 0, err
	}
	minor := d.Mul(hundred).Round(0)
	if minor.Abs().GreaterThan(maxMinor) {
		return 0, ErrAmountOutOfRange
	}
	return minor.IntPart(), nil
}

// cuisines keeps submission order and drops repeats.
func cuisines(v any) []string {
	seq, _ := validation.AsSlice(v)
	seen := make(map[string]bool, len(seq))
	out := make([]string, 0, len(seq))
	for _, c := range seq {
		s := strings.TrimSpace(scalar(c))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
