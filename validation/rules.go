package validation

// UserProfileRules validates the current user's profile update.
var UserProfileRules = RuleSet{
	{Field: "name", Check: NonEmptyString, Message: "Name must be a string"},
	{Field: "contactNumber", Check: NonEmptyString, Message: "Contact Number must be a string"},
	{Field: "addressLine1", Check: NonEmptyString, Message: "AddressLine1 must be a string"},
	{Field: "city", Check: NonEmptyString, Message: "City must be a string"},
	{Field: "country", Check: NonEmptyString, Message: "Country must be a string"},
	{Field: "state", Check: NonEmptyString, Message: "State must be a string"},
	{Field: "pincode", Check: NonEmptyString, Message: "Pincode must be a string"},
}

// RestaurantProfileRules validates a decoded restaurant submission.
var RestaurantProfileRules = RuleSet{
	{Field: "restaurantName", Check: Required, Message: "Restaurant name is required"},
	{Field: "city", Check: Required, Message: "City is required"},
	{Field: "state", Check: Required, Message: "State is required"},
	{Field: "country", Check: Required, Message: "Country is required"},
	{Field: "pincode", Check: Required, Message: "Pincode is required"},
	{Field: "deliveryPrice", Check: FloatMin(0), Message: "Delivery price must be a positive number"},
	{Field: "deliveryPrice", Check: FloatMax(MaxAmount), Message: "Delivery price is too large"},
	{Field: "estimatedDeliveryTime", Check: IntMin(0), Message: "Estimated delivery time must be a positive number"},
	{Field: "cuisines", Check: IsArray, Message: "Cuisines must be an array"},
	{Field: "cuisines", Check: NonEmptyArray, Message: "Cuisines array cannot be empty"},
	{Field: "menuItems", Check: IsArray, Message: "Menu items must be an array"},
	{Field: "menuItems.*.name", Check: Required, Message: "Menu item name is required"},
	{Field: "menuItems.*.price", Check: FloatMin(0), Message: "Price must be a positive number"},
	{Field: "menuItems.*.price", Check: FloatMax(MaxAmount), Message: "Price is too large"},
	{Field: "phoneNumber", Check: NonEmptyString, Message: "Phone Number is required"},
	{Field: "address", Check: NonEmptyString, Message: "Address is required"},
}
