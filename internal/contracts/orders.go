package contracts

import "mentortools-mcp/internal/schema"

var Address = schema.Obj("address", "Buyer's address",
	schema.Str("street_and_number", "Street and house number"),
	schema.Str("city", "City"),
	schema.Str("postal_code", "Postal code"),
	schema.Str("country", "Country"),
)

var MarketplaceBuyer = schema.Obj("marketplace_buyer", "Buyer information",
	schema.Str("email", "Buyer's email address").Email().Require(),
	schema.Str("first_name", "Buyer's first name"),
	schema.Str("last_name", "Buyer's last name"),
	schema.Str("phone_number", "Buyer's phone number"),
	Address,
).Require()

var Transaction = schema.Obj("transaction", "Transaction information",
	schema.Float("amount", "Transaction amount (decimal, e.g., 10.00)").Positive().Require(),
	schema.Str("id", "External transaction ID (will be prefixed with portal ID)"),
)

var IpnOrderPayment = schema.New("create_order",
	MarketplaceBuyer,
	schema.List("course_ids", "List of course IDs to unlock", schema.Int("", "Course ID").Positive()).NonEmpty().Require(),
	schema.Str("id", "External order ID (will be prefixed with portal ID)"),
	Transaction,
)

// Optional strings are pointers so an explicit "" reaches the API as sent.
type AddressInput struct {
	StreetAndNumber *string `json:"street_and_number,omitempty"`
	City            *string `json:"city,omitempty"`
	PostalCode      *string `json:"postal_code,omitempty"`
	Country         *string `json:"country,omitempty"`
}

type MarketplaceBuyerInput struct {
	Email       string        `json:"email"`
	FirstName   *string       `json:"first_name,omitempty"`
	LastName    *string       `json:"last_name,omitempty"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
	Address     *AddressInput `json:"address,omitempty"`
}

type TransactionInput struct {
	Amount float64 `json:"amount"`
	ID     *string `json:"id,omitempty"`
}

type IpnOrderPaymentInput struct {
	MarketplaceBuyer MarketplaceBuyerInput `json:"marketplace_buyer"`
	CourseIDs        []int64               `json:"course_ids"`
	ID               *string               `json:"id,omitempty"`
	Transaction      *TransactionInput     `json:"transaction,omitempty"`
}
