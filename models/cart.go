package models

// CartLine is one product in a cart. A cart holds at most one line per
// product id; quantity changes mutate the existing line.
type CartLine struct {
	Product   Product `json:"product" bson:"product"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	UnitPrice float64 `json:"unitPrice" bson:"unitPrice"` // price chosen inside the product's range
}

// CardDetails are the card fields collected at checkout. All four are
// required when paying by card.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

// PaymentDetails is the payment selection submitted with checkout.
type PaymentDetails struct {
	Method string      `json:"method"` // "upi", "card", "cod"
	UPIID  string      `json:"upiId,omitempty"`
	Card   CardDetails `json:"card,omitempty"`
}
