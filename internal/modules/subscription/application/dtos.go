package application

// StatusResponse reports the caller's subscription state. A user with no
// row gets the zero value.
type StatusResponse struct {
	Active        bool   `json:"active"`
	Status        string `json:"status,omitempty"`
	IsFreeForever bool   `json:"is_free_forever"`
}

// CheckoutResponse carries everything the web client needs to open the
// payment widget.
type CheckoutResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// VerifyRequest is the payment gateway's checkout callback payload.
type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
