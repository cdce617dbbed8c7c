package responses

type PaymentStatus struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PaymentInfo struct {
	PaymentCheckoutURL string `json:"payment_checkout_url"`
}

// PaymentResponse is the gateway reply to a payment-routing request.
type PaymentResponse struct {
	Status        PaymentStatus `json:"status"`
	TrxID         string        `json:"trx_id"`
	PartnerTrxID  string        `json:"partner_trx_id"`
	ReceiveAmount int           `json:"receive_amount"`
	PaymentInfo   PaymentInfo   `json:"payment_info"`
}
