package requests

// PaymentRequest is the payload sent to the payment-routing endpoint of the
// gateway. Field names follow the gateway wire contract.
type PaymentRequest struct {
	PartnerUserID        string           `json:"partner_user_id" validate:"required"`
	PartnerTransactionID string           `json:"partner_trx_id" validate:"required"`
	NeedFrontend         bool             `json:"need_frontend"`
	SenderEmail          string           `json:"sender_email" validate:"required,email"`
	ReceiveAmount        int              `json:"receive_amount" validate:"required"`
	PaymentRouting       []PaymentRouting `json:"payment_routing" validate:"required,dive"`
}

type PaymentRouting struct {
	RecipientBank    string `json:"recipient_bank" validate:"required"`
	RecipientAccount string `json:"recipient_account" validate:"required"`
	RecipientAmount  int    `json:"recipient_amount" validate:"required"`
	RecipientEmail   string `json:"recipient_email" validate:"required,email"`
}

// PaymentCallback is the asynchronous notification the gateway posts after
// the payer finishes (or abandons) the checkout page.
type PaymentCallback struct {
	TrxID          string `json:"trx_id"`
	PartnerTrxID   string `json:"partner_trx_id" validate:"required"`
	PaymentStatus  string `json:"payment_status" validate:"required"`
	ReceivedAmount int    `json:"received_amount"`
	SettlementTime string `json:"settlement_time,omitempty"`
}
