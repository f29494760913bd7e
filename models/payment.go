package models

type PaymentMode string

const (
	PaymentModeLive      PaymentMode = "live"
	PaymentModeSimulated PaymentMode = "simulated"
	PaymentModeManual    PaymentMode = "manual"
)

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type PaymentInitRequest struct {
	OrderID       string        `json:"order_id"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

type PaymentInitResult struct {
	Mode             PaymentMode   `json:"mode"`
	Reference        string        `json:"reference"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	AuthorizationURL *string       `json:"authorization_url"`
	AccountNumber    *string       `json:"account_number"`
	AccountName      *string       `json:"account_name"`
	BankName         *string       `json:"bank_name"`
	Instructions     *string       `json:"instructions"`
}

type PaymentVerifyResult struct {
	Status      PaymentStatus `json:"status"`
	OrderStatus OrderStatus   `json:"order_status"`
	Reference   string        `json:"reference"`
	Paid        bool          `json:"paid"`
}
