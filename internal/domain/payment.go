package domain

type AmountType string

const (
	AmountReceive AmountType = "receive"
	AmountCharge  AmountType = "charge"
)

type PaymentLinkRequest struct {
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Description string     `json:"description"`
	AmountType  AmountType `json:"amount_type,omitempty"`
	WebhookURL  string     `json:"webhook_url,omitempty"`
}

type PaymentLink struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

type Wallet struct {
	Currency string `json:"currency"`
}
