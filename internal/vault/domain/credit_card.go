package domain

import "time"

type CardType string

const (
	CardTypeCredit  CardType = "Credit"
	CardTypeDebit   CardType = "Debit"
	CardTypePrepaid CardType = "Prepaid"
)

// CreditCard holds a payment card. The number and CVV columns keep the
// historical *_encrypted names but hold the values as supplied.
type CreditCard struct {
	ID                  int64     `json:"card_id"`
	UserID              int64     `json:"user_id" validate:"required,gt=0"`
	CardHolderName      *string   `json:"card_holder_name" validate:"omitempty,max=100"`
	CardNumberEncrypted string    `json:"card_number" validate:"required"`
	ExpirationDate      *Date     `json:"expiration_date"`
	CVVEncrypted        string    `json:"cvv" validate:"required"`
	BillingAddress      *string   `json:"billing_address"`
	CardType            CardType  `json:"card_type" validate:"oneof=Credit Debit Prepaid"`
	CreatedAt           time.Time `json:"created_at"`
}

// SetDefaults fills fields the client may omit on create.
func (c *CreditCard) SetDefaults() {
	if c.CardType == "" {
		c.CardType = CardTypeCredit
	}
}

// CreditCardPatch may move a card to another user.
type CreditCardPatch struct {
	UserID              *int64
	CardHolderName      *string
	CardNumberEncrypted *string
	ExpirationDate      *Date
	CVVEncrypted        *string
	BillingAddress      *string
	CardType            *CardType
}

func (p CreditCardPatch) Empty() bool {
	return p.UserID == nil && p.CardHolderName == nil && p.CardNumberEncrypted == nil &&
		p.ExpirationDate == nil && p.CVVEncrypted == nil && p.BillingAddress == nil &&
		p.CardType == nil
}

func (p CreditCardPatch) Apply(c *CreditCard) {
	set(&c.UserID, p.UserID)
	setOptional(&c.CardHolderName, p.CardHolderName)
	set(&c.CardNumberEncrypted, p.CardNumberEncrypted)
	setOptional(&c.ExpirationDate, p.ExpirationDate)
	set(&c.CVVEncrypted, p.CVVEncrypted)
	setOptional(&c.BillingAddress, p.BillingAddress)
	set(&c.CardType, p.CardType)
}
