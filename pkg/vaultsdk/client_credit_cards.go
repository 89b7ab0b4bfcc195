package vaultsdk

import "context"

const creditCardsPath = "/credit_cards"

func (c *Client) ListCreditCards(ctx context.Context) ([]CreditCard, error) {
	return list[CreditCard](ctx, c, creditCardsPath)
}

func (c *Client) GetCreditCard(ctx context.Context, cardID int64) (*CreditCard, error) {
	return get[CreditCard](ctx, c, creditCardsPath, cardID)
}

func (c *Client) CreateCreditCard(ctx context.Context, req CreateCreditCardRequest) (*CreditCard, error) {
	return create[CreditCard](ctx, c, creditCardsPath, req)
}

func (c *Client) UpdateCreditCard(ctx context.Context, cardID int64, req UpdateCreditCardRequest) (*CreditCard, error) {
	return update[CreditCard](ctx, c, creditCardsPath, cardID, req)
}

func (c *Client) DeleteCreditCard(ctx context.Context, cardID int64) error {
	return remove(ctx, c, itemPath(creditCardsPath, cardID))
}

// RevealCreditCardSecret returns the stored secret fields.
func (c *Client) RevealCreditCardSecret(ctx context.Context, cardID int64) (*CreditCardSecret, error) {
	return fetch[CreditCardSecret](ctx, c, itemPath(creditCardsPath, cardID)+"/secret")
}
