package vaultsdk

import "context"

const emailAccountsPath = "/email_accounts"

func (c *Client) ListEmailAccounts(ctx context.Context) ([]EmailAccount, error) {
	return list[EmailAccount](ctx, c, emailAccountsPath)
}

func (c *Client) GetEmailAccount(ctx context.Context, emailID int64) (*EmailAccount, error) {
	return get[EmailAccount](ctx, c, emailAccountsPath, emailID)
}

func (c *Client) CreateEmailAccount(ctx context.Context, req CreateEmailAccountRequest) (*EmailAccount, error) {
	return create[EmailAccount](ctx, c, emailAccountsPath, req)
}

func (c *Client) UpdateEmailAccount(ctx context.Context, emailID int64, req UpdateEmailAccountRequest) (*EmailAccount, error) {
	return update[EmailAccount](ctx, c, emailAccountsPath, emailID, req)
}

func (c *Client) DeleteEmailAccount(ctx context.Context, emailID int64) error {
	return remove(ctx, c, itemPath(emailAccountsPath, emailID))
}

// RevealEmailAccountSecret returns the stored secret fields.
func (c *Client) RevealEmailAccountSecret(ctx context.Context, emailID int64) (*EmailAccountSecret, error) {
	return fetch[EmailAccountSecret](ctx, c, itemPath(emailAccountsPath, emailID)+"/secret")
}
