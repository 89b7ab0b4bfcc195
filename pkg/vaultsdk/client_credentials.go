package vaultsdk

import "context"

const credentialsPath = "/credentials"

func (c *Client) ListCredentials(ctx context.Context) ([]Credential, error) {
	return list[Credential](ctx, c, credentialsPath)
}

func (c *Client) GetCredential(ctx context.Context, credentialID int64) (*Credential, error) {
	return get[Credential](ctx, c, credentialsPath, credentialID)
}

func (c *Client) CreateCredential(ctx context.Context, req CreateCredentialRequest) (*Credential, error) {
	return create[Credential](ctx, c, credentialsPath, req)
}

func (c *Client) UpdateCredential(ctx context.Context, credentialID int64, req UpdateCredentialRequest) (*Credential, error) {
	return update[Credential](ctx, c, credentialsPath, credentialID, req)
}

func (c *Client) DeleteCredential(ctx context.Context, credentialID int64) error {
	return remove(ctx, c, itemPath(credentialsPath, credentialID))
}

// RevealCredentialSecret returns the stored secret fields.
func (c *Client) RevealCredentialSecret(ctx context.Context, credentialID int64) (*CredentialSecret, error) {
	return fetch[CredentialSecret](ctx, c, itemPath(credentialsPath, credentialID)+"/secret")
}
