package vaultsdk

import "context"

const usersPath = "/users"

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return list[User](ctx, c, usersPath)
}

func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	return get[User](ctx, c, usersPath, userID)
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	return create[User](ctx, c, usersPath, req)
}

func (c *Client) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*User, error) {
	return update[User](ctx, c, usersPath, userID, req)
}

// DeleteUser fails with a conflict while the user still owns records.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return remove(ctx, c, itemPath(usersPath, userID))
}

// DeleteUserCascade deletes the user together with everything they own.
func (c *Client) DeleteUserCascade(ctx context.Context, userID int64) error {
	return remove(ctx, c, itemPath(usersPath, userID)+"?cascade=true")
}
