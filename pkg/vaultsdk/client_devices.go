package vaultsdk

import "context"

const devicesPath = "/devices"

func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	return list[Device](ctx, c, devicesPath)
}

func (c *Client) GetDevice(ctx context.Context, deviceID int64) (*Device, error) {
	return get[Device](ctx, c, devicesPath, deviceID)
}

func (c *Client) CreateDevice(ctx context.Context, req CreateDeviceRequest) (*Device, error) {
	return create[Device](ctx, c, devicesPath, req)
}

func (c *Client) UpdateDevice(ctx context.Context, deviceID int64, req UpdateDeviceRequest) (*Device, error) {
	return update[Device](ctx, c, devicesPath, deviceID, req)
}

func (c *Client) DeleteDevice(ctx context.Context, deviceID int64) error {
	return remove(ctx, c, itemPath(devicesPath, deviceID))
}

// RevealDeviceSecret returns the stored secret fields.
func (c *Client) RevealDeviceSecret(ctx context.Context, deviceID int64) (*DeviceSecret, error) {
	return fetch[DeviceSecret](ctx, c, itemPath(devicesPath, deviceID)+"/secret")
}
