package domain

import "time"

type DeviceType string

const (
	DeviceTypeLaptop  DeviceType = "Laptop"
	DeviceTypeDesktop DeviceType = "Desktop"
	DeviceTypeTablet  DeviceType = "Tablet"
	DeviceTypeOther   DeviceType = "Other"
)

type Device struct {
	ID                     int64      `json:"device_id"`
	UserID                 int64      `json:"user_id" validate:"required,gt=0"`
	DeviceType             DeviceType `json:"device_type" validate:"oneof=Laptop Desktop Tablet Other"`
	Brand                  *string    `json:"brand" validate:"omitempty,max=50"`
	Model                  *string    `json:"model" validate:"omitempty,max=100"`
	SerialNumber           *string    `json:"serial_number" validate:"omitempty,max=100"`
	OperatingSystem        *string    `json:"operating_system" validate:"omitempty,max=50"`
	AdminPasswordEncrypted string     `json:"admin_password_encrypted" validate:"required"`
	PurchaseDate           *Date      `json:"purchase_date"`
	Notes                  *string    `json:"notes"`
	CreatedAt              time.Time  `json:"created_at"`
}

func (d *Device) SetDefaults() {
	if d.DeviceType == "" {
		d.DeviceType = DeviceTypeLaptop
	}
}

// DevicePatch has no UserID: a device never changes owner.
type DevicePatch struct {
	DeviceType             *DeviceType
	Brand                  *string
	Model                  *string
	SerialNumber           *string
	OperatingSystem        *string
	AdminPasswordEncrypted *string
	PurchaseDate           *Date
	Notes                  *string
}

func (p DevicePatch) Empty() bool {
	return p.DeviceType == nil && p.Brand == nil && p.Model == nil &&
		p.SerialNumber == nil && p.OperatingSystem == nil &&
		p.AdminPasswordEncrypted == nil && p.PurchaseDate == nil && p.Notes == nil
}

func (p DevicePatch) Apply(d *Device) {
	set(&d.DeviceType, p.DeviceType)
	setOptional(&d.Brand, p.Brand)
	setOptional(&d.Model, p.Model)
	setOptional(&d.SerialNumber, p.SerialNumber)
	setOptional(&d.OperatingSystem, p.OperatingSystem)
	set(&d.AdminPasswordEncrypted, p.AdminPasswordEncrypted)
	setOptional(&d.PurchaseDate, p.PurchaseDate)
	setOptional(&d.Notes, p.Notes)
}
