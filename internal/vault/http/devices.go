package http

import (
	"net/http"

	"github.com/aussiebroadwan/passvault/internal/vault/domain"
	"github.com/aussiebroadwan/passvault/internal/vault/service"
	"github.com/aussiebroadwan/passvault/pkg/vaultsdk"
)

type DevicesHandler struct {
	crud[domain.Device, domain.DevicePatch, vaultsdk.CreateDeviceRequest, vaultsdk.UpdateDeviceRequest, vaultsdk.Device]
}

func newDevicesHandler(svc *service.DevicesService, errs errorWriter) *DevicesHandler {
	h := &DevicesHandler{}
	h.svc = svc
	h.errs = errs
	h.deleted = "Device deleted successfully"
	h.view = deviceView
	h.secret = func(d *domain.Device) any {
		return vaultsdk.DeviceSecret{DeviceID: d.ID, AdminPasswordEncrypted: d.AdminPasswordEncrypted}
	}
	h.fromCreate = func(req vaultsdk.CreateDeviceRequest) (domain.Device, error) {
		purchased, err := parseDate("purchase_date", req.PurchaseDate)
		if err != nil {
			return domain.Device{}, err
		}
		return domain.Device{
			UserID:                 req.UserID,
			DeviceType:             domain.DeviceType(req.DeviceType),
			Brand:                  req.Brand,
			Model:                  req.Model,
			SerialNumber:           req.SerialNumber,
			OperatingSystem:        req.OperatingSystem,
			AdminPasswordEncrypted: req.AdminPasswordEncrypted,
			PurchaseDate:           purchased,
			Notes:                  req.Notes,
		}, nil
	}
	h.fromUpdate = func(req vaultsdk.UpdateDeviceRequest) (domain.DevicePatch, error) {
		purchased, err := parseDate("purchase_date", req.PurchaseDate)
		if err != nil {
			return domain.DevicePatch{}, err
		}
		p := domain.DevicePatch{
			Brand:                  req.Brand,
			Model:                  req.Model,
			SerialNumber:           req.SerialNumber,
			OperatingSystem:        req.OperatingSystem,
			AdminPasswordEncrypted: req.AdminPasswordEncrypted,
			PurchaseDate:           purchased,
			Notes:                  req.Notes,
		}
		if req.DeviceType != nil {
			dt := domain.DeviceType(*req.DeviceType)
			p.DeviceType = &dt
		}
		return p, nil
	}
	return h
}

func deviceView(d *domain.Device) vaultsdk.Device {
	return vaultsdk.Device{
		DeviceID:        d.ID,
		UserID:          d.UserID,
		DeviceType:      string(d.DeviceType),
		Brand:           d.Brand,
		Model:           d.Model,
		SerialNumber:    d.SerialNumber,
		OperatingSystem: d.OperatingSystem,
		PurchaseDate:    formatDate(d.PurchaseDate),
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
	}
}

// List godoc
//
//	@Summary	List devices
//	@Tags		Devices
//	@Produce	json
//	@Success	200	{array}		vaultsdk.Device
//	@Failure	500	{object}	vaultsdk.ErrorResponse	"Database error"
//	@Router		/devices [get].
func (h *DevicesHandler) List(w http.ResponseWriter, r *http.Request) { h.list(w, r) }

// Get godoc
//
//	@Summary	Get a device
//	@Tags		Devices
//	@Produce	json
//	@Param		id	path		int	true	"Device ID"
//	@Success	200	{object}	vaultsdk.Device
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Device not found"
//	@Router		/devices/{id} [get].
func (h *DevicesHandler) Get(w http.ResponseWriter, r *http.Request) { h.get(w, r) }

// Create godoc
//
//	@Summary		Create a device
//	@Description	device_type defaults to Laptop.
//	@Tags			Devices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		vaultsdk.CreateDeviceRequest	true	"New device"
//	@Success		201		{object}	vaultsdk.Device
//	@Failure		400		{object}	vaultsdk.ErrorResponse	"Validation failure"
//	@Failure		404		{object}	vaultsdk.ErrorResponse	"User not found"
//	@Router			/devices [post].
func (h *DevicesHandler) Create(w http.ResponseWriter, r *http.Request) { h.create(w, r) }

// Update godoc
//
//	@Summary	Update a device
//	@Tags		Devices
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Device ID"
//	@Param		request	body		vaultsdk.UpdateDeviceRequest	true	"Fields to change"
//	@Success	200		{object}	vaultsdk.Device
//	@Failure	400		{object}	vaultsdk.ErrorResponse	"Validation failure or no fields to update"
//	@Failure	404		{object}	vaultsdk.ErrorResponse	"Device not found"
//	@Router		/devices/{id} [put].
func (h *DevicesHandler) Update(w http.ResponseWriter, r *http.Request) { h.update(w, r) }

// Delete godoc
//
//	@Summary	Delete a device
//	@Tags		Devices
//	@Produce	json
//	@Param		id	path		int	true	"Device ID"
//	@Success	200	{object}	vaultsdk.MessageResponse
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Device not found"
//	@Router		/devices/{id} [delete].
func (h *DevicesHandler) Delete(w http.ResponseWriter, r *http.Request) { h.remove(w, r) }

// Secret godoc
//
//	@Summary	Reveal a device admin password
//	@Tags		Devices
//	@Produce	json
//	@Param		id	path		int	true	"Device ID"
//	@Success	200	{object}	vaultsdk.DeviceSecret
//	@Failure	404	{object}	vaultsdk.ErrorResponse	"Device not found"
//	@Failure	429	{object}	vaultsdk.ErrorResponse	"Rate limit exceeded"
//	@Router		/devices/{id}/secret [get].
func (h *DevicesHandler) Secret(w http.ResponseWriter, r *http.Request) { h.reveal(w, r) }
