package usecase

import "repair_desk/internal/domain/entities"

// Capability checks used by handlers and by the activity view. Roles are
// compared here only.

func CanRecordPayment(u entities.User) bool {
	return u.Role == entities.RoleAdmin || u.Role == entities.RoleCustomerCare
}

func CanViewFinancials(u entities.User) bool {
	return u.Role == entities.RoleAdmin || u.Role == entities.RoleCustomerCare
}

func CanSendSms(u entities.User) bool {
	return u.Role == entities.RoleAdmin || u.Role == entities.RoleCustomerCare
}

func CanAddRemark(u entities.User) bool {
	switch u.Role {
	case entities.RoleAdmin, entities.RoleTechnician, entities.RoleCustomerCare:
		return true
	}
	return false
}

func CanManageAttachments(u entities.User, d entities.Device) bool {
	switch u.Role {
	case entities.RoleAdmin, entities.RoleCustomerCare:
		return true
	case entities.RoleTechnician:
		return isAssigned(u, d)
	}
	return false
}

// customerCareTargets are the only statuses customer care may move a device to.
var customerCareTargets = map[entities.DeviceStatus]struct{}{
	entities.DeviceStatusReturnedToCustomerCare: {},
	entities.DeviceStatusDone:                   {},
	entities.DeviceStatusFailed:                 {},
}

func CanUpdateStatus(u entities.User, d entities.Device, to entities.DeviceStatus) bool {
	switch u.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleTechnician:
		return isAssigned(u, d)
	case entities.RoleCustomerCare:
		_, ok := customerCareTargets[to]
		return ok
	}
	return false
}

func isAssigned(u entities.User, d entities.Device) bool {
	return u.ID != "" && d.AssignedTo == u.ID
}

// Capabilities is the per-viewer summary returned with a device view.
type Capabilities struct {
	RecordPayment     bool `json:"record_payment"`
	ViewFinancials    bool `json:"view_financials"`
	UpdateStatus      bool `json:"update_status"`
	ManageAttachments bool `json:"manage_attachments"`
	SendSms           bool `json:"send_sms"`
	AddRemark         bool `json:"add_remark"`
}

// CapabilitiesFor reports UpdateStatus as true when the viewer may move the
// device to at least one status.
func CapabilitiesFor(u entities.User, d entities.Device) Capabilities {
	updatable := CanUpdateStatus(u, d, entities.DeviceStatusDone)
	return Capabilities{
		RecordPayment:     CanRecordPayment(u),
		ViewFinancials:    CanViewFinancials(u),
		UpdateStatus:      updatable,
		ManageAttachments: CanManageAttachments(u, d),
		SendSms:           CanSendSms(u),
		AddRemark:         CanAddRemark(u),
	}
}
