package request

type UpdateStatusRequest struct {
	Status    string `json:"status" binding:"required"`
	Signature string `json:"signature"`
}

type AddRemarkRequest struct {
	Content    string `json:"content" binding:"required"`
	RemarkType string `json:"remark_type"`
}

type SendSMSRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Message     string `json:"message" binding:"required"`
	CustomerID  string `json:"customer_id"`
	DeviceID    string `json:"device_id"`
}
