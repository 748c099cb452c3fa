package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathDevices     = "/devices"
	PathAttachments = "/attachments"
	PathSMS         = "/sms"
)

func addDeviceRoutes(rg *gin.RouterGroup, h Handlers) {
	devices := rg.Group(PathDevices + "/:device_id")
	{
		devices.GET("/activity", h.Activity.GetActivity)
		devices.GET("/countdown", h.Activity.GetCountdown)
		devices.GET("/countdown/stream", h.Activity.StreamCountdown)
		devices.PATCH("/status", h.Devices.UpdateStatus)
		devices.POST("/remarks", h.Devices.AddRemark)
		devices.POST("/payments", h.Payments.RecordPayment)
		devices.POST("/attachments", h.Attachments.Upload)
	}

	rg.DELETE(PathAttachments+"/:attachment_id", h.Attachments.Delete)
	rg.POST(PathSMS, h.Notification.SendSms)
}
