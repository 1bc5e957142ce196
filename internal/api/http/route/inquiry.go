package route

import (
	"github.com/gin-gonic/gin"
)

type InquiryHandler interface {
	Submit(c *gin.Context)
	List(c *gin.Context)
	UpdateStatus(c *gin.Context)
}

func RegisterInquiryRoutes(g *gin.RouterGroup, h InquiryHandler) {
	g.POST("", h.Submit)
	g.GET("", h.List)
	g.POST("/:id/status", h.UpdateStatus)
}
