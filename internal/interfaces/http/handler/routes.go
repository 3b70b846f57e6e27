package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/summary", h.Summary)
		orders.GET("/:id", h.Get)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
		orders.POST("/:id/confirm", h.Confirm)
		orders.POST("/:id/deliver", h.Deliver)
		orders.POST("/:id/return", h.Return)
		orders.POST("/:id/pay", h.MarkPaid)
	}
}

// RegisterRoutes registers invoice and statement matching routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("/generate", h.Generate)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.DELETE("/:id", h.Delete)
		invoices.POST("/:id/pay", h.MarkPaid)
		invoices.POST("/:id/unpay", h.MarkUnpaid)
		invoices.POST("/match", h.Match)
		invoices.POST("/match/upload", h.MatchUpload)
	}
}

// RegisterRoutes registers khata routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/ledger")
	{
		ledger.GET("/khata", h.Khata)
		ledger.POST("/bills", h.RecordBill)
		ledger.DELETE("/bills/:id", h.DeleteBill)
		ledger.POST("/payments", h.RecordPayment)
		ledger.DELETE("/payments/:id", h.DeletePayment)

		customers := ledger.Group("/customers")
		{
			customers.POST("", h.CreateCustomer)
			customers.GET("", h.ListCustomers)
			customers.GET("/:id", h.GetCustomer)
			customers.PUT("/:id", h.UpdateCustomer)
			customers.DELETE("/:id", h.DeleteCustomer)
		}
	}
}

// RegisterRoutes registers seller routes
func (h *SellerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sellers := rg.Group("/sellers")
	{
		sellers.POST("", h.Create)
		sellers.GET("", h.List)
		sellers.GET("/:id", h.Get)
		sellers.PUT("/:id", h.Update)
		sellers.DELETE("/:id", h.Delete)
		sellers.POST("/:id/deactivate", h.Deactivate)
		sellers.GET("/:id/last-reference", h.LastReference)
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/system/ping", h.Ping)
}
