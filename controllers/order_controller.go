// controllers/order_controller.go
package controllers

import (
	"eatery/entity"
	"eatery/pkg/resp"
	"eatery/presenter"
	"eatery/services"
	"eatery/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders    *services.OrderService
	Formatter presenter.Formatter
}

// GET /api/order/my-orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	orders, err := ctl.Orders.ListForCustomer(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, viewerFormatter(c, ctl.Formatter).Views(orders))
}

// GET /api/order-statuses
func (ctl *OrderController) Statuses(c *gin.Context) {
	resp.OK(c, entity.OrderStatuses())
}
