// controllers/my_restaurant_controller.go
package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"eatery/entity"
	"eatery/formcodec"
	"eatery/pkg/apperr"
	"eatery/pkg/resp"
	"eatery/presenter"
	"eatery/services"
	"eatery/storage"
	"eatery/utils"
	"eatery/validation"

	"github.com/gin-gonic/gin"
)

// multipart overhead allowed on top of the image itself
const formSlack = 1 << 20

var errImageType = apperr.FieldError{Field: "imageFile", Message: "Restaurant image must be a JPEG, PNG, GIF or WebP image"}

// StatusPublisher is told about every successful status change.
type StatusPublisher interface {
	Publish(o entity.Order)
}

type MyRestaurantController struct {
	Restaurants   *services.RestaurantService
	Submissions   *services.RestaurantSubmissionService
	Orders        *services.OrderService
	Statuses      *services.OrderStatusService
	Formatter     presenter.Formatter
	Publisher     StatusPublisher
	MaxImageBytes int64
}

// GET /api/my/restaurant
func (ctl *MyRestaurantController) Get(c *gin.Context) {
	rest, err := ctl.Restaurants.GetMine(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /api/my/restaurant
func (ctl *MyRestaurantController) Create(c *gin.Context) {
	fields, img, ok := ctl.readSubmission(c)
	if !ok {
		return
	}
	rest, err := ctl.Submissions.Create(c.Request.Context(), utils.CurrentUserID(c), fields, img)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /api/my/restaurant
func (ctl *MyRestaurantController) Update(c *gin.Context) {
	fields, img, ok := ctl.readSubmission(c)
	if !ok {
		return
	}
	rest, err := ctl.Submissions.Update(c.Request.Context(), utils.CurrentUserID(c), fields, img)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// readSubmission parses the multipart body. It writes the response itself
// and returns ok=false when the request cannot reach the processor.
func (ctl *MyRestaurantController) readSubmission(c *gin.Context) (validation.Fields, *storage.Image, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctl.MaxImageBytes+formSlack)
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			resp.TooLarge(c, "request body too large")
			return nil, nil, false
		}
		resp.BadRequest(c, "expected multipart/form-data")
		return nil, nil, false
	}

	fields := formcodec.DecodeRestaurant(c.Request.MultipartForm.Value)

	fh, err := c.FormFile("imageFile")
	if errors.Is(err, http.ErrMissingFile) {
		return fields, nil, true
	}
	if err != nil {
		resp.BadRequest(c, "invalid imageFile")
		return nil, nil, false
	}
	if fh.Size > ctl.MaxImageBytes {
		resp.TooLarge(c, fmt.Sprintf("image exceeds %d bytes", ctl.MaxImageBytes))
		return nil, nil, false
	}

	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return nil, nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		resp.ServerError(c, err)
		return nil, nil, false
	}

	// the client filename and Content-Type are ignored
	ct, _, err := storage.Detect(data)
	if err != nil {
		errs := append(validation.RestaurantProfileRules.Validate(fields), errImageType)
		resp.Error(c, apperr.Validation(errs))
		return nil, nil, false
	}

	return fields, &storage.Image{
		Filename:    fh.Filename,
		ContentType: ct,
		Data:        data,
	}, true
}

// GET /api/my/restaurant/orders
func (ctl *MyRestaurantController) ListOrders(c *gin.Context) {
	orders, err := ctl.Orders.ListForOwner(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, viewerFormatter(c, ctl.Formatter).Views(orders))
}

type statusIn struct {
	Status string `json:"status"`
}

// PATCH /api/my/restaurant/order/:orderId/status
func (ctl *MyRestaurantController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil || orderID == 0 {
		resp.Error(c, apperr.InvalidArgument("invalid order id"))
		return
	}
	var in statusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "invalid body")
		return
	}

	updated, err := ctl.Statuses.AdvanceStatus(c.Request.Context(), utils.CurrentUserID(c), uint(orderID), in.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	if ctl.Publisher != nil {
		ctl.Publisher.Publish(*updated)
	}
	f := viewerFormatter(c, ctl.Formatter)
	resp.OK(c, presenter.OrderView{Order: *updated, Labels: f.Format(*updated)})
}

func viewerFormatter(c *gin.Context, f presenter.Formatter) presenter.Formatter {
	return f.WithTag(presenter.ResolveTag(c.GetHeader("Accept-Language"), f.Tag))
}
