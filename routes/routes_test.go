package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"eatery/configs"
	"eatery/entity"
	"eatery/formcodec"
	"eatery/pkg/testdb"
	"eatery/storage"
	"eatery/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const secret = "routes-test"

type app struct {
	r         *gin.Engine
	db        *gorm.DB
	uploadDir string
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.New(t)
	dir := t.TempDir()
	cfg := &configs.Config{
		JWTSecret:         secret,
		ImageStore:        "local",
		UploadDir:         dir,
		PublicBaseURL:     "http://test",
		MaxImageBytes:     1024,
		OrderStatusPolicy: "permissive",
		Locale:            "en-IN",
		CurrencySymbol:    "₹",
		TimeZone:          "UTC",
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := gin.New()
	images := storage.NewLocalStore(dir, cfg.PublicBaseURL+"/uploads")
	require.NoError(t, RegisterRoutes(ctx, r, db, cfg, images))
	return &app{r: r, db: db, uploadDir: dir}
}

func (a *app) user(t *testing.T, email, role string) (entity.User, string) {
	t.Helper()
	u := entity.User{Email: email, Name: email, Role: role}
	require.NoError(t, a.db.Create(&u).Error)
	tok, err := utils.GenerateToken(u.ID, role, secret, time.Hour)
	require.NoError(t, err)
	return u, tok
}

func (a *app) do(req *http.Request, tok string) *httptest.ResponseRecorder {
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	OK     bool            `json:"ok"`
	Kind   string          `json:"kind"`
	Error  string          `json:"error"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	Data json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func sampleForm() formcodec.RestaurantForm {
	return formcodec.RestaurantForm{
		RestaurantName:        "Spice Route",
		Address:               "12 MG Road",
		City:                  "Pune",
		State:                 "MH",
		Country:               "India",
		Pincode:               "411001",
		PhoneNumber:           "9876543210",
		DeliveryPrice:         "5",
		EstimatedDeliveryTime: "30",
		Cuisines:              []string{"Indian", "Thai"},
		MenuItems: []formcodec.MenuItem{
			{Name: "Curry", Price: "10"},
			{Name: "Naan", Price: "2.5"},
		},
	}
}

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartRequest(t *testing.T, method string, f formcodec.RestaurantForm, image []byte) *http.Request {
	t.Helper()
	return multipartFileRequest(t, method, f, "shopfront.PNG", image)
}

func multipartFileRequest(t *testing.T, method string, f formcodec.RestaurantForm, filename string, image []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, vs := range formcodec.EncodeRestaurant(f) {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(k, v))
		}
	}
	if image != nil {
		part, err := mw.CreateFormFile("imageFile", filename)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, "/api/my/restaurant", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func restaurantCount(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&entity.Restaurant{}).Count(&n).Error)
	return n
}

func TestCreateRestaurant(t *testing.T) {
	a := newApp(t)
	owner, tok := a.user(t, "owner@example.com", "owner")

	w := a.do(multipartRequest(t, http.MethodPost, sampleForm(), pngImage), tok)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var rest entity.Restaurant
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &rest))
	assert.Equal(t, owner.ID, rest.UserID)
	assert.Equal(t, "Spice Route", rest.Name)
	assert.Equal(t, int64(500), rest.DeliveryPriceMinor)
	assert.Equal(t, 30, rest.EstimatedDeliveryTimeMinutes)
	assert.Equal(t, []string{"Indian", "Thai"}, rest.Cuisines)
	require.Len(t, rest.MenuItems, 2)
	assert.Equal(t, "Curry", rest.MenuItems[0].Name)
	assert.Equal(t, int64(1000), rest.MenuItems[0].PriceMinor)
	assert.Equal(t, "Naan", rest.MenuItems[1].Name)
	assert.Equal(t, int64(250), rest.MenuItems[1].PriceMinor)

	require.True(t, strings.HasPrefix(rest.ImageURL, "http://test/uploads/restaurants/"), rest.ImageURL)
	assert.True(t, strings.HasSuffix(rest.ImageURL, ".png"))
	stored, err := os.ReadFile(filepath.Join(a.uploadDir, "restaurants", filepath.Base(rest.ImageURL)))
	require.NoError(t, err)
	assert.Equal(t, pngImage, stored)

	// second create for the same owner
	w = a.do(multipartRequest(t, http.MethodPost, sampleForm(), pngImage), tok)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1), restaurantCount(t, a.db))
}

func TestCreateRestaurantWithoutImage(t *testing.T) {
	a := newApp(t)
	_, tok := a.user(t, "owner@example.com", "owner")

	w := a.do(multipartRequest(t, http.MethodPost, sampleForm(), nil), tok)

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.Equal(t, "validation_error", env.Kind)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "imageFile", env.Errors[0].Field)
	assert.Zero(t, restaurantCount(t, a.db))
}

func TestCreateRestaurantReportsEveryFieldError(t *testing.T) {
	a := newApp(t)
	_, tok := a.user(t, "owner@example.com", "owner")

	form := sampleForm()
	form.City = ""
	form.DeliveryPrice = "-1"
	form.MenuItems[1].Price = "abc"

	w := a.do(multipartRequest(t, http.MethodPost, form, pngImage), tok)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var fields []string
	for _, e := range decode(t, w).Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"city", "deliveryPrice", "menuItems[1].price"}, fields)
	assert.Zero(t, restaurantCount(t, a.db))
	entries, _ := os.ReadDir(a.uploadDir)
	assert.Empty(t, entries)
}

func TestCreateRestaurantRejectsNonImageUpload(t *testing.T) {
	a := newApp(t)
	_, tok := a.user(t, "owner@example.com", "owner")

	form := sampleForm()
	form.City = ""
	page := []byte("<html><body><script>alert(document.cookie)</script></body></html>")
	w := a.do(multipartFileRequest(t, http.MethodPost, form, "menu.html", page), tok)

	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	env := decode(t, w)
	assert.Equal(t, "validation_error", env.Kind)
	var fields []string
	for _, e := range env.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"city", "imageFile"}, fields)
	assert.Zero(t, restaurantCount(t, a.db))
	entries, _ := os.ReadDir(a.uploadDir)
	assert.Empty(t, entries)
}

func TestCreateRestaurantOversizedImage(t *testing.T) {
	a := newApp(t)
	_, tok := a.user(t, "owner@example.com", "owner")

	w := a.do(multipartRequest(t, http.MethodPost, sampleForm(), bytes.Repeat([]byte("x"), 1025)), tok)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Zero(t, restaurantCount(t, a.db))
}

func TestCreateRestaurantRequiresOwnerRole(t *testing.T) {
	a := newApp(t)
	_, tok := a.user(t, "customer@example.com", "customer")

	w := a.do(multipartRequest(t, http.MethodPost, sampleForm(), pngImage), tok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(multipartRequest(t, http.MethodPost, sampleForm(), pngImage), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateRestaurantKeepsImage(t *testing.T) {
	a := newApp(t)
	_, tok := a.user(t, "owner@example.com", "owner")

	w := a.do(multipartRequest(t, http.MethodPost, sampleForm(), pngImage), tok)
	require.Equal(t, http.StatusCreated, w.Code)
	var created entity.Restaurant
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &created))

	form := sampleForm()
	form.RestaurantName = "Spice Route Express"
	form.MenuItems = []formcodec.MenuItem{{Name: "Thali", Price: "12.99"}}
	w = a.do(multipartRequest(t, http.MethodPut, form, nil), tok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated entity.Restaurant
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Spice Route Express", updated.Name)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
	require.Len(t, updated.MenuItems, 1)
	assert.Equal(t, int64(1299), updated.MenuItems[0].PriceMinor)
}

func (a *app) seedOrder(t *testing.T, owner entity.User, customer entity.User) entity.Order {
	t.Helper()
	rest := entity.Restaurant{UserID: owner.ID, Name: "Spice Route", City: "Pune"}
	require.NoError(t, a.db.Create(&rest).Error)
	o := entity.Order{
		RestaurantID:     rest.ID,
		UserID:           customer.ID,
		TotalAmountMinor: 12345,
		Status:           entity.OrderStatusPlaced,
		CartItems:        []entity.CartItem{{Name: "Curry", Quantity: 1}},
	}
	o.CreatedAt = time.Date(2024, time.March, 5, 0, 5, 0, 0, time.UTC)
	require.NoError(t, a.db.Create(&o).Error)
	return o
}

func statusRequest(orderID uint, status string) *http.Request {
	body := `{"status":"` + status + `"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/my/restaurant/order/"+itoa(orderID)+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func itoa(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func TestUpdateOrderStatus(t *testing.T) {
	a := newApp(t)
	owner, ownerTok := a.user(t, "owner@example.com", "owner")
	customer, _ := a.user(t, "customer@example.com", "customer")
	_, otherTok := a.user(t, "other@example.com", "owner")
	o := a.seedOrder(t, owner, customer)

	w := a.do(statusRequest(o.ID, "inProgress"), ownerTok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var view struct {
		Status string `json:"status"`
		Labels struct {
			StatusLabel string `json:"statusLabel"`
			TotalLabel  string `json:"totalLabel"`
		} `json:"labels"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &view))
	assert.Equal(t, "inProgress", view.Status)
	assert.Equal(t, "In Progress", view.Labels.StatusLabel)
	assert.Equal(t, "₹123.45", view.Labels.TotalLabel)

	var stored entity.Order
	require.NoError(t, a.db.First(&stored, o.ID).Error)
	assert.Equal(t, entity.OrderStatusInProgress, stored.Status)

	// permissive: backwards is allowed
	w = a.do(statusRequest(o.ID, "placed"), ownerTok)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(statusRequest(o.ID, "cancelled"), ownerTok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_argument", decode(t, w).Kind)

	w = a.do(statusRequest(o.ID, "delivered"), otherTok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(statusRequest(o.ID+100, "delivered"), ownerTok)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, a.db.First(&stored, o.ID).Error)
	assert.Equal(t, entity.OrderStatusPlaced, stored.Status)
}

func TestListOrdersWithLabels(t *testing.T) {
	a := newApp(t)
	owner, ownerTok := a.user(t, "owner@example.com", "owner")
	customer, customerTok := a.user(t, "customer@example.com", "customer")
	a.seedOrder(t, owner, customer)

	type view struct {
		Labels struct {
			DateLabel  string `json:"dateLabel"`
			TimeLabel  string `json:"timeLabel"`
			TotalLabel string `json:"totalLabel"`
		} `json:"labels"`
	}

	for _, testCase := range []struct {
		path string
		tok  string
	}{
		{"/api/my/restaurant/orders", ownerTok},
		{"/api/order/my-orders", customerTok},
	} {
		t.Run(testCase.path, func(t *testing.T) {
			w := a.do(httptest.NewRequest(http.MethodGet, testCase.path, nil), testCase.tok)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var views []view
			require.NoError(t, json.Unmarshal(decode(t, w).Data, &views))
			require.Len(t, views, 1)
			assert.Equal(t, "March 05, 2024", views[0].Labels.DateLabel)
			assert.Equal(t, "12:05 AM", views[0].Labels.TimeLabel)
			assert.Equal(t, "₹123.45", views[0].Labels.TotalLabel)
		})
	}
}

func TestOrderStatuses(t *testing.T) {
	a := newApp(t)

	w := a.do(httptest.NewRequest(http.MethodGet, "/api/order-statuses", nil), "")
	require.Equal(t, http.StatusOK, w.Code)

	var opts []entity.StatusOption
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &opts))
	require.Len(t, opts, 5)
	assert.Equal(t, entity.OrderStatusPlaced, opts[0].Value)
	assert.Equal(t, entity.OrderStatusDelivered, opts[4].Value)
}

func TestMyUser(t *testing.T) {
	a := newApp(t)
	_, tok := a.user(t, "asha@example.com", "customer")

	body := `{"name":"Asha","contactNumber":"9876543210","addressLine1":"1 Lane","city":"Pune","country":"India","state":"MH","pincode":"411001"}`
	req := httptest.NewRequest(http.MethodPut, "/api/my/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := a.do(req, tok)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(httptest.NewRequest(http.MethodGet, "/api/my/user", nil), tok)
	require.Equal(t, http.StatusOK, w.Code)
	var u entity.User
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &u))
	assert.Equal(t, "Asha", u.Name)
	assert.Equal(t, "Pune", u.City)

	req = httptest.NewRequest(http.MethodPut, "/api/my/user", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	w = a.do(req, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, decode(t, w).Errors, 7)
}
