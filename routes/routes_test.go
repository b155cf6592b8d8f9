package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"lustrio/database"
	"lustrio/database/memstore"
	bookingRepo "lustrio/database/repository/booking"
	feedbackRepo "lustrio/database/repository/feedback"
	hotelRepo "lustrio/database/repository/hotel"
	userRepo "lustrio/database/repository/user"
	"lustrio/handlers"
	"lustrio/middleware"
	"lustrio/models"
	"lustrio/services/booking"
	"lustrio/services/feedback"
	"lustrio/services/hotel"
	"lustrio/services/identity"
	"lustrio/services/payment"
	"lustrio/services/user"
	"lustrio/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type tokenVerifier map[string]identity.Result

func (v tokenVerifier) Verify(ctx context.Context, token string) identity.Result {
	if r, ok := v[token]; ok {
		return r
	}
	return identity.Anonymous("unknown token")
}

type fakeIssuer struct {
	mu      sync.Mutex
	intents map[string]*payment.Intent
}

func (f *fakeIssuer) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*payment.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("pi_%d", len(f.intents)+1)
	f.intents[id] = &payment.Intent{
		ID: id, ClientSecret: id + "_secret_x", Amount: amount,
		Currency: currency, Status: "requires_payment_method", Metadata: metadata,
	}
	cp := *f.intents[id]
	return &cp, nil
}

func (f *fakeIssuer) GetIntent(ctx context.Context, id string) (*payment.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	in, ok := f.intents[id]
	if !ok {
		return nil, fmt.Errorf("%w: no such payment_intent", payment.ErrRejected)
	}
	cp := *in
	return &cp, nil
}

func (f *fakeIssuer) settle(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intents[id].Status = payment.IntentSucceeded
}

type testServer struct {
	engine *gin.Engine
	store  *memstore.Store
	issuer *fakeIssuer
	users  user.UserService
}

func newTestServer(t *testing.T, verifier identity.Verifier) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New(
		memstore.WithUnique(database.CollectionUsers, "email"),
		memstore.WithUnique(database.CollectionBookings, "paymentIntentId"),
	)
	issuer := &fakeIssuer{intents: map[string]*payment.Intent{}}
	users := &user.DefaultUserService{Repo: userRepo.NewStoreUserRepo(store)}

	hb := &handlers.HandlerBundle{
		Hotels:         hotel.NewHotelService(hotelRepo.NewStoreHotelRepo(store), nil, nil),
		Bookings:       booking.NewBookingService(bookingRepo.NewStoreBookingRepo(store), issuer, "usd", nil),
		Feedbacks:      &feedback.DefaultFeedbackService{Repo: feedbackRepo.NewStoreFeedbackRepo(store)},
		Users:          users,
		Verifier:       verifier,
		Metrics:        middleware.NewMetrics(),
		Logger:         zap.NewNop(),
		MaxUploadBytes: 1 << 10,
	}

	r := gin.New()
	r.Use(gin.Recovery(), utils.ErrorHandler(zap.NewNop()))
	RegisterRoutes(r, hb)
	return &testServer{engine: r, store: store, issuer: issuer, users: users}
}

func (s *testServer) do(t *testing.T, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRootAndHealth(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "from server", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/health"`)
}

func TestAdminPromotionFlow(t *testing.T) {
	s := newTestServer(t, tokenVerifier{
		"root-token":  identity.VerifiedAs("root@x.com"),
		"plain-token": identity.VerifiedAs("plain@x.com"),
		"down-token":  identity.Failure(errors.New("jwks unavailable")),
	})
	ctx := context.Background()

	_, err := s.users.RegisterUser(ctx, models.UserInput{Email: "root@x.com"})
	require.NoError(t, err)
	_, err = s.users.(*user.DefaultUserService).Repo.SetRole(ctx, "root@x.com", models.RoleAdmin)
	require.NoError(t, err)

	w := s.do(t, http.MethodPost, "/users", map[string]string{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = s.do(t, http.MethodPut, "/users", map[string]string{"email": "plain@x.com", "role": "admin"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/users/a@x.com", nil)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())
	w = s.do(t, http.MethodGet, "/users/plain@x.com", nil)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())

	denied := map[string]int{
		"":                   http.StatusForbidden,
		"Bearer bogus":       http.StatusForbidden,
		"Bearer plain-token": http.StatusForbidden,
		"Bearer down-token":  http.StatusServiceUnavailable,
	}
	for header, code := range denied {
		var hdr []string
		if header != "" {
			hdr = []string{"Authorization", header}
		}
		w = s.do(t, http.MethodPut, "/users/admin", map[string]string{"email": "a@x.com"}, hdr...)
		assert.Equal(t, code, w.Code, header)
		assert.Contains(t, w.Body.String(), `"message"`)
	}
	w = s.do(t, http.MethodGet, "/users/a@x.com", nil)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())

	w = s.do(t, http.MethodPut, "/users/admin", map[string]string{"email": "a@x.com"}, "Authorization", "Bearer root-token")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/users/a@x.com", nil)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())
}

func TestDuplicateRegistration(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/users", map[string]string{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodPost, "/users", map[string]string{"email": "A@x.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	w = s.do(t, http.MethodPost, "/users", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingPaymentFlow(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/bookings", map[string]any{
		"email": "b@x.com", "hotelId": "H1", "price": 100, "paid": true, "status": "approved",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[database.InsertResult](t, w)
	id, ok := created.InsertedID.(string)
	require.True(t, ok)

	w = s.do(t, http.MethodGet, "/booking/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	b := decode[models.Booking](t, w)
	assert.False(t, b.Paid)
	assert.Equal(t, models.BookingStatusPending, b.Status)

	w = s.do(t, http.MethodPost, "/create-payment-intent", map[string]any{"price": 100})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	intent := decode[models.PaymentIntentResponse](t, w)
	assert.NotEmpty(t, intent.ClientSecret)
	assert.Equal(t, int64(10000), intent.Amount)

	w = s.do(t, http.MethodPut, "/booking/"+id, map[string]string{"paymentIntentId": intent.PaymentIntentID})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	s.issuer.settle(intent.PaymentIntentID)
	w = s.do(t, http.MethodPut, "/booking/"+id, map[string]string{"paymentIntentId": intent.PaymentIntentID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/booking/"+id, nil)
	b = decode[models.Booking](t, w)
	assert.True(t, b.Paid)
	assert.Equal(t, models.BookingStatusApproved, b.Status)
	assert.Equal(t, intent.PaymentIntentID, b.PaymentIntentID)

	w = s.do(t, http.MethodPut, "/booking/"+id, map[string]string{"paymentIntentId": intent.PaymentIntentID})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/bookings", map[string]any{"email": "c@x.com", "hotelId": "H1", "price": 100})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	other := decode[database.InsertResult](t, w).InsertedID.(string)
	w = s.do(t, http.MethodPut, "/booking/"+other, map[string]string{"paymentIntentId": intent.PaymentIntentID})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	w = s.do(t, http.MethodGet, "/booking/"+other, nil)
	assert.False(t, decode[models.Booking](t, w).Paid)

	w = s.do(t, http.MethodPut, "/booking/"+id, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/bookings/b@x.com", nil)
	assert.Len(t, decode[[]models.Booking](t, w), 1)
	w = s.do(t, http.MethodGet, "/bookings/nobody@x.com", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBookingDeleteAndLookupErrors(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/bookings", map[string]any{"email": "b@x.com", "hotelId": "H1", "price": 80})
	require.Equal(t, http.StatusOK, w.Code)
	id := decode[database.InsertResult](t, w).InsertedID.(string)

	w = s.do(t, http.MethodDelete, "/booking/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode[database.DeleteResult](t, w).DeletedCount)

	w = s.do(t, http.MethodDelete, "/booking/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode[database.DeleteResult](t, w).DeletedCount)

	w = s.do(t, http.MethodGet, "/booking/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(t, http.MethodGet, "/booking/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/bookings", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestStoreFailureIsStructured(t *testing.T) {
	s := newTestServer(t, nil)
	s.store.Fail(errors.New("connection reset by peer"))

	w := s.do(t, http.MethodGet, "/hotels", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode[utils.ErrorResponse](t, w)
	assert.Equal(t, "Store unavailable", resp.Message)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestFeedbacks(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/feedbacks", map[string]any{"name": "Rina", "message": "Great", "rating": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = s.do(t, http.MethodPost, "/feedbacks", map[string]any{"name": "Rina", "message": "Great", "rating": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/feedbacks", nil)
	fbs := decode[[]models.Feedback](t, w)
	require.Len(t, fbs, 1)
	assert.Equal(t, "Great", fbs[0].Message)
}

func hotelForm(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		fw, err := mw.CreateFormFile("image", "room.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func (s *testServer) postHotel(t *testing.T, fields map[string]string, image []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := hotelForm(t, fields, image)
	req := httptest.NewRequest(http.MethodPost, "/hotels", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func TestHotelLifecycle(t *testing.T) {
	s := newTestServer(t, nil)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")
	fields := map[string]string{"name": "Sea View", "price": "120", "location": "Cox's Bazar", "description": "Beachfront"}

	w := s.postHotel(t, fields, png)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := decode[database.InsertResult](t, w).InsertedID.(string)

	w = s.do(t, http.MethodGet, "/hotel/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	h := decode[models.Hotel](t, w)
	assert.Equal(t, "Sea View", h.Name)
	assert.Equal(t, png, h.Img)

	w = s.postHotel(t, fields, []byte("plain text, not an image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.postHotel(t, fields, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.postHotel(t, map[string]string{"name": "No price"}, png)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.postHotel(t, fields, append(append([]byte{}, png...), make([]byte, 2<<10)...))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	w = s.postHotel(t, fields, append(append([]byte{}, png...), make([]byte, 256<<10)...))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "Image too large", decode[utils.ErrorResponse](t, w).Message)
	w = s.do(t, http.MethodGet, "/hotels", nil)
	assert.Len(t, decode[[]models.Hotel](t, w), 1)

	w = s.do(t, http.MethodDelete, "/hotels/"+id, nil)
	assert.EqualValues(t, 1, decode[database.DeleteResult](t, w).DeletedCount)
	w = s.do(t, http.MethodDelete, "/hotels/"+id, nil)
	assert.EqualValues(t, 0, decode[database.DeleteResult](t, w).DeletedCount)

	w = s.do(t, http.MethodGet, "/hotels", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}
