package handlers

import (
	"context"
	"net/http"
	"testing"

	"metro-homes/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeIntentCreator struct {
	amounts []int64
	secret  string
}

func (f *fakeIntentCreator) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	f.amounts = append(f.amounts, amountCents)
	return f.secret, nil
}

type fakePaymentStore struct {
	created []*models.Payment
}

func (f *fakePaymentStore) ListPayments() ([]models.Payment, error)              { return nil, nil }
func (f *fakePaymentStore) ListPaymentsByEmail(string) ([]models.Payment, error) { return nil, nil }
func (f *fakePaymentStore) ListPaymentsByAgent(string) ([]models.Payment, error) { return nil, nil }

func (f *fakePaymentStore) CreatePayment(payment *models.Payment) error {
	f.created = append(f.created, payment)
	return nil
}

type fakeOfferMarker struct {
	marked map[string]models.OfferStatus
}

func (f *fakeOfferMarker) UpdateOfferStatus(id string, status models.OfferStatus) (int64, error) {
	if f.marked == nil {
		f.marked = map[string]models.OfferStatus{}
	}
	f.marked[id] = status
	return 1, nil
}

func paymentRouter(store PaymentStore, offers OfferMarker, intents *fakeIntentCreator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentHandler(store, offers, intents)
	r.POST("/create-payment-intent", h.CreateIntent)
	r.POST("/payments", h.Create)
	return r
}

func TestCreateIntentConvertsToCents(t *testing.T) {
	intents := &fakeIntentCreator{secret: "pi_secret_123"}
	r := paymentRouter(&fakePaymentStore{}, &fakeOfferMarker{}, intents)

	w := doJSON(r, http.MethodPost, "/create-payment-intent", `{"price":19.99}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "pi_secret_123")
	require.Equal(t, []int64{1999}, intents.amounts)
}

func TestCreateIntentRejectsZeroOrMissingPrice(t *testing.T) {
	intents := &fakeIntentCreator{secret: "pi_secret_123"}
	r := paymentRouter(&fakePaymentStore{}, &fakeOfferMarker{}, intents)

	for _, body := range []string{`{"price":0}`, `{}`, `{"price":-5}`, `{"price":0.001}`} {
		w := doJSON(r, http.MethodPost, "/create-payment-intent", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
	require.Empty(t, intents.amounts)
}

func TestCreatePaymentMarksOfferBought(t *testing.T) {
	store := &fakePaymentStore{}
	offers := &fakeOfferMarker{}
	r := paymentRouter(store, offers, &fakeIntentCreator{})

	offerID := uuid.NewString()
	w := doJSON(r, http.MethodPost, "/payments",
		`{"email":"buyer@example.com","agentEmail":"agent@example.com","propertyId":"`+
			uuid.NewString()+`","offerId":"`+offerID+`","amount":120000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.created, 1)
	require.Equal(t, models.OfferStatusBought, offers.marked[offerID])
}

func TestCreatePaymentValidation(t *testing.T) {
	store := &fakePaymentStore{}
	r := paymentRouter(store, &fakeOfferMarker{}, &fakeIntentCreator{})

	// Missing agentEmail.
	w := doJSON(r, http.MethodPost, "/payments",
		`{"email":"b@example.com","propertyId":"`+uuid.NewString()+`","amount":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Non-positive amount.
	w = doJSON(r, http.MethodPost, "/payments",
		`{"email":"b@example.com","agentEmail":"a@example.com","propertyId":"`+
			uuid.NewString()+`","amount":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Empty(t, store.created)
}
