package payments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/court-scheduler/internal/models"
)

// Checkout é o que os handlers precisam do provedor de pagamento.
// A implementação real fala com o Mercado Pago; os testes usam fake.
type Checkout interface {
	CreatePreference(ctx context.Context, b *models.Booking, backURL string) (*PreferenceResult, error)
	GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error)
}

type PreferenceResult struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

// PaymentInfo é a visão reduzida de um pagamento: o webhook só precisa
// saber a qual reserva pertence e se aprova ou derruba o hold.
type PaymentInfo struct {
	PaymentID string
	OrderID   string
	BookingID string
	Status    string
}

func (p *PaymentInfo) Approved() bool {
	return p.Status == "approved"
}

func (p *PaymentInfo) Rejected() bool {
	return p.Status == "rejected" || p.Status == "cancelled"
}

// ======================================================
// Cliente Mercado Pago
// ======================================================

type MercadoPago struct {
	preferences preference.Client
	payments    payment.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

// CreatePreference abre o checkout de uma reserva. O ID da reserva vai
// em ExternalReference — é por ele que o webhook encontra o booking.
func (mp *MercadoPago) CreatePreference(
	ctx context.Context,
	b *models.Booking,
	backURL string,
) (*PreferenceResult, error) {

	title := fmt.Sprintf("%s — %s %s", b.CourtName, b.Date, b.StartTime)

	req := preference.Request{
		ExternalReference: b.ID,
		Items: []preference.ItemRequest{
			{
				ID:        b.ID,
				Title:     title,
				Quantity:  1,
				UnitPrice: b.Amount,
			},
		},
	}
	if backURL != "" {
		req.BackURLs = &preference.BackURLsRequest{
			Success: backURL,
			Pending: backURL,
			Failure: backURL,
		}
	}

	resp, err := mp.preferences.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &PreferenceResult{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}

func (mp *MercadoPago) GetPayment(
	ctx context.Context,
	paymentID string,
) (*PaymentInfo, error) {

	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment id %q: %w", paymentID, err)
	}

	resp, err := mp.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return &PaymentInfo{
		PaymentID: strconv.Itoa(resp.ID),
		OrderID:   resp.Order.ID,
		BookingID: resp.ExternalReference,
		Status:    resp.Status,
	}, nil
}

var _ Checkout = (*MercadoPago)(nil)
