package payments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges credit-card orders synchronously through the
// Mercado Pago SDK. In mock mode every charge is approved, which keeps local
// runs and demos independent of provider credentials.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Info().Msg("payment gateway mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed creating mercado pago sdk config")
		return nil, err
	}
	log.Info().Msg("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, order entities.Order) (interfaces.PaymentResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Info().Str("order_id", order.ID).Str("provider_payment_id", id).
			Msg("mock charge approved")
		return interfaces.PaymentResult{Approved: true, ProviderID: id, Status: "approved"}, nil
	}

	if g == nil || g.client == nil {
		return interfaces.PaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: order.Total,
		Description:       fmt.Sprintf("Food order %s", order.ID),
		ExternalReference: order.ID,
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("mercado pago charge failed")
		return interfaces.PaymentResult{}, err
	}

	result := interfaces.PaymentResult{
		Approved:   resp.Status == "approved",
		ProviderID: fmt.Sprintf("%d", resp.ID),
		Status:     resp.Status,
	}
	log.Info().Str("order_id", order.ID).Str("provider_payment_id", result.ProviderID).
		Str("provider_status", result.Status).Msg("charge completed")
	return result, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
