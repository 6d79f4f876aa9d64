package application

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/razorpay/razorpay-go"

	"github.com/TuaBBL/beatbookingslive/internal/modules/subscription/domain"
)

// Notifier pushes a message to the user after activation. Failures are
// logged by the caller and never fail the verification.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, notifType, message string) error
}

type SubscriptionService struct {
	subs           domain.SubscriptionRepository
	razorpayClient *razorpay.Client
	keyID          string
	keySecret      string
	planAmount     int
	planCurrency   string
	notifier       Notifier
}

func NewSubscriptionService(subs domain.SubscriptionRepository, keyID, keySecret string, planAmount int, planCurrency string, notifier Notifier) *SubscriptionService {
	return &SubscriptionService{
		subs:           subs,
		razorpayClient: razorpay.NewClient(keyID, keySecret),
		keyID:          keyID,
		keySecret:      keySecret,
		planAmount:     planAmount,
		planCurrency:   planCurrency,
		notifier:       notifier,
	}
}

// Status returns the user's subscription state. A missing row is a valid
// state, not an error.
func (s *SubscriptionService) Status(ctx context.Context, userID uuid.UUID) (*StatusResponse, error) {
	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &StatusResponse{}
	if sub != nil {
		resp.Active = sub.Active()
		resp.Status = string(sub.Status)
		resp.IsFreeForever = sub.IsFreeForever
	}
	return resp, nil
}

// Checkout creates a payment-gateway order for the plan and upserts the
// user's subscription row back to pending with the new order id.
func (s *SubscriptionService) Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResponse, error) {
	existing, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing.Active() {
		return nil, domain.ErrAlreadySubscribed
	}

	data := map[string]interface{}{
		"amount":   s.planAmount,
		"currency": s.planCurrency,
		"receipt":  fmt.Sprintf("sub_%s", userID),
	}
	body, err := s.razorpayClient.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout order: %w", err)
	}
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("checkout order response missing id")
	}

	sub := &domain.Subscription{
		UserID:          userID,
		RazorpayOrderID: &orderID,
		Amount:          s.planAmount,
		Currency:        s.planCurrency,
	}
	if existing != nil {
		sub.ID = existing.ID
		sub.IsFreeForever = existing.IsFreeForever
	}
	if err := s.subs.CreatePending(ctx, sub); err != nil {
		return nil, err
	}

	return &CheckoutResponse{
		OrderID:  orderID,
		Amount:   s.planAmount,
		Currency: s.planCurrency,
		KeyID:    s.keyID,
	}, nil
}

// Verify checks the gateway signature against the pending checkout and
// activates the subscription. The signature covers "<order_id>|<payment_id>"
// with the key secret.
func (s *SubscriptionService) Verify(ctx context.Context, userID uuid.UUID, req VerifyRequest) (*StatusResponse, error) {
	sub, err := s.subs.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.RazorpayOrderID == nil || *sub.RazorpayOrderID == "" {
		return nil, domain.ErrNoPendingCheckout
	}
	if *sub.RazorpayOrderID != req.OrderID {
		return nil, domain.ErrOrderMismatch
	}

	expected := s.generateSignature(req.OrderID, req.PaymentID)
	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		return nil, domain.ErrInvalidSignature
	}

	if err := s.subs.Activate(ctx, userID, req.PaymentID); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		// Activation already succeeded; a lost notification is acceptable
		_ = s.notifier.Notify(ctx, userID, "subscription_activated", "Your artist subscription is now active")
	}

	return &StatusResponse{Active: true, Status: string(domain.StatusActive), IsFreeForever: sub.IsFreeForever}, nil
}

func (s *SubscriptionService) generateSignature(orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(s.keySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}
