package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

var ErrInvalidStep = errors.New("step not valid for flow")

// IConversationStateUseCase manages the single per-customer conversation
// state record. A missing record reads as the default browsing state; every
// update stamps last_interaction_at and re-arms the sliding expiry.
type IConversationStateUseCase interface {
	Get(ctx context.Context, customerID string) (entities.ConversationState, error)
	Update(ctx context.Context, customerID string, patch entities.StatePatch) (entities.ConversationState, error)
	Reset(ctx context.Context, customerID string) (entities.ConversationState, error)
	Delete(ctx context.Context, customerID string) error

	SetOrderFlow(ctx context.Context, customerID string, flow entities.Flow, step entities.Step) (entities.ConversationState, error)
	SetMenuContext(ctx context.Context, customerID, category, subcategory string) (entities.ConversationState, error)
	SetCheckoutInfo(ctx context.Context, customerID string, deliveryType entities.DeliveryType, address string) (entities.ConversationState, error)
	SetPaymentMethod(ctx context.Context, customerID string, method entities.PaymentMethod) (entities.ConversationState, error)
}

type ConversationStateUseCase struct {
	repo interfaces.IConversationStateRepository
	ttl  time.Duration
	now  func() time.Time
}

var _ IConversationStateUseCase = (*ConversationStateUseCase)(nil)

func NewConversationStateUseCase(repo interfaces.IConversationStateRepository, ttl time.Duration) *ConversationStateUseCase {
	return &ConversationStateUseCase{repo: repo, ttl: ttl, now: time.Now}
}

func (u *ConversationStateUseCase) Get(ctx context.Context, customerID string) (entities.ConversationState, error) {
	state, found, err := u.repo.Get(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed loading conversation state")
		return entities.ConversationState{}, err
	}
	if !found {
		return entities.DefaultConversationState(), nil
	}
	return state, nil
}

// Update is a read-modify-write against the latest persisted value: the
// current state is re-read here, at write time, not cached from the start of
// a long handler. A patch whose resulting step does not belong to the
// resulting flow is rejected before anything is written.
func (u *ConversationStateUseCase) Update(ctx context.Context, customerID string, patch entities.StatePatch) (entities.ConversationState, error) {
	state, err := u.Get(ctx, customerID)
	if err != nil {
		return entities.ConversationState{}, err
	}

	patch.Apply(&state)
	if !state.Step.ValidFor(state.Flow) {
		return entities.ConversationState{}, fmt.Errorf("%w: %s/%s", ErrInvalidStep, state.Flow, state.Step)
	}
	state.LastInteractionAt = u.now()

	if err := u.repo.Save(ctx, customerID, state, u.ttl); err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed saving conversation state")
		return entities.ConversationState{}, err
	}
	return state, nil
}

// Reset returns the customer to browsing/main_menu and clears all checkout
// and customization context.
func (u *ConversationStateUseCase) Reset(ctx context.Context, customerID string) (entities.ConversationState, error) {
	state := entities.DefaultConversationState()
	state.LastInteractionAt = u.now()
	if err := u.repo.Save(ctx, customerID, state, u.ttl); err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed resetting conversation state")
		return entities.ConversationState{}, err
	}
	return state, nil
}

func (u *ConversationStateUseCase) Delete(ctx context.Context, customerID string) error {
	return u.repo.Delete(ctx, customerID)
}

func (u *ConversationStateUseCase) SetOrderFlow(ctx context.Context, customerID string, flow entities.Flow, step entities.Step) (entities.ConversationState, error) {
	return u.Update(ctx, customerID, entities.StatePatch{
		Flow: entities.FlowPtr(flow),
		Step: entities.StepPtr(step),
	})
}

// SetMenuContext records the browse position: a category alone lands on the
// category step, a category plus subcategory on the item list.
func (u *ConversationStateUseCase) SetMenuContext(ctx context.Context, customerID, category, subcategory string) (entities.ConversationState, error) {
	step := entities.StepCategory
	if subcategory != "" {
		step = entities.StepItemList
	}
	return u.Update(ctx, customerID, entities.StatePatch{
		Flow:               entities.FlowPtr(entities.FlowBrowsing),
		Step:               entities.StepPtr(step),
		CurrentCategory:    entities.StringPtr(category),
		CurrentSubcategory: entities.StringPtr(subcategory),
	})
}

// SetCheckoutInfo advances the checkout position: with an address in hand the
// customer moves to payment selection, without one to location input.
func (u *ConversationStateUseCase) SetCheckoutInfo(ctx context.Context, customerID string, deliveryType entities.DeliveryType, address string) (entities.ConversationState, error) {
	step := entities.StepLocationInput
	if deliveryType == entities.DeliveryTypePickup || address != "" {
		step = entities.StepSelectingPayment
	}
	return u.Update(ctx, customerID, entities.StatePatch{
		Flow:            entities.FlowPtr(entities.FlowCheckout),
		Step:            entities.StepPtr(step),
		DeliveryType:    entities.DeliveryTypePtr(deliveryType),
		DeliveryAddress: entities.StringPtr(address),
	})
}

func (u *ConversationStateUseCase) SetPaymentMethod(ctx context.Context, customerID string, method entities.PaymentMethod) (entities.ConversationState, error) {
	return u.Update(ctx, customerID, entities.StatePatch{
		Flow:          entities.FlowPtr(entities.FlowCheckout),
		Step:          entities.StepPtr(entities.StepConfirmingOrder),
		PaymentMethod: entities.PaymentMethodPtr(method),
	})
}
