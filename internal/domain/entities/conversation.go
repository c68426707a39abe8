package entities

import "time"

// Flow is the top-level conversational mode a customer is in.
type Flow string

const (
	FlowBrowsing    Flow = "browsing"
	FlowCheckout    Flow = "checkout"
	FlowCustomizing Flow = "customizing"
)

// Step is the fine-grained position inside a Flow.
type Step string

const (
	// browsing
	StepMainMenu Step = "main_menu"
	StepCategory Step = "category"
	StepItemList Step = "item_list"
	StepSpecials Step = "specials"

	// checkout
	StepSelectingDeliveryType         Step = "selecting_delivery_type"
	StepLocationInput                 Step = "location_input"
	StepSelectingPayment              Step = "selecting_payment"
	StepConfirmingOrder               Step = "confirming_order"
	StepWaitingForPaymentConfirmation Step = "waiting_for_payment_confirmation"

	// customizing
	StepSelectingOptions    Step = "selecting_options"
	StepSpecialInstructions Step = "special_instructions"
)

var stepsByFlow = map[Flow][]Step{
	FlowBrowsing: {StepMainMenu, StepCategory, StepItemList, StepSpecials},
	FlowCheckout: {
		StepSelectingDeliveryType, StepLocationInput, StepSelectingPayment,
		StepConfirmingOrder, StepWaitingForPaymentConfirmation,
	},
	FlowCustomizing: {StepSelectingOptions, StepSpecialInstructions},
}

// ValidFor reports whether the step belongs to the given flow.
func (s Step) ValidFor(f Flow) bool {
	for _, v := range stepsByFlow[f] {
		if v == s {
			return true
		}
	}
	return false
}

// Coordinates is a shared-location lat/long pair. It is replaced wholesale on
// update, never partially patched.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ConversationState is the single per-customer state record. Absence of a
// persisted record implies DefaultConversationState.
type ConversationState struct {
	Flow                Flow          `json:"flow"`
	Step                Step          `json:"step"`
	CurrentCategory     string        `json:"current_category,omitempty"`
	CurrentSubcategory  string        `json:"current_subcategory,omitempty"`
	CurrentItemID       string        `json:"current_item_id,omitempty"`
	DeliveryType        DeliveryType  `json:"delivery_type,omitempty"`
	DeliveryAddress     string        `json:"delivery_address,omitempty"`
	LocationCoordinates *Coordinates  `json:"location_coordinates,omitempty"`
	PaymentMethod       PaymentMethod `json:"payment_method,omitempty"`
	CurrentOrderID      string        `json:"current_order_id,omitempty"`
	LastInteractionAt   time.Time     `json:"last_interaction_at"`
}

func DefaultConversationState() ConversationState {
	return ConversationState{
		Flow: FlowBrowsing,
		Step: StepMainMenu,
	}
}

// StatePatch is a shallow partial update of ConversationState. Nil fields are
// left untouched; non-nil fields replace the current value wholesale.
type StatePatch struct {
	Flow                *Flow
	Step                *Step
	CurrentCategory     *string
	CurrentSubcategory  *string
	CurrentItemID       *string
	DeliveryType        *DeliveryType
	DeliveryAddress     *string
	LocationCoordinates *Coordinates
	PaymentMethod       *PaymentMethod
	CurrentOrderID      *string
}

// Apply merges the patch onto s.
func (p StatePatch) Apply(s *ConversationState) {
	if p.Flow != nil {
		s.Flow = *p.Flow
	}
	if p.Step != nil {
		s.Step = *p.Step
	}
	if p.CurrentCategory != nil {
		s.CurrentCategory = *p.CurrentCategory
	}
	if p.CurrentSubcategory != nil {
		s.CurrentSubcategory = *p.CurrentSubcategory
	}
	if p.CurrentItemID != nil {
		s.CurrentItemID = *p.CurrentItemID
	}
	if p.DeliveryType != nil {
		s.DeliveryType = *p.DeliveryType
	}
	if p.DeliveryAddress != nil {
		s.DeliveryAddress = *p.DeliveryAddress
	}
	if p.LocationCoordinates != nil {
		c := *p.LocationCoordinates
		s.LocationCoordinates = &c
	}
	if p.PaymentMethod != nil {
		s.PaymentMethod = *p.PaymentMethod
	}
	if p.CurrentOrderID != nil {
		s.CurrentOrderID = *p.CurrentOrderID
	}
}

// Patch helpers so callers can build literals without local variables.

func FlowPtr(f Flow) *Flow                      { return &f }
func StepPtr(s Step) *Step                      { return &s }
func StringPtr(s string) *string                { return &s }
func DeliveryTypePtr(d DeliveryType) *DeliveryType { return &d }
func PaymentMethodPtr(m PaymentMethod) *PaymentMethod { return &m }
