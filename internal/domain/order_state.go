package domain

import "strings"

// RestockOrderState represents the lifecycle state of a restock order
type RestockOrderState string

const (
	RestockStateIssued          RestockOrderState = "ISSUED"
	RestockStateDelivery        RestockOrderState = "DELIVERY"
	RestockStateDelivered       RestockOrderState = "DELIVERED"
	RestockStateTested          RestockOrderState = "TESTED"
	RestockStateCompleted       RestockOrderState = "COMPLETED"
	RestockStateCompletedReturn RestockOrderState = "COMPLETEDRETURN"
)

// ParseRestockOrderState normalizes and validates a state token.
// Tokens are trimmed and uppercased before matching.
func ParseRestockOrderState(raw string) (RestockOrderState, error) {
	state := RestockOrderState(strings.ToUpper(strings.TrimSpace(raw)))
	switch state {
	case RestockStateIssued, RestockStateDelivery, RestockStateDelivered,
		RestockStateTested, RestockStateCompleted, RestockStateCompletedReturn:
		return state, nil
	default:
		return "", ErrUnknownState
	}
}

// IsValid checks if the state is one of the known tokens
func (s RestockOrderState) IsValid() bool {
	_, err := ParseRestockOrderState(string(s))
	return err == nil
}

// InternalOrderState represents the lifecycle state of an internal order
type InternalOrderState string

const (
	InternalStateIssued    InternalOrderState = "ISSUED"
	InternalStateAccepted  InternalOrderState = "ACCEPTED"
	InternalStateRefused   InternalOrderState = "REFUSED"
	InternalStateCanceled  InternalOrderState = "CANCELED"
	InternalStateCompleted InternalOrderState = "COMPLETED"
)

// ParseInternalOrderState normalizes and validates a state token
func ParseInternalOrderState(raw string) (InternalOrderState, error) {
	state := InternalOrderState(strings.ToUpper(strings.TrimSpace(raw)))
	switch state {
	case InternalStateIssued, InternalStateAccepted, InternalStateRefused,
		InternalStateCanceled, InternalStateCompleted:
		return state, nil
	default:
		return "", ErrUnknownState
	}
}

// IsValid checks if the state is one of the known tokens
func (s InternalOrderState) IsValid() bool {
	_, err := ParseInternalOrderState(string(s))
	return err == nil
}
