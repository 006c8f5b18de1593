package domain

import "strings"

// PayType is a rep's commission-rate bracket.
type PayType string

const (
	PayTypeRookie PayType = "Rookie"
	PayTypeVet    PayType = "Vet"
	PayTypePro    PayType = "Pro"
)

// AllPayTypes lists the tiers from lowest to highest rate.
var AllPayTypes = []PayType{PayTypeRookie, PayTypeVet, PayTypePro}

// IsValid reports whether p is one of the three tiers.
func (p PayType) IsValid() bool {
	switch p {
	case PayTypeRookie, PayTypeVet, PayTypePro:
		return true
	}
	return false
}

// Normalize returns p itself when valid and Rookie otherwise.
func (p PayType) Normalize() PayType {
	if p.IsValid() {
		return p
	}
	return PayTypeRookie
}

// ParsePayType matches a tier name case-insensitively. Anything else,
// including the empty string, is Rookie.
func ParsePayType(s string) PayType {
	for _, p := range AllPayTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p
		}
	}
	return PayTypeRookie
}
