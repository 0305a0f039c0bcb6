// Package entities provides core data structures for the slayer client.
package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeAccount is the rpg-toolkit entity type for wallet accounts
const EntityTypeAccount = "account"

var _ core.Entity = Account("")

// Account is a wallet address authorized for the session. The zero value
// means no account is connected.
type Account string

// Empty reports whether no account is set
func (a Account) Empty() bool {
	return a == ""
}

// Equal compares addresses case-insensitively; wallets return both
// checksummed and lower-case forms of the same address.
func (a Account) Equal(other Account) bool {
	return strings.EqualFold(string(a), string(other))
}

// Short returns the 0x1234…abcd form used in headers
func (a Account) Short() string {
	s := string(a)
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}

// GetID implements core.Entity
func (a Account) GetID() string {
	return string(a)
}

// GetType implements core.Entity
func (a Account) GetType() string {
	return EntityTypeAccount
}
