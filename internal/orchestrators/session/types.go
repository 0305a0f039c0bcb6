package session

import "github.com/KirkDiggler/metaverse-slayer/internal/entities"

// EventAccountConnected is published when the session account changes to a
// new, non-empty address. The event source is the entities.Account.
const EventAccountConnected = "session.account_connected"

// NoticeNoWallet is shown when a connect is attempted without a wallet provider
const NoticeNoWallet = "Get a wallet!"

// FetchCharacterInput defines the request for loading an account's character
type FetchCharacterInput struct {
	Account entities.Account
}

// FetchCharacterOutput defines the response for loading an account's character
type FetchCharacterOutput struct {
	// Character is nil when the account owns none or the read failed
	Character *entities.CharacterRecord
	Session   entities.Session
	// Stale is set when the session moved to another account while the
	// read was in flight; the result was not applied.
	Stale bool
}
