package arena

import "github.com/KirkDiggler/metaverse-slayer/internal/entities"

// ListCharactersInput defines the request for listing mintable templates
type ListCharactersInput struct {
	Account entities.Account
}

// ListCharactersOutput defines the response for listing mintable templates
type ListCharactersOutput struct {
	Characters []entities.CharacterRecord
}

// MintCharacterInput defines the request for minting a character
type MintCharacterInput struct {
	Account entities.Account
	// Index is the template index from ListCharacters
	Index uint64
}

// MintCharacterOutput defines the response for minting a character
type MintCharacterOutput struct {
	Character *entities.CharacterRecord
	TxHash    string
}

// GetBossInput defines the request for reading the boss
type GetBossInput struct {
	Account entities.Account
}

// GetBossOutput defines the response for reading the boss
type GetBossOutput struct {
	Boss *entities.Boss
}

// AttackBossInput defines the request for attacking the boss
type AttackBossInput struct {
	Account   entities.Account
	Character *entities.CharacterRecord
	// Boss is the last known boss state; optional
	Boss *entities.Boss
}

// AttackBossOutput defines the response for attacking the boss
type AttackBossOutput struct {
	Boss      *entities.Boss
	Character *entities.CharacterRecord
	TxHash    string
}
