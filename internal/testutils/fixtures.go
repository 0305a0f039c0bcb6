// Package testutils holds fixtures shared by the package tests
package testutils

import "github.com/KirkDiggler/metaverse-slayer/internal/entities"

const (
	// TestAccount is the default connected wallet in tests
	TestAccount entities.Account = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	// OtherAccount is a second wallet for account-switch scenarios
	OtherAccount entities.Account = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"

	// TestSessionID matches the first ID of idgen.NewSequential("session")
	TestSessionID = "session_1"
)

// DefaultCharacters returns the three mintable templates the game ships with
func DefaultCharacters() []entities.CharacterRecord {
	return []entities.CharacterRecord{
		*Orc(),
		*Elf(),
		*Wizard(),
	}
}

// Orc is the tank template at full health
func Orc() *entities.CharacterRecord {
	return &entities.CharacterRecord{
		Index:        0,
		Name:         "Orc",
		ImageURI:     "https://i.imgur.com/orc.png",
		HP:           300,
		MaxHP:        300,
		AttackDamage: 25,
	}
}

// Elf is the balanced template at full health
func Elf() *entities.CharacterRecord {
	return &entities.CharacterRecord{
		Index:        1,
		Name:         "Elf",
		ImageURI:     "https://i.imgur.com/elf.png",
		HP:           200,
		MaxHP:        200,
		AttackDamage: 50,
	}
}

// Wizard is the glass cannon template at full health
func Wizard() *entities.CharacterRecord {
	return &entities.CharacterRecord{
		Index:        2,
		Name:         "Wizard",
		ImageURI:     "https://i.imgur.com/wizard.png",
		HP:           100,
		MaxHP:        100,
		AttackDamage: 100,
	}
}

// BigBoss is the arena boss at full health
func BigBoss() *entities.Boss {
	return &entities.Boss{
		Name:         "Elon Musk",
		ImageURI:     "https://i.imgur.com/boss.png",
		HP:           10000,
		MaxHP:        10000,
		AttackDamage: 50,
	}
}
