// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/testutils"
)

// CharacterBuilder provides a fluent interface for building CharacterRecords
type CharacterBuilder struct {
	record entities.CharacterRecord
}

// NewCharacterBuilder starts from the Orc template
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{record: *testutils.Orc()}
}

// From starts from a copy of record
func From(record *entities.CharacterRecord) *CharacterBuilder {
	return &CharacterBuilder{record: *record}
}

// WithName sets the name; an empty name makes the record absent
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.record.Name = name
	return b
}

// WithHP sets the current hit points
func (b *CharacterBuilder) WithHP(hp uint64) *CharacterBuilder {
	b.record.HP = hp
	return b
}

// Hit takes damage off the current hit points, stopping at zero
func (b *CharacterBuilder) Hit(damage uint64) *CharacterBuilder {
	if damage > b.record.HP {
		damage = b.record.HP
	}
	b.record.HP -= damage
	return b
}

// Empty clears the record to what the contract returns for a wallet
// without a character
func (b *CharacterBuilder) Empty() *CharacterBuilder {
	b.record = entities.CharacterRecord{}
	return b
}

// Build returns the character record
func (b *CharacterBuilder) Build() *entities.CharacterRecord {
	record := b.record
	return &record
}
