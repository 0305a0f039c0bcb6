package game

import (
	"math"
	"math/big"

	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
)

// CharacterAttributes mirrors the contract's CharacterAttributes tuple
type CharacterAttributes struct {
	CharacterIndex *big.Int
	Name           string
	ImageURI       string
	Hp             *big.Int
	MaxHp          *big.Int
	AttackDamage   *big.Int
}

// BigBoss mirrors the contract's BigBoss tuple
type BigBoss struct {
	Name         string
	ImageURI     string
	Hp           *big.Int
	MaxHp        *big.Int
	AttackDamage *big.Int
}

// Record converts the on-chain tuple into an entity
func (c CharacterAttributes) Record() *entities.CharacterRecord {
	return &entities.CharacterRecord{
		Index:        toUint64(c.CharacterIndex),
		Name:         c.Name,
		ImageURI:     c.ImageURI,
		HP:           toUint64(c.Hp),
		MaxHP:        toUint64(c.MaxHp),
		AttackDamage: toUint64(c.AttackDamage),
	}
}

// Boss converts the on-chain tuple into an entity
func (b BigBoss) Boss() *entities.Boss {
	return &entities.Boss{
		Name:         b.Name,
		ImageURI:     b.ImageURI,
		HP:           toUint64(b.Hp),
		MaxHP:        toUint64(b.MaxHp),
		AttackDamage: toUint64(b.AttackDamage),
	}
}

// toUint64 saturates values that do not fit; stats never get that large.
func toUint64(v *big.Int) uint64 {
	if v == nil || v.Sign() < 0 {
		return 0
	}
	if !v.IsUint64() {
		return math.MaxUint64
	}
	return v.Uint64()
}
