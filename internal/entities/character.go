package entities

// CharacterRecord is a player's character as stored by the game contract.
// The contract answers "no character" with a zero-valued struct, so a record
// is only meaningful when Present reports true.
type CharacterRecord struct {
	Index        uint64 `json:"character_index"`
	Name         string `json:"name"`
	ImageURI     string `json:"image_uri"`
	HP           uint64 `json:"hp"`
	MaxHP        uint64 `json:"max_hp"`
	AttackDamage uint64 `json:"attack_damage"`
}

// Present reports whether the record describes a real character
func (c *CharacterRecord) Present() bool {
	return c != nil && c.Name != ""
}

// Alive reports whether the character can still fight
func (c *CharacterRecord) Alive() bool {
	return c.Present() && c.HP > 0
}

// Boss is the shared enemy every player attacks in the arena
type Boss struct {
	Name         string `json:"name"`
	ImageURI     string `json:"image_uri"`
	HP           uint64 `json:"hp"`
	MaxHP        uint64 `json:"max_hp"`
	AttackDamage uint64 `json:"attack_damage"`
}

// Alive reports whether the boss has hit points left
func (b *Boss) Alive() bool {
	return b != nil && b.HP > 0
}
