package builders

import (
	"time"

	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/testutils"
)

// SessionBuilder provides a fluent interface for building Sessions through
// the same transitions the orchestrator uses
type SessionBuilder struct {
	session entities.Session
}

// NewSessionBuilder starts from a fresh, loading session
func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{session: entities.NewSession(testutils.TestSessionID)}
}

// Connected sets the account
func (b *SessionBuilder) Connected(account entities.Account) *SessionBuilder {
	b.session = b.session.WithAccount(account, time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC))
	return b
}

// WithCharacter sets the character
func (b *SessionBuilder) WithCharacter(record *entities.CharacterRecord) *SessionBuilder {
	b.session = b.session.WithCharacter(record)
	return b
}

// Loaded clears the loading flag
func (b *SessionBuilder) Loaded() *SessionBuilder {
	b.session = b.session.DoneLoading()
	return b
}

// WithNotice sets a pending notice
func (b *SessionBuilder) WithNotice(msg string) *SessionBuilder {
	b.session = b.session.WithNotice(msg)
	return b
}

// Build returns the session
func (b *SessionBuilder) Build() entities.Session {
	return b.session
}
