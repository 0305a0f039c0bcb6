package entities

import "time"

// Session is the state one client view is rendered from. Values are
// immutable; every transition returns a new Session.
type Session struct {
	ID          string
	Loading     bool
	Account     Account
	Character   *CharacterRecord
	Notice      string
	LastError   string
	ConnectedAt time.Time
}

// NewSession returns the initial state: loading, nothing connected
func NewSession(id string) Session {
	return Session{
		ID:      id,
		Loading: true,
	}
}

// Connected reports whether an account is set
func (s Session) Connected() bool {
	return !s.Account.Empty()
}

// HasCharacter reports whether a usable character is set
func (s Session) HasCharacter() bool {
	return s.Connected() && s.Character.Present()
}

// WithAccount sets the connected account. Switching to a different account
// drops the previous account's character.
func (s Session) WithAccount(account Account, at time.Time) Session {
	if !s.Account.Equal(account) {
		s.Character = nil
		s.ConnectedAt = at
	}
	s.Account = account
	return s
}

// WithCharacter sets the character record. A record with an empty name, or
// any record while no account is connected, clears it.
func (s Session) WithCharacter(record *CharacterRecord) Session {
	if !s.Connected() || !record.Present() {
		s.Character = nil
		return s
	}
	c := *record
	s.Character = &c
	return s
}

// DoneLoading clears the loading flag
func (s Session) DoneLoading() Session {
	s.Loading = false
	return s
}

// WithNotice sets a notice the user must acknowledge
func (s Session) WithNotice(msg string) Session {
	s.Notice = msg
	return s
}

// ClearNotice removes the pending notice
func (s Session) ClearNotice() Session {
	s.Notice = ""
	return s
}

// WithError records the last non-fatal failure; nil clears it
func (s Session) WithError(err error) Session {
	if err == nil {
		s.LastError = ""
		return s
	}
	s.LastError = err.Error()
	return s
}
