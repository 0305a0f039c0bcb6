package entities_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
)

var connectedAt = time.Date(2021, 9, 1, 12, 0, 0, 0, time.UTC)

func TestNewSession(t *testing.T) {
	s := entities.NewSession("session_1")

	assert.Equal(t, "session_1", s.ID)
	assert.True(t, s.Loading)
	assert.False(t, s.Connected())
	assert.False(t, s.HasCharacter())
}

func TestSession_WithAccount(t *testing.T) {
	s := entities.NewSession("s").WithAccount("0xABC", connectedAt)

	assert.True(t, s.Connected())
	assert.Equal(t, entities.Account("0xABC"), s.Account)
	assert.Equal(t, connectedAt, s.ConnectedAt)
}

func TestSession_WithAccount_SameAddressKeepsCharacter(t *testing.T) {
	s := entities.NewSession("s").
		WithAccount("0xABC", connectedAt).
		WithCharacter(&entities.CharacterRecord{Name: "Orc"})

	s = s.WithAccount("0xabc", connectedAt.Add(time.Minute))

	assert.True(t, s.HasCharacter())
	assert.Equal(t, connectedAt, s.ConnectedAt)
}

func TestSession_WithAccount_SwitchDropsCharacter(t *testing.T) {
	s := entities.NewSession("s").
		WithAccount("0xABC", connectedAt).
		WithCharacter(&entities.CharacterRecord{Name: "Orc"})

	s = s.WithAccount("0xDEF", connectedAt)

	assert.False(t, s.HasCharacter())
	assert.Nil(t, s.Character)
}

func TestSession_WithCharacter(t *testing.T) {
	testCases := []struct {
		name    string
		account entities.Account
		record  *entities.CharacterRecord
		want    bool
	}{
		{"named record", "0xABC", &entities.CharacterRecord{Name: "Orc", HP: 100}, true},
		{"empty name is no record", "0xABC", &entities.CharacterRecord{Name: "", HP: 100}, false},
		{"nil record", "0xABC", nil, false},
		{"no account", "", &entities.CharacterRecord{Name: "Orc"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := entities.NewSession("s").WithAccount(tc.account, connectedAt).WithCharacter(tc.record)
			assert.Equal(t, tc.want, s.HasCharacter())
			if !tc.want {
				assert.Nil(t, s.Character)
			}
		})
	}
}

func TestSession_WithCharacter_Copies(t *testing.T) {
	record := &entities.CharacterRecord{Name: "Orc", HP: 100}
	s := entities.NewSession("s").WithAccount("0xABC", connectedAt).WithCharacter(record)

	record.HP = 0
	assert.Equal(t, uint64(100), s.Character.HP)
}

func TestSession_TransitionsDoNotMutateReceiver(t *testing.T) {
	initial := entities.NewSession("s")
	_ = initial.DoneLoading().WithAccount("0xABC", connectedAt).WithNotice("hi")

	assert.True(t, initial.Loading)
	assert.False(t, initial.Connected())
	assert.Empty(t, initial.Notice)
}

func TestSession_NoticeAndError(t *testing.T) {
	s := entities.NewSession("s").WithNotice("Get a wallet!").WithError(fmt.Errorf("rpc down"))
	assert.Equal(t, "Get a wallet!", s.Notice)
	assert.Equal(t, "rpc down", s.LastError)

	s = s.ClearNotice().WithError(nil)
	assert.Empty(t, s.Notice)
	assert.Empty(t, s.LastError)
}

func TestAccount(t *testing.T) {
	a := entities.Account("0x5FbDB2315678afecb367f032d93F642f64180aa3")

	assert.Equal(t, "0x5FbD…0aa3", a.Short())
	assert.True(t, a.Equal("0x5fbdb2315678afecb367f032d93f642f64180aa3"))
	assert.Equal(t, entities.EntityTypeAccount, a.GetType())
	assert.Equal(t, string(a), a.GetID())
	assert.True(t, entities.Account("").Empty())
}

func TestCharacterRecord_Alive(t *testing.T) {
	assert.True(t, (&entities.CharacterRecord{Name: "Orc", HP: 1}).Alive())
	assert.False(t, (&entities.CharacterRecord{Name: "Orc", HP: 0}).Alive())
	assert.False(t, (*entities.CharacterRecord)(nil).Alive())
	assert.False(t, (*entities.Boss)(nil).Alive())
}
