// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	gamemock "github.com/KirkDiggler/metaverse-slayer/internal/clients/game/mock"
	walletmock "github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet/mock"
	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
)

// Contract groups the mocks behind one contract connection
type Contract struct {
	Provider *walletmock.MockProvider
	Signer   *walletmock.MockSigner
	Factory  *gamemock.MockFactory
	Client   *gamemock.MockClient
}

// NewContract creates the mocks on ctrl
func NewContract(ctrl *gomock.Controller) *Contract {
	return &Contract{
		Provider: walletmock.NewMockProvider(ctrl),
		Signer:   walletmock.NewMockSigner(ctrl),
		Factory:  gamemock.NewMockFactory(ctrl),
		Client:   gamemock.NewMockClient(ctrl),
	}
}

// ExpectConnect expects one signer derivation for account and one contract
// binding on that signer
func (c *Contract) ExpectConnect(account entities.Account) {
	c.Provider.EXPECT().Signer(account).Return(c.Signer, nil)
	c.Factory.EXPECT().Connect(c.Signer).Return(c.Client, nil)
}

// ExpectCharacterRead expects a full character fetch for account
func (c *Contract) ExpectCharacterRead(account entities.Account, record *entities.CharacterRecord, err error) {
	c.ExpectConnect(account)
	c.Client.EXPECT().CheckIfUserHasNFT(gomock.Any()).Return(record, err)
}
