package game_test

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/metaverse-slayer/internal/clients/game"
	walletmock "github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet/mock"
	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/clock"
)

var player = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

// fakeChain answers eth_call for the game contract from canned return values
type fakeChain struct {
	abi       abi.ABI
	character game.CharacterAttributes
	defaults  []game.CharacterAttributes
	boss      game.BigBoss
	noCode    bool
	callers   []common.Address
}

func (f *fakeChain) Address() common.Address { return player }

func (f *fakeChain) CodeAt(_ context.Context, _ common.Address, _ *big.Int) ([]byte, error) {
	if f.noCode {
		return nil, nil
	}
	return []byte{0x60, 0x80}, nil
}

func (f *fakeChain) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.callers = append(f.callers, call.From)
	if f.noCode {
		return nil, nil
	}

	method, err := f.abi.MethodById(call.Data[:4])
	if err != nil {
		return nil, err
	}

	switch method.Name {
	case game.MethodCheckIfUserHasNFT:
		return method.Outputs.Pack(f.character)
	case game.MethodGetAllDefaultCharacters:
		return method.Outputs.Pack(f.defaults)
	case game.MethodGetBigBoss:
		return method.Outputs.Pack(f.boss)
	}
	return nil, errors.Internalf("unexpected method %s", method.Name)
}

func (f *fakeChain) SendTransaction(context.Context, common.Address, []byte) (common.Hash, error) {
	return common.Hash{}, errors.Internal("fakeChain does not send transactions")
}

func (f *fakeChain) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return nil, ethereum.NotFound
}

func attrs(index int64, name string, hp, maxHP, dmg int64) game.CharacterAttributes {
	return game.CharacterAttributes{
		CharacterIndex: big.NewInt(index),
		Name:           name,
		ImageURI:       "https://i.imgur.com/" + strings.ToLower(name) + ".png",
		Hp:             big.NewInt(hp),
		MaxHp:          big.NewInt(maxHP),
		AttackDamage:   big.NewInt(dmg),
	}
}

type ClientTestSuite struct {
	suite.Suite
	chain   *fakeChain
	factory game.Factory
	clock   *clock.Fixed
	ctx     context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	parsed, err := abi.JSON(strings.NewReader(game.ContractABI))
	s.Require().NoError(err)

	s.chain = &fakeChain{abi: parsed}
	s.clock = clock.NewFixed(time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	s.factory, err = game.NewFactory(&game.Config{
		ContractAddress:     game.DefaultContractAddress,
		Clock:               s.clock,
		ReceiptPollInterval: time.Second,
	})
	s.Require().NoError(err)
}

func (s *ClientTestSuite) connect() game.Client {
	client, err := s.factory.Connect(s.chain)
	s.Require().NoError(err)
	return client
}

func (s *ClientTestSuite) TestCheckIfUserHasNFT_Found() {
	s.chain.character = attrs(1, "Orc", 200, 300, 50)

	record, err := s.connect().CheckIfUserHasNFT(s.ctx)

	s.Require().NoError(err)
	s.Equal(&entities.CharacterRecord{
		Index:        1,
		Name:         "Orc",
		ImageURI:     "https://i.imgur.com/orc.png",
		HP:           200,
		MaxHP:        300,
		AttackDamage: 50,
	}, record)
	s.True(record.Present())
	s.Equal([]common.Address{player}, s.chain.callers, "calls are sent from the signer")
}

func (s *ClientTestSuite) TestCheckIfUserHasNFT_ZeroValuedRecord() {
	s.chain.character = attrs(0, "", 0, 0, 0)

	record, err := s.connect().CheckIfUserHasNFT(s.ctx)

	s.Require().NoError(err)
	s.False(record.Present())
}

func (s *ClientTestSuite) TestGetAllDefaultCharacters() {
	s.chain.defaults = []game.CharacterAttributes{
		attrs(0, "Orc", 300, 300, 25),
		attrs(1, "Elf", 200, 200, 50),
		attrs(2, "Wizard", 100, 100, 100),
	}

	records, err := s.connect().GetAllDefaultCharacters(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal("Elf", records[1].Name)
	s.Equal(uint64(2), records[2].Index)
	s.Equal(uint64(100), records[2].AttackDamage)
}

func (s *ClientTestSuite) TestGetBigBoss() {
	s.chain.boss = game.BigBoss{
		Name:         "Elon Musk",
		ImageURI:     "https://i.imgur.com/boss.png",
		Hp:           big.NewInt(10000),
		MaxHp:        big.NewInt(10000),
		AttackDamage: big.NewInt(50),
	}

	boss, err := s.connect().GetBigBoss(s.ctx)

	s.Require().NoError(err)
	s.Equal("Elon Musk", boss.Name)
	s.Equal(uint64(10000), boss.MaxHP)
	s.True(boss.Alive())
}

func (s *ClientTestSuite) TestCall_NoContractDeployed() {
	s.chain.noCode = true

	_, err := s.connect().CheckIfUserHasNFT(s.ctx)

	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ClientTestSuite) TestConnect_NilSigner() {
	_, err := s.factory.Connect(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestMintCharacterNFT_WaitsForReceipt() {
	ctrl := gomock.NewController(s.T())
	signer := walletmock.NewMockSigner(ctrl)

	parsed, err := abi.JSON(strings.NewReader(game.ContractABI))
	s.Require().NoError(err)
	wantData, err := parsed.Pack(game.MethodMintCharacterNFT, big.NewInt(2))
	s.Require().NoError(err)

	hash := common.HexToHash("0xbeef")
	contractAddr := common.HexToAddress(game.DefaultContractAddress)

	signer.EXPECT().Address().Return(player).AnyTimes()
	signer.EXPECT().
		SendTransaction(s.ctx, contractAddr, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ common.Address, data []byte) (common.Hash, error) {
			s.True(bytes.Equal(wantData, data))
			return hash, nil
		})
	gomock.InOrder(
		signer.EXPECT().TransactionReceipt(s.ctx, hash).Return(nil, ethereum.NotFound),
		signer.EXPECT().TransactionReceipt(s.ctx, hash).Return(nil, ethereum.NotFound),
		signer.EXPECT().TransactionReceipt(s.ctx, hash).Return(&types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			BlockNumber: big.NewInt(7),
		}, nil),
	)

	client, err := s.factory.Connect(signer)
	s.Require().NoError(err)

	start := s.clock.Now()
	receipt, err := client.MintCharacterNFT(s.ctx, 2)

	s.Require().NoError(err)
	s.Equal(big.NewInt(7), receipt.BlockNumber)
	s.Equal(start.Add(2*time.Second), s.clock.Now(), "polled twice at the configured interval")
}

func (s *ClientTestSuite) TestAttackBoss_Reverted() {
	ctrl := gomock.NewController(s.T())
	signer := walletmock.NewMockSigner(ctrl)
	hash := common.HexToHash("0xdead")

	signer.EXPECT().Address().Return(player).AnyTimes()
	signer.EXPECT().SendTransaction(s.ctx, gomock.Any(), gomock.Any()).Return(hash, nil)
	signer.EXPECT().TransactionReceipt(s.ctx, hash).Return(&types.Receipt{
		Status: types.ReceiptStatusFailed,
	}, nil)

	client, err := s.factory.Connect(signer)
	s.Require().NoError(err)

	_, err = client.AttackBoss(s.ctx)

	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(hash.Hex(), errors.GetMeta(err)["tx"])
}

func (s *ClientTestSuite) TestAttackBoss_WalletRejects() {
	ctrl := gomock.NewController(s.T())
	signer := walletmock.NewMockSigner(ctrl)

	signer.EXPECT().Address().Return(player).AnyTimes()
	signer.EXPECT().
		SendTransaction(s.ctx, gomock.Any(), gomock.Any()).
		Return(common.Hash{}, errors.PermissionDenied("User rejected the request."))

	client, err := s.factory.Connect(signer)
	s.Require().NoError(err)

	_, err = client.AttackBoss(s.ctx)

	s.True(errors.IsPermissionDenied(err))
}

func TestNewFactory_InvalidConfig(t *testing.T) {
	_, err := game.NewFactory(&game.Config{ContractAddress: "nope"})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
