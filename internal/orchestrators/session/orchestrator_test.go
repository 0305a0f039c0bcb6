package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet"
	walletmock "github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet/mock"
	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
	"github.com/KirkDiggler/metaverse-slayer/internal/orchestrators/session"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/clock"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/idgen"
	"github.com/KirkDiggler/metaverse-slayer/internal/testutils"
	"github.com/KirkDiggler/metaverse-slayer/internal/testutils/builders"
	"github.com/KirkDiggler/metaverse-slayer/internal/testutils/mocks"
	"github.com/KirkDiggler/metaverse-slayer/internal/view"
)

const (
	testAccount  = string(testutils.TestAccount)
	otherAccount = string(testutils.OtherAccount)
)

// accounts answers a provider Request by filling the []string result
func accounts(addrs ...string) func(context.Context, any, string, ...any) error {
	return func(_ context.Context, result any, _ string, _ ...any) error {
		*result.(*[]string) = addrs
		return nil
	}
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	contract     *mocks.Contract
	mockProvider *walletmock.MockProvider
	bus          events.EventBus
	clock        *clock.Fixed
	orchestrator session.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.contract = mocks.NewContract(s.ctrl)
	s.mockProvider = s.contract.Provider
	s.bus = events.NewBus()
	s.clock = clock.NewFixed(time.Date(2021, 9, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	s.orchestrator = s.newOrchestrator(s.mockProvider)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(provider wallet.Provider) session.Service {
	orch, err := session.NewOrchestrator(&session.Config{
		Provider:        provider,
		ContractFactory: s.contract.Factory,
		EventBus:        s.bus,
		Clock:           s.clock,
		IDGenerator:     idgen.NewSequential("session"),
	})
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = orch.Close() })
	return orch
}

// expectFetch wires one contract read for account returning record
func (s *OrchestratorTestSuite) expectFetch(account string, record *entities.CharacterRecord, err error) {
	s.contract.ExpectCharacterRead(entities.Account(account), record, err)
}

func orc() *entities.CharacterRecord {
	return testutils.Orc()
}

func (s *OrchestratorTestSuite) TestNewSession_StartsLoading() {
	current := s.orchestrator.Session()

	s.Equal(testutils.TestSessionID, current.ID)
	s.True(current.Loading)
	s.Equal(view.StateLoading, view.Select(current))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := session.NewOrchestrator(&session.Config{})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "ContractFactory")
	s.Contains(err.Error(), "EventBus")
}

func (s *OrchestratorTestSuite) TestCheckExistingSession_NoProvider() {
	orch := s.newOrchestrator(nil)

	current := orch.CheckExistingSession(s.ctx)

	s.False(current.Loading)
	s.True(current.Account.Empty())
	s.Empty(current.Notice, "passive checks never raise a notice")
	s.Equal(view.StateDisconnected, view.Select(current))
}

func (s *OrchestratorTestSuite) TestCheckExistingSession_NoAuthorizedAccounts() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		DoAndReturn(accounts())

	current := s.orchestrator.CheckExistingSession(s.ctx)

	s.False(current.Loading)
	s.True(current.Account.Empty())
	s.Equal(view.StateDisconnected, view.Select(current))
}

func (s *OrchestratorTestSuite) TestCheckExistingSession_ProviderError() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		Return(errors.Unavailable("connection refused"))

	current := s.orchestrator.CheckExistingSession(s.ctx)

	s.False(current.Loading)
	s.True(current.Account.Empty())
	s.Equal(view.StateDisconnected, view.Select(current))
}

func (s *OrchestratorTestSuite) TestCheckExistingSession_AuthorizedAccountWithCharacter() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		DoAndReturn(accounts(testAccount, otherAccount))
	s.expectFetch(testAccount, orc(), nil)

	current := s.orchestrator.CheckExistingSession(s.ctx)

	s.Equal(entities.Account(testAccount), current.Account, "first account wins")
	s.Equal(s.clock.Now(), current.ConnectedAt)
	s.False(current.Loading)
	s.Require().NotNil(current.Character)
	s.Equal("Orc", current.Character.Name)
	s.Equal(view.StateReady, view.Select(current))
}

func (s *OrchestratorTestSuite) TestCheckExistingSession_FirstEntryTakenAsReturned() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		DoAndReturn(accounts("0xABC"))
	s.expectFetch("0xABC", orc(), nil)

	current := s.orchestrator.CheckExistingSession(s.ctx)

	s.Equal(entities.Account("0xABC"), current.Account)
	s.False(current.Loading)
	s.Require().NotNil(current.Character)
	s.Equal("Orc", current.Character.Name)
	s.Equal(view.StateReady, view.Select(current))
}

func (s *OrchestratorTestSuite) TestRequestNewSession_MalformedFirstEntryIsNotSkipped() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodRequestAccounts).
		DoAndReturn(accounts("not-an-address", testAccount))
	s.mockProvider.EXPECT().
		Signer(entities.Account("not-an-address")).
		Return(nil, errors.InvalidArgument("invalid account address"))

	current := s.orchestrator.RequestNewSession(s.ctx)

	s.Equal(entities.Account("not-an-address"), current.Account, "later accounts never move up")
	s.False(current.Loading)
	s.Nil(current.Character)
	s.Contains(current.LastError, "invalid account address")
	s.Equal(view.StateNeedsCharacter, view.Select(current))
}

func (s *OrchestratorTestSuite) TestCheckExistingSession_EmptyNameMeansNoCharacter() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		DoAndReturn(accounts(testAccount))
	s.expectFetch(testAccount, builders.NewCharacterBuilder().Empty().Build(), nil)

	current := s.orchestrator.CheckExistingSession(s.ctx)

	s.Nil(current.Character)
	s.Empty(current.LastError)
	s.Equal(view.StateNeedsCharacter, view.Select(current))
}

func (s *OrchestratorTestSuite) TestCheckExistingSession_SameAccountDoesNotRefetch() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		DoAndReturn(accounts(testAccount)).
		Times(2)
	s.expectFetch(testAccount, orc(), nil)

	s.orchestrator.CheckExistingSession(s.ctx)
	current := s.orchestrator.CheckExistingSession(s.ctx)

	s.Equal(view.StateReady, view.Select(current))
}

func (s *OrchestratorTestSuite) TestCheckExistingSession_ContractReadFails() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		DoAndReturn(accounts(testAccount))
	s.expectFetch(testAccount, nil, errors.Unavailable("node unreachable"))

	current := s.orchestrator.CheckExistingSession(s.ctx)

	s.False(current.Loading)
	s.Nil(current.Character)
	s.Contains(current.LastError, "node unreachable")
	s.Equal(view.StateNeedsCharacter, view.Select(current))
}

func (s *OrchestratorTestSuite) TestRequestNewSession_NoProvider() {
	orch := s.newOrchestrator(nil)

	current := orch.RequestNewSession(s.ctx)

	s.Equal(session.NoticeNoWallet, current.Notice)
	s.True(current.Account.Empty())

	current = orch.DismissNotice()
	s.Empty(current.Notice)
}

func (s *OrchestratorTestSuite) TestRequestNewSession_Approved() {
	gomock.InOrder(
		s.mockProvider.EXPECT().
			Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
			DoAndReturn(accounts()),
		s.mockProvider.EXPECT().
			Request(s.ctx, gomock.Any(), wallet.MethodRequestAccounts).
			DoAndReturn(accounts(testAccount)),
	)
	s.expectFetch(testAccount, nil, nil)

	current := s.orchestrator.CheckExistingSession(s.ctx)
	s.Equal(view.StateDisconnected, view.Select(current))

	current = s.orchestrator.RequestNewSession(s.ctx)

	s.Equal(entities.Account(testAccount), current.Account)
	s.Equal(view.StateNeedsCharacter, view.Select(current))
}

func (s *OrchestratorTestSuite) TestRequestNewSession_Rejected() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodRequestAccounts).
		Return(errors.PermissionDenied("User rejected the request."))

	current := s.orchestrator.RequestNewSession(s.ctx)

	s.True(current.Account.Empty())
	s.Empty(current.Notice)
	s.Empty(current.LastError, "rejections leave the session untouched")
}

func (s *OrchestratorTestSuite) TestAccountSwitch_RefetchesForNewAccount() {
	gomock.InOrder(
		s.mockProvider.EXPECT().
			Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
			DoAndReturn(accounts(testAccount)),
		s.mockProvider.EXPECT().
			Request(s.ctx, gomock.Any(), wallet.MethodRequestAccounts).
			DoAndReturn(accounts(otherAccount)),
	)
	s.expectFetch(testAccount, orc(), nil)
	s.expectFetch(otherAccount, nil, nil)

	s.orchestrator.CheckExistingSession(s.ctx)
	current := s.orchestrator.RequestNewSession(s.ctx)

	s.Equal(entities.Account(otherAccount), current.Account)
	s.Nil(current.Character, "the previous account's character is dropped")
}

func (s *OrchestratorTestSuite) TestAccountConnectedEventPublished() {
	var published []string
	s.bus.SubscribeFunc(session.EventAccountConnected, 10, func(_ context.Context, e events.Event) error {
		published = append(published, e.Source().GetID())
		return nil
	})

	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		DoAndReturn(accounts(testAccount)).
		Times(2)
	s.expectFetch(testAccount, orc(), nil)

	s.orchestrator.CheckExistingSession(s.ctx)
	s.orchestrator.CheckExistingSession(s.ctx)

	s.Equal([]string{testAccount}, published)
}

func (s *OrchestratorTestSuite) TestFetchCharacter_StaleAccount() {
	s.expectFetch(otherAccount, orc(), nil)

	output, err := s.orchestrator.FetchCharacter(s.ctx, &session.FetchCharacterInput{
		Account: entities.Account(otherAccount),
	})

	s.Require().NoError(err)
	s.True(output.Stale)
	s.Nil(output.Session.Character)
	s.True(output.Session.Loading, "stale results do not touch the session")
}

func (s *OrchestratorTestSuite) TestFetchCharacter_InvalidInput() {
	_, err := s.orchestrator.FetchCharacter(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.FetchCharacter(s.ctx, &session.FetchCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSetCharacter() {
	s.mockProvider.EXPECT().
		Request(s.ctx, gomock.Any(), wallet.MethodAccounts).
		DoAndReturn(accounts(testAccount))
	s.expectFetch(testAccount, nil, nil)

	s.orchestrator.CheckExistingSession(s.ctx)

	hurt := builders.From(orc()).WithHP(120).Build()
	current := s.orchestrator.SetCharacter(hurt)

	s.Require().NotNil(current.Character)
	s.Equal(uint64(120), current.Character.HP)
	s.Equal(view.StateReady, view.Select(current))

	hurt.HP = 1
	s.Equal(uint64(120), s.orchestrator.Session().Character.HP, "session keeps its own copy")
}

func (s *OrchestratorTestSuite) TestSetCharacter_WithoutAccountIsIgnored() {
	current := s.orchestrator.SetCharacter(orc())

	s.Nil(current.Character)
}
