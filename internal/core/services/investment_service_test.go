package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/propstake/propstake_backend/internal/apperrors"
	"github.com/propstake/propstake_backend/internal/core/domain"
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
	portssvc "github.com/propstake/propstake_backend/internal/core/ports/services"
	"github.com/propstake/propstake_backend/internal/core/services"
	"github.com/propstake/propstake_backend/internal/dto"
)

// MockPropertyRepository is a mock type for the PropertyRepositoryFacade interface
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindPropertiesByIDs(ctx context.Context, propertyIDs []string) (map[string]domain.Property, error) {
	args := m.Called(ctx, propertyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindPropertyByIDForUpdate(ctx context.Context, tx pgx.Tx, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, tx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) IncrementFundingRaised(ctx context.Context, tx pgx.Tx, propertyID string, amount decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, propertyID, amount, now)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByIDForUpdate(ctx context.Context, tx pgx.Tx, userID string) (*domain.User, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) AdjustWalletBalance(ctx context.Context, tx pgx.Tx, userID string, delta decimal.Decimal, now time.Time) error {
	args := m.Called(ctx, tx, userID, delta, now)
	return args.Error(0)
}

// MockInvestmentRepository is a mock type for the InvestmentRepositoryWithTx interface
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockInvestmentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvestmentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error {
	args := m.Called(ctx, tx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) FindInvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentsByProperty(ctx context.Context, propertyID string) ([]domain.Investment, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) RecordLedgerEntry(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) {
	m.Called(ctx, tx, entry)
}

func (m *MockLedgerRepository) ListLedgerEntriesByUser(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return entries, token, args.Error(2)
}

// MockAuditRepository is a mock type for the AuditRepositoryFacade interface
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) RecordAction(ctx context.Context, tx pgx.Tx, entry domain.AuditLog) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

// --- Test Suite Setup ---

type InvestmentServiceTestSuite struct {
	suite.Suite
	mockPropertyRepo   *MockPropertyRepository
	mockUserRepo       *MockUserRepository
	mockInvestmentRepo *MockInvestmentRepository
	mockLedgerRepo     *MockLedgerRepository
	mockAuditRepo      *MockAuditRepository
	service            portssvc.InvestmentSvcFacade

	investorID string
	propertyID string
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockPropertyRepo = new(MockPropertyRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockInvestmentRepo = new(MockInvestmentRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.service = services.NewInvestmentService(portsrepo.RepositoryProvider{
		PropertyRepo:   suite.mockPropertyRepo,
		UserRepo:       suite.mockUserRepo,
		InvestmentRepo: suite.mockInvestmentRepo,
		LedgerRepo:     suite.mockLedgerRepo,
		AuditRepo:      suite.mockAuditRepo,
	})
	suite.investorID = uuid.NewString()
	suite.propertyID = uuid.NewString()
}

func (suite *InvestmentServiceTestSuite) testProperty() *domain.Property {
	return &domain.Property{
		PropertyID:    suite.propertyID,
		Title:         "Gulberg Heights",
		City:          "Lahore",
		Status:        domain.PropertyFunding,
		TotalValue:    decimal.NewFromInt(500000),
		FundingTarget: decimal.NewFromInt(200000),
		FundingRaised: decimal.NewFromInt(50000),
		MinInvestment: decimal.NewFromInt(5000),
		MaxInvestment: decimal.NewFromInt(50000),
	}
}

func (suite *InvestmentServiceTestSuite) testUser(balance int64) *domain.User {
	return &domain.User{
		UserID:        suite.investorID,
		Name:          "Test Investor",
		Email:         "investor@example.com",
		WalletBalance: decimal.NewFromInt(balance),
	}
}

func (suite *InvestmentServiceTestSuite) investRequest(amount int64) dto.NewInvestment {
	return dto.NewInvestment{
		InvestorID: suite.investorID,
		PropertyID: suite.propertyID,
		Amount:     decimal.NewFromInt(amount),
		IPAddress:  "203.0.113.7",
	}
}

// expectBegin wires the transaction lifecycle that every invest attempt that
// reaches the store shares: one Begin and the deferred Rollback.
func (suite *InvestmentServiceTestSuite) expectBegin(ctx context.Context) {
	suite.mockInvestmentRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockInvestmentRepo.On("Rollback", ctx, mock.Anything).Return(nil)
}

// --- Invest ---

func (suite *InvestmentServiceTestSuite) TestInvest_Success() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	var callOrder []string
	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Run(func(mock.Arguments) { callOrder = append(callOrder, "lockProperty") }).
		Return(suite.testProperty(), nil).Once()
	suite.mockUserRepo.On("FindUserByIDForUpdate", ctx, mock.Anything, suite.investorID).
		Run(func(mock.Arguments) { callOrder = append(callOrder, "lockUser") }).
		Return(suite.testUser(50000), nil).Once()
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.Anything, mock.AnythingOfType("domain.Investment")).
		Run(func(mock.Arguments) { callOrder = append(callOrder, "saveInvestment") }).
		Return(nil).Once()
	suite.mockPropertyRepo.On("IncrementFundingRaised", ctx, mock.Anything, suite.propertyID, req.Amount, mock.AnythingOfType("time.Time")).
		Run(func(mock.Arguments) { callOrder = append(callOrder, "incrementFunding") }).
		Return(nil).Once()
	suite.mockUserRepo.On("AdjustWalletBalance", ctx, mock.Anything, suite.investorID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(-8000))
	}), mock.AnythingOfType("time.Time")).
		Run(func(mock.Arguments) { callOrder = append(callOrder, "debitWallet") }).
		Return(nil).Once()
	suite.mockLedgerRepo.On("RecordLedgerEntry", ctx, mock.Anything, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.UserID == suite.investorID &&
			e.Type == domain.Debit &&
			e.Amount.Equal(decimal.NewFromInt(8000)) &&
			e.BalanceAfter.Equal(decimal.NewFromInt(42000)) &&
			e.Description == fmt.Sprintf("Investment in Property #%s", suite.propertyID)
	})).
		Run(func(mock.Arguments) { callOrder = append(callOrder, "ledger") }).
		Once()
	suite.mockAuditRepo.On("RecordAction", ctx, mock.Anything, mock.MatchedBy(func(a domain.AuditLog) bool {
		return a.UserID == suite.investorID &&
			a.Action == domain.ActionInvestment &&
			a.EntityType == "investment" &&
			a.IPAddress == "203.0.113.7" &&
			len(a.NewValues) > 0
	})).
		Run(func(mock.Arguments) { callOrder = append(callOrder, "audit") }).
		Return(nil).Once()
	suite.mockInvestmentRepo.On("Commit", ctx, mock.Anything).
		Run(func(mock.Arguments) { callOrder = append(callOrder, "commit") }).
		Return(nil).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(investment)
	suite.NotEmpty(investment.InvestmentID)
	suite.Equal(suite.investorID, investment.UserID)
	suite.Equal(suite.propertyID, investment.PropertyID)
	suite.True(investment.AmountInvested.Equal(decimal.NewFromInt(8000)))
	// 8000 / 500000 * 100 = 1.6 shares; 8000 / 200000 * 100 = 4% of the round.
	suite.Equal("1.6", investment.SharesOwned.String())
	suite.Equal("4", investment.OwnershipPercentage.String())
	suite.True(investment.ReturnsEarned.IsZero())
	suite.WithinDuration(time.Now(), investment.CreatedAt, time.Second)

	suite.Equal([]string{
		"lockProperty", "lockUser",
		"saveInvestment", "incrementFunding", "debitWallet",
		"ledger", "audit", "commit",
	}, callOrder)

	suite.mockPropertyRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestInvest_NonPositiveAmount() {
	ctx := context.Background()
	req := suite.investRequest(0)

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(investment)
	// No transaction is even opened.
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestInvest_PropertyNotFound() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(nil, apperrors.ErrNotFound).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPropertyNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(investment)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockInvestmentRepo.AssertCalled(suite.T(), "Rollback", ctx, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestInvest_AmountBelowMinimum() {
	ctx := context.Background()
	req := suite.investRequest(4999)

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(suite.testProperty(), nil).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.EqualError(err, "Investment must be between PKR 5000 and PKR 50000")
	suite.Nil(investment)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByIDForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestInvest_AmountAboveMaximum() {
	ctx := context.Background()
	req := suite.investRequest(50001)

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(suite.testProperty(), nil).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Nil(investment)
}

func (suite *InvestmentServiceTestSuite) TestInvest_AlreadyFullyFunded() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	property := suite.testProperty()
	property.FundingRaised = property.FundingTarget

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(property, nil).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyFunded)
	suite.Nil(investment)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "SaveInvestment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestInvest_ExceedsRemainingHeadroom() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	property := suite.testProperty()
	property.FundingRaised = decimal.NewFromInt(195000) // headroom 5000 < 8000

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(property, nil).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExceedsFundingTarget)
	suite.Nil(investment)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByIDForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestInvest_ExactHeadroomFillAccepted() {
	ctx := context.Background()
	req := suite.investRequest(5000)

	property := suite.testProperty()
	property.FundingRaised = decimal.NewFromInt(195000) // headroom exactly 5000

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(property, nil).Once()
	suite.mockUserRepo.On("FindUserByIDForUpdate", ctx, mock.Anything, suite.investorID).
		Return(suite.testUser(50000), nil).Once()
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.Anything, mock.AnythingOfType("domain.Investment")).Return(nil).Once()
	suite.mockPropertyRepo.On("IncrementFundingRaised", ctx, mock.Anything, suite.propertyID, req.Amount, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockUserRepo.On("AdjustWalletBalance", ctx, mock.Anything, suite.investorID, mock.Anything, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedgerRepo.On("RecordLedgerEntry", ctx, mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).Once()
	suite.mockAuditRepo.On("RecordAction", ctx, mock.Anything, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()
	suite.mockInvestmentRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(investment)
	suite.mockInvestmentRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestInvest_UserNotFound() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(suite.testProperty(), nil).Once()
	suite.mockUserRepo.On("FindUserByIDForUpdate", ctx, mock.Anything, suite.investorID).
		Return(nil, apperrors.ErrNotFound).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrUserNotFound)
	suite.Nil(investment)
}

func (suite *InvestmentServiceTestSuite) TestInvest_InsufficientBalance() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(suite.testProperty(), nil).Once()
	suite.mockUserRepo.On("FindUserByIDForUpdate", ctx, mock.Anything, suite.investorID).
		Return(suite.testUser(7999), nil).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Nil(investment)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "SaveInvestment", mock.Anything, mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "AdjustWalletBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestInvest_AuditFailureRollsBack() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(suite.testProperty(), nil).Once()
	suite.mockUserRepo.On("FindUserByIDForUpdate", ctx, mock.Anything, suite.investorID).
		Return(suite.testUser(50000), nil).Once()
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.Anything, mock.AnythingOfType("domain.Investment")).Return(nil).Once()
	suite.mockPropertyRepo.On("IncrementFundingRaised", ctx, mock.Anything, suite.propertyID, req.Amount, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockUserRepo.On("AdjustWalletBalance", ctx, mock.Anything, suite.investorID, mock.Anything, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedgerRepo.On("RecordLedgerEntry", ctx, mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).Once()
	suite.mockAuditRepo.On("RecordAction", ctx, mock.Anything, mock.AnythingOfType("domain.AuditLog")).
		Return(errors.New("audit_logs is unavailable")).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.Nil(investment)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockInvestmentRepo.AssertCalled(suite.T(), "Rollback", ctx, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestInvest_CommitFailure() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(suite.testProperty(), nil).Once()
	suite.mockUserRepo.On("FindUserByIDForUpdate", ctx, mock.Anything, suite.investorID).
		Return(suite.testUser(50000), nil).Once()
	suite.mockInvestmentRepo.On("SaveInvestment", ctx, mock.Anything, mock.AnythingOfType("domain.Investment")).Return(nil).Once()
	suite.mockPropertyRepo.On("IncrementFundingRaised", ctx, mock.Anything, suite.propertyID, req.Amount, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockUserRepo.On("AdjustWalletBalance", ctx, mock.Anything, suite.investorID, mock.Anything, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedgerRepo.On("RecordLedgerEntry", ctx, mock.Anything, mock.AnythingOfType("domain.LedgerEntry")).Once()
	suite.mockAuditRepo.On("RecordAction", ctx, mock.Anything, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()
	suite.mockInvestmentRepo.On("Commit", ctx, mock.Anything).Return(errors.New("connection reset")).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInternal)
	suite.Nil(investment)
}

// A second invest attempt that observes the funding counter after an earlier
// commit must be admitted against the updated value, not the stale one. With
// mocks this reduces to: the check runs on whatever the locked read returns.
func (suite *InvestmentServiceTestSuite) TestInvest_SecondCallerSeesUpdatedCounter() {
	ctx := context.Background()
	req := suite.investRequest(8000)

	property := suite.testProperty()
	// First caller already raised funding to 193000; headroom is 7000.
	property.FundingRaised = decimal.NewFromInt(193000)

	suite.expectBegin(ctx)
	suite.mockPropertyRepo.On("FindPropertyByIDForUpdate", ctx, mock.Anything, suite.propertyID).
		Return(property, nil).Once()

	investment, err := suite.service.Invest(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrExceedsFundingTarget)
	suite.Nil(investment)
}

// --- GetInvestorPortfolio ---

func (suite *InvestmentServiceTestSuite) TestGetInvestorPortfolio_Success() {
	ctx := context.Background()
	otherPropertyID := uuid.NewString()

	investments := []domain.Investment{
		{
			InvestmentID:        uuid.NewString(),
			UserID:              suite.investorID,
			PropertyID:          suite.propertyID,
			AmountInvested:      decimal.NewFromInt(8000),
			SharesOwned:         decimal.NewFromFloat(1.6),
			OwnershipPercentage: decimal.NewFromInt(4),
			ReturnsEarned:       decimal.NewFromInt(120),
			CreatedAt:           time.Now(),
		},
		{
			InvestmentID:        uuid.NewString(),
			UserID:              suite.investorID,
			PropertyID:          otherPropertyID,
			AmountInvested:      decimal.NewFromInt(12000),
			SharesOwned:         decimal.NewFromFloat(2.4),
			OwnershipPercentage: decimal.NewFromInt(6),
			ReturnsEarned:       decimal.NewFromInt(80),
			CreatedAt:           time.Now(),
		},
	}
	properties := map[string]domain.Property{
		suite.propertyID: {PropertyID: suite.propertyID, Title: "Gulberg Heights", City: "Lahore", Status: domain.PropertyFunding},
		otherPropertyID:  {PropertyID: otherPropertyID, Title: "Clifton View", City: "Karachi", Status: domain.PropertyFunded},
	}

	suite.mockInvestmentRepo.On("FindInvestmentsByUser", ctx, suite.investorID).Return(investments, nil).Once()
	suite.mockPropertyRepo.On("FindPropertiesByIDs", ctx, mock.MatchedBy(func(ids []string) bool {
		return len(ids) == 2
	})).Return(properties, nil).Once()

	summary, err := suite.service.GetInvestorPortfolio(ctx, suite.investorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(2, summary.InvestmentCount)
	suite.True(summary.TotalInvested.Equal(decimal.NewFromInt(20000)))
	suite.True(summary.TotalReturns.Equal(decimal.NewFromInt(200)))
	suite.True(summary.CurrentValue.Equal(decimal.NewFromInt(20200)))
	suite.Require().Len(summary.Portfolio, 2)
	suite.Equal("Gulberg Heights", summary.Portfolio[0].Property.Title)
	suite.Equal("Karachi", summary.Portfolio[1].Property.City)
	suite.True(summary.Portfolio[0].Shares.Equal(decimal.NewFromFloat(1.6)))
}

func (suite *InvestmentServiceTestSuite) TestGetInvestorPortfolio_Empty() {
	ctx := context.Background()

	suite.mockInvestmentRepo.On("FindInvestmentsByUser", ctx, suite.investorID).
		Return([]domain.Investment{}, nil).Once()
	suite.mockPropertyRepo.On("FindPropertiesByIDs", ctx, mock.Anything).
		Return(map[string]domain.Property{}, nil).Once()

	summary, err := suite.service.GetInvestorPortfolio(ctx, suite.investorID)

	suite.Require().NoError(err)
	suite.Equal(0, summary.InvestmentCount)
	suite.True(summary.TotalInvested.IsZero())
	suite.True(summary.CurrentValue.IsZero())
	suite.Empty(summary.Portfolio)
}

func (suite *InvestmentServiceTestSuite) TestGetInvestorPortfolio_MissingPropertyTolerated() {
	ctx := context.Background()

	investments := []domain.Investment{
		{
			InvestmentID:   uuid.NewString(),
			UserID:         suite.investorID,
			PropertyID:     suite.propertyID,
			AmountInvested: decimal.NewFromInt(8000),
			ReturnsEarned:  decimal.Zero,
			CreatedAt:      time.Now(),
		},
	}

	suite.mockInvestmentRepo.On("FindInvestmentsByUser", ctx, suite.investorID).Return(investments, nil).Once()
	suite.mockPropertyRepo.On("FindPropertiesByIDs", ctx, mock.Anything).
		Return(map[string]domain.Property{}, nil).Once()

	summary, err := suite.service.GetInvestorPortfolio(ctx, suite.investorID)

	suite.Require().NoError(err)
	suite.Require().Len(summary.Portfolio, 1)
	suite.Empty(summary.Portfolio[0].Property.Title)
	suite.True(summary.TotalInvested.Equal(decimal.NewFromInt(8000)))
}

// --- GetPropertyFunding ---

func (suite *InvestmentServiceTestSuite) TestGetPropertyFunding_Success() {
	ctx := context.Background()

	property := suite.testProperty()
	investments := []domain.Investment{
		{InvestmentID: uuid.NewString(), PropertyID: suite.propertyID, AmountInvested: decimal.NewFromInt(80000)},
		{InvestmentID: uuid.NewString(), PropertyID: suite.propertyID, AmountInvested: decimal.NewFromInt(30000)},
	}

	suite.mockPropertyRepo.On("FindPropertyByID", ctx, suite.propertyID).Return(property, nil).Once()
	suite.mockInvestmentRepo.On("FindInvestmentsByProperty", ctx, suite.propertyID).Return(investments, nil).Once()

	summary, err := suite.service.GetPropertyFunding(ctx, suite.propertyID)

	suite.Require().NoError(err)
	suite.Equal(suite.propertyID, summary.PropertyID)
	suite.Equal(2, summary.InvestorCount)
	suite.True(summary.TotalRaised.Equal(decimal.NewFromInt(110000)))
	suite.True(summary.FundingTarget.Equal(decimal.NewFromInt(200000)))
	// 110000 / 200000 * 100 = 55%
	suite.Equal("55", summary.FundingPercentage.String())
	suite.Len(summary.Investments, 2)
}

func (suite *InvestmentServiceTestSuite) TestGetPropertyFunding_NotFound() {
	ctx := context.Background()

	suite.mockPropertyRepo.On("FindPropertyByID", ctx, suite.propertyID).
		Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.GetPropertyFunding(ctx, suite.propertyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPropertyNotFound)
	suite.Nil(summary)
	suite.mockInvestmentRepo.AssertNotCalled(suite.T(), "FindInvestmentsByProperty", mock.Anything, mock.Anything)
}

// --- ListLedgerEntries ---

func (suite *InvestmentServiceTestSuite) TestListLedgerEntries_DefaultsLimit() {
	ctx := context.Background()

	entries := []domain.LedgerEntry{
		{LedgerEntryID: uuid.NewString(), UserID: suite.investorID, Amount: decimal.NewFromInt(8000), Type: domain.Debit},
	}
	token := "next-page"

	suite.mockLedgerRepo.On("ListLedgerEntriesByUser", ctx, suite.investorID, 20, (*string)(nil)).
		Return(entries, &token, nil).Once()

	resp, err := suite.service.ListLedgerEntries(ctx, suite.investorID, dto.ListLedgerParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("debit", resp.Entries[0].Type)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("next-page", *resp.NextToken)
}

func (suite *InvestmentServiceTestSuite) TestListLedgerEntries_RepoError() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("ListLedgerEntriesByUser", ctx, suite.investorID, 10, (*string)(nil)).
		Return(nil, nil, errors.New("query timeout")).Once()

	resp, err := suite.service.ListLedgerEntries(ctx, suite.investorID, dto.ListLedgerParams{Limit: 10})

	suite.Require().Error(err)
	suite.Nil(resp)
}

// --- Run Suite ---

func TestInvestmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
