package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/domain"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/redis"
	"github.com/leondigitalsolution-byte/wira-rentcar-sub001/internal/repository"
)

// FleetService owns the master data: cars, partners, customers, drivers and
// the transaction ledger.
type FleetService struct {
	carRepo         repository.CarRepository
	partnerRepo     repository.PartnerRepository
	customerRepo    repository.CustomerRepository
	driverRepo      repository.DriverRepository
	transactionRepo repository.TransactionRepository
	cacheStore      redis.CacheStoreInterface
}

// NewFleetService creates a new FleetService. cacheStore may be nil.
func NewFleetService(
	carRepo repository.CarRepository,
	partnerRepo repository.PartnerRepository,
	customerRepo repository.CustomerRepository,
	driverRepo repository.DriverRepository,
	transactionRepo repository.TransactionRepository,
	cacheStore redis.CacheStoreInterface,
) *FleetService {
	return &FleetService{
		carRepo:         carRepo,
		partnerRepo:     partnerRepo,
		customerRepo:    customerRepo,
		driverRepo:      driverRepo,
		transactionRepo: transactionRepo,
		cacheStore:      cacheStore,
	}
}

// CreateCarRequest contains the parameters for registering a car.
type CreateCarRequest struct {
	Plate          string
	Name           string
	Category       string
	DailyRate      domain.Money
	OwnerPartnerID string // Optional: empty means company-owned
}

// CreateCar registers a car in the fleet. A partner-owned car requires the
// partner to exist.
func (s *FleetService) CreateCar(ctx context.Context, req CreateCarRequest) (*domain.Car, error) {
	if req.Plate == "" || req.Name == "" {
		return nil, ErrInvalidCarID
	}
	if req.DailyRate <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.OwnerPartnerID != "" {
		if _, err := s.partnerRepo.GetByID(ctx, req.OwnerPartnerID); err != nil {
			return nil, err
		}
	}

	car := &domain.Car{
		ID:             uuid.New().String(),
		Plate:          req.Plate,
		Name:           req.Name,
		Category:       req.Category,
		DailyRate:      req.DailyRate,
		OwnerPartnerID: req.OwnerPartnerID,
		CreatedAt:      time.Now(),
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	log.Info().Str("car_id", car.ID).Str("plate", car.Plate).Msg("car registered")
	return car, nil
}

// GetCar retrieves a car by ID, trying the cache first and falling back to
// the repository on a miss.
func (s *FleetService) GetCar(ctx context.Context, carID string) (*domain.Car, error) {
	if carID == "" {
		return nil, ErrInvalidCarID
	}
	if s.cacheStore != nil {
		cached, err := s.cacheStore.GetCar(ctx, carID)
		if err != nil {
			log.Warn().Err(err).Str("car_id", carID).Msg("car cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if s.cacheStore != nil {
		if err := s.cacheStore.SetCar(ctx, car); err != nil {
			log.Warn().Err(err).Str("car_id", car.ID).Msg("failed to cache car")
		}
	}
	return car, nil
}

// GetAllCars retrieves all cars.
func (s *FleetService) GetAllCars(ctx context.Context) ([]*domain.Car, error) {
	return s.carRepo.GetAll(ctx)
}

// CreatePartner registers an investor partner. SplitPercentage must be in
// [0, 100].
func (s *FleetService) CreatePartner(ctx context.Context, name, phone string, splitPercentage int64) (*domain.Partner, error) {
	if name == "" {
		return nil, ErrInvalidPartnerID
	}
	if splitPercentage < 0 || splitPercentage > 100 {
		return nil, ErrInvalidSplitPercentage
	}

	partner := &domain.Partner{
		ID:              uuid.New().String(),
		Name:            name,
		Phone:           phone,
		SplitPercentage: splitPercentage,
		CreatedAt:       time.Now(),
	}
	if err := s.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// GetPartner retrieves a partner by ID.
func (s *FleetService) GetPartner(ctx context.Context, partnerID string) (*domain.Partner, error) {
	if partnerID == "" {
		return nil, ErrInvalidPartnerID
	}
	return s.partnerRepo.GetByID(ctx, partnerID)
}

// GetAllPartners retrieves all partners.
func (s *FleetService) GetAllPartners(ctx context.Context) ([]*domain.Partner, error) {
	return s.partnerRepo.GetAll(ctx)
}

// CreateCustomer registers a customer.
func (s *FleetService) CreateCustomer(ctx context.Context, name, phone, address string) (*domain.Customer, error) {
	if name == "" {
		return nil, ErrInvalidCustomerID
	}
	customer := &domain.Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		CreatedAt: time.Now(),
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetAllCustomers retrieves all customers.
func (s *FleetService) GetAllCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.customerRepo.GetAll(ctx)
}

// CreateDriver registers a chauffeur.
func (s *FleetService) CreateDriver(ctx context.Context, name, phone string, dailyFee domain.Money) (*domain.Driver, error) {
	if name == "" {
		return nil, ErrInvalidCustomerID
	}
	if dailyFee < 0 {
		return nil, ErrInvalidAmount
	}
	driver := &domain.Driver{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     phone,
		DailyFee:  dailyFee,
		CreatedAt: time.Now(),
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// GetAllDrivers retrieves all drivers.
func (s *FleetService) GetAllDrivers(ctx context.Context) ([]*domain.Driver, error) {
	return s.driverRepo.GetAll(ctx)
}

// RecordTransactionRequest contains the parameters for a ledger entry.
type RecordTransactionRequest struct {
	Date      time.Time
	Amount    domain.Money
	Kind      domain.TransactionKind
	Category  domain.TransactionCategory
	Status    domain.TransactionStatus
	RelatedID string
	Note      string
}

// RecordTransaction appends a ledger entry. Investor deposits must name the
// partner they were paid to.
func (s *FleetService) RecordTransaction(ctx context.Context, req RecordTransactionRequest) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Category == domain.TransactionCategoryInvestorDeposit {
		if req.RelatedID == "" {
			return nil, ErrInvalidPartnerID
		}
		if _, err := s.partnerRepo.GetByID(ctx, req.RelatedID); err != nil {
			return nil, err
		}
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	status := req.Status
	if status == "" {
		status = domain.TransactionStatusPaid
	}

	tx := &domain.Transaction{
		ID:        uuid.New().String(),
		Date:      date,
		Amount:    req.Amount,
		Kind:      req.Kind,
		Category:  req.Category,
		Status:    status,
		RelatedID: req.RelatedID,
		Note:      req.Note,
		CreatedAt: time.Now(),
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	log.Info().
		Str("transaction_id", tx.ID).
		Str("category", string(tx.Category)).
		Int64("amount", int64(tx.Amount)).
		Msg("transaction recorded")
	return tx, nil
}

// GetAllTransactions retrieves all transactions.
func (s *FleetService) GetAllTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAll(ctx)
}
