// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nearby/internal/domain/repository"
	"nearby/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewProfileRepository creates a profile repository bound to the transaction.
func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

// NewGeoIndexRepository creates a geo index repository bound to the transaction.
func (f *gormRepositoryFactory) NewGeoIndexRepository() repository.GeoIndexRepository {
	return NewGeoIndexRepository(f.tx)
}

// NewVenueRepository creates a venue repository bound to the transaction.
func (f *gormRepositoryFactory) NewVenueRepository() repository.VenueRepository {
	return NewVenueRepository(f.tx)
}

// NewLikeRepository creates a like repository bound to the transaction.
func (f *gormRepositoryFactory) NewLikeRepository() repository.LikeRepository {
	return NewLikeRepository(f.tx)
}

// NewMembershipRepository creates a membership repository bound to the transaction.
func (f *gormRepositoryFactory) NewMembershipRepository() repository.MembershipRepository {
	return NewMembershipRepository(f.tx)
}

// NewBoostRepository creates a boost repository bound to the transaction.
// Its ReplaceIfHigher nests as a savepoint inside the outer transaction.
func (f *gormRepositoryFactory) NewBoostRepository() repository.BoostRepository {
	return NewBoostRepository(f.tx)
}

// NewFeatureUsageRepository creates a feature usage repository bound to the transaction.
func (f *gormRepositoryFactory) NewFeatureUsageRepository() repository.FeatureUsageRepository {
	return NewFeatureUsageRepository(f.tx)
}

// NewPointRepository creates a point repository bound to the transaction.
func (f *gormRepositoryFactory) NewPointRepository() repository.PointRepository {
	return NewPointRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the business error as the cause; the rollback failure is context.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
