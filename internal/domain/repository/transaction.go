package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewProfileRepository returns a ProfileRepository bound to the current transaction.
	NewProfileRepository() ProfileRepository

	// NewGeoIndexRepository returns a GeoIndexRepository bound to the current transaction.
	NewGeoIndexRepository() GeoIndexRepository

	// NewVenueRepository returns a VenueRepository bound to the current transaction.
	NewVenueRepository() VenueRepository

	// NewLikeRepository returns a LikeRepository bound to the current transaction.
	NewLikeRepository() LikeRepository

	// NewMembershipRepository returns a MembershipRepository bound to the current transaction.
	NewMembershipRepository() MembershipRepository

	// NewBoostRepository returns a BoostRepository bound to the current transaction.
	NewBoostRepository() BoostRepository

	// NewFeatureUsageRepository returns a FeatureUsageRepository bound to the current transaction.
	NewFeatureUsageRepository() FeatureUsageRepository

	// NewPointRepository returns a PointRepository bound to the current transaction.
	NewPointRepository() PointRepository
}
