package impl

import (
	"context"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	mockUsecase "nearby/internal/mocks/usecase"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func (f *engineFixture) newSuperLikeService(notifier usecase.EventNotifier) usecase.SuperLikeUsecase {
	svc := NewSuperLikeService(SuperLikeServiceParams{
		TxManager:    f.txManager,
		ProfileRepo:  f.profileRepo,
		LikeRepo:     f.likeRepo,
		Resolver:     f.resolver,
		Entitlements: f.entitlements,
		Notifier:     notifier,
		Config:       f.cfg,
		Logger:       f.logger,
	})
	svc.(*superLikeService).now = f.clock.Now

	return svc
}

func TestSuperLikeService_DailyQuota(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	sender, _ := f.newUser(t, 0)
	_, first := f.newUser(t, 0)
	_, second := f.newUser(t, 0)

	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything, entity.EventSuperLikeReceived, mock.Anything).Return()
	superLikes := f.newSuperLikeService(notifier)

	output, err := superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: first.SubjectID, Message: "hi"})
	require.NoError(t, err)
	assert.True(t, output.Sent)
	assert.False(t, output.Matched)
	require.NotNil(t, output.Quota)
	assert.Equal(t, 0, output.Quota.Remaining)

	_, err = superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: second.SubjectID})
	var exceeded *domainerrors.QuotaExceededError
	require.True(t, errors.As(err, &exceeded))
	assert.Equal(t, entity.FeatureSuperLike, exceeded.Feature)

	// The next UTC day restores the quota.
	f.clock.Advance(24 * time.Hour)
	_, err = superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: second.SubjectID})
	require.NoError(t, err)
}

func TestSuperLikeService_RejectsBeforeSpending(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	sender, subject := f.newUser(t, 0)
	_, recipient := f.newUser(t, 0)

	notifier := mockUsecase.NewMockEventNotifier(t)
	superLikes := f.newSuperLikeService(notifier)

	_, err := superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: subject.SubjectID})
	assert.ErrorIs(t, err, domainerrors.ErrCannotLikeSelf)

	_, err = superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)

	notifier.EXPECT().Notify(mock.Anything, recipient.SubjectID, entity.EventSuperLikeReceived, mock.Anything).Return().Once()
	_, err = superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: recipient.SubjectID})
	require.NoError(t, err)

	// A repeat is rejected without touching the next day's quota.
	f.clock.Advance(24 * time.Hour)
	_, err = superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: recipient.SubjectID})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadySuperLiked)

	allowance := f.entitlements.CanUseFeature(ctx, subject.SubjectID, entity.FeatureSuperLike)
	assert.True(t, allowance.Allowed)
	assert.Equal(t, 1, allowance.Remaining)
}

func TestSuperLikeService_PointsPath(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	sender, _ := f.newUser(t, 25)
	_, recipient := f.newUser(t, 0)

	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, recipient.SubjectID, entity.EventSuperLikeReceived, mock.Anything).Return().Once()
	superLikes := f.newSuperLikeService(notifier)

	output, err := superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: recipient.SubjectID, PaymentMethod: entity.PaymentMethodPoints})
	require.NoError(t, err)
	assert.Nil(t, output.Quota)

	balance, err := f.entitlements.PointBalance(ctx, *sender.UserID)
	require.NoError(t, err)
	assert.Equal(t, 15, balance)

	_, err = superLikes.SendSuperLike(ctx, guestIdentity("+15145550020"), &usecase.SendSuperLikeInput{RecipientID: recipient.SubjectID, PaymentMethod: entity.PaymentMethodPoints})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRequired)
}

func TestSuperLikeService_MutualInterestCreatesMatch(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	sender, from := f.newUser(t, 0)
	_, recipient := f.newUser(t, 0)

	require.NoError(t, f.likeRepo.CreateLike(ctx, &entity.Like{
		ID:     uuid.New(),
		FromID: recipient.SubjectID,
		ToID:   from.SubjectID,
		Kind:   entity.LikeKindLike,
	}))

	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, recipient.SubjectID, entity.EventSuperLikeReceived, mock.Anything).Return().Once()
	notifier.EXPECT().Notify(mock.Anything, from.SubjectID, entity.EventMatchCreated, mock.Anything).Return().Once()
	notifier.EXPECT().Notify(mock.Anything, recipient.SubjectID, entity.EventMatchCreated, mock.Anything).Return().Once()
	superLikes := f.newSuperLikeService(notifier)

	output, err := superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: recipient.SubjectID})
	require.NoError(t, err)
	assert.True(t, output.Matched)
	require.NotNil(t, output.MatchID)

	a, b := entity.OrderedPair(from.SubjectID, recipient.SubjectID)
	match, err := f.likeRepo.FindMatch(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, *output.MatchID, match.ID)
}

func TestSuperLikeService_UnlimitedMembershipSkipsCounter(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	sender, subject := f.newUser(t, 0)
	f.grantMembership(t, subject.SubjectID, entity.MembershipBenefits{UnlimitedSuperLikes: true})

	notifier := mockUsecase.NewMockEventNotifier(t)
	notifier.EXPECT().Notify(mock.Anything, mock.Anything, entity.EventSuperLikeReceived, mock.Anything).Return().Times(3)
	superLikes := f.newSuperLikeService(notifier)

	for range 3 {
		_, recipient := f.newUser(t, 0)
		output, err := superLikes.SendSuperLike(ctx, sender, &usecase.SendSuperLikeInput{RecipientID: recipient.SubjectID})
		require.NoError(t, err)
		assert.True(t, output.Quota.Unlimited)
	}
}
