package impl

import (
	"context"
	"log/slog"
	"time"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/errors"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type superLikeService struct {
	txManager    repository.TransactionManager
	profileRepo  repository.ProfileRepository
	likeRepo     repository.LikeRepository
	resolver     usecase.IdentityResolver
	entitlements usecase.EntitlementLedger
	notifier     usecase.EventNotifier
	pointCost    int
	guard        storeGuard
	logger       *slog.Logger
	now          func() time.Time
}

// SuperLikeServiceParams holds dependencies for SuperLikeService, injected by Fx.
type SuperLikeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProfileRepo  repository.ProfileRepository
	LikeRepo     repository.LikeRepository
	Resolver     usecase.IdentityResolver
	Entitlements usecase.EntitlementLedger
	Notifier     usecase.EventNotifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSuperLikeService creates a new super-like service instance
func NewSuperLikeService(params SuperLikeServiceParams) usecase.SuperLikeUsecase {
	return &superLikeService{
		txManager:    params.TxManager,
		profileRepo:  params.ProfileRepo,
		likeRepo:     params.LikeRepo,
		resolver:     params.Resolver,
		entitlements: params.Entitlements,
		notifier:     params.Notifier,
		pointCost:    entitlementsConfig(params.Config).SuperLikePointCost,
		guard:        newStoreGuard(params.Config),
		logger:       loggerOrDefault(params.Logger),
		now:          utcNow,
	}
}

func (s *superLikeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SendSuperLike pays through the daily quota or points, records the like and
// creates a match when the recipient already liked the sender.
func (s *superLikeService) SendSuperLike(ctx context.Context, identity entity.Identity, input *usecase.SendSuperLikeInput) (*usecase.SendSuperLikeOutput, error) {
	subject, err := s.resolver.Resolve(ctx, identity, usecase.ResolveOptions{CreateIfMissing: true})
	if err != nil {
		return nil, err
	}
	if subject.SubjectID == input.RecipientID {
		return nil, domainerrors.ErrCannotLikeSelf
	}
	if err := s.checkRecipient(ctx, subject.SubjectID, input.RecipientID); err != nil {
		return nil, err
	}

	method := input.PaymentMethod
	if method == "" {
		method = entity.PaymentMethodQuota
	}

	var refund func()
	switch method {
	case entity.PaymentMethodQuota:
		if _, err := s.entitlements.Consume(ctx, subject.SubjectID, entity.FeatureSuperLike, 1); err != nil {
			return nil, err
		}
		refund = func() {}
	case entity.PaymentMethodPoints:
		if subject.UserID == nil {
			return nil, domainerrors.ErrIdentityRequired.WrapMessage("points require an authenticated account")
		}
		userID := *subject.UserID
		if err := s.entitlements.SpendPoints(ctx, userID, s.pointCost); err != nil {
			return nil, err
		}
		refund = func() {
			if err := s.entitlements.RefundPoints(ctx, userID, s.pointCost); err != nil {
				s.log(ctx).Error("points refund failed", slog.String("user_id", userID.String()), slog.Any("error", err))
			}
		}
	default:
		return nil, domainerrors.ErrUnsupportedPaymentMethod.WithDetails(string(method))
	}

	match, err := s.record(ctx, subject.SubjectID, input)
	if err != nil {
		refund()

		return nil, err
	}

	output := &usecase.SendSuperLikeOutput{Sent: true}
	if method == entity.PaymentMethodQuota {
		output.Quota = s.entitlements.CanUseFeature(ctx, subject.SubjectID, entity.FeatureSuperLike)
	}

	s.notifier.Notify(ctx, input.RecipientID, entity.EventSuperLikeReceived, map[string]string{
		"from_id": subject.SubjectID.String(),
		"message": input.Message,
	})
	if match != nil {
		output.Matched = true
		output.MatchID = &match.ID
		for _, id := range []uuid.UUID{subject.SubjectID, input.RecipientID} {
			s.notifier.Notify(ctx, id, entity.EventMatchCreated, map[string]string{
				"match_id":  match.ID.String(),
				"subject_a": match.SubjectA.String(),
				"subject_b": match.SubjectB.String(),
			})
		}
	}

	return output, nil
}

func (s *superLikeService) checkRecipient(ctx context.Context, senderID, recipientID uuid.UUID) error {
	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	if _, err := s.profileRepo.FindProfileByID(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return writeFailure(err, "failed to find recipient")
	}

	already, err := s.likeRepo.HasLiked(ctx, senderID, recipientID, entity.LikeKindSuperLike)
	if err != nil {
		return writeFailure(err, "failed to check previous super-like")
	}
	if already {
		return domainerrors.ErrAlreadySuperLiked
	}

	return nil
}

// record stores the like and, when interest is mutual, the match in one transaction.
func (s *superLikeService) record(ctx context.Context, senderID uuid.UUID, input *usecase.SendSuperLikeInput) (*entity.Match, error) {
	ctx, cancel := s.guard.bound(ctx)
	defer cancel()

	var match *entity.Match
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		likeRepo := factory.NewLikeRepository()

		if err := likeRepo.CreateLike(ctx, &entity.Like{
			ID:      uuid.New(),
			FromID:  senderID,
			ToID:    input.RecipientID,
			Kind:    entity.LikeKindSuperLike,
			Message: input.Message,
		}); err != nil {
			if errors.Is(err, repository.ErrDuplicateLike) {
				return domainerrors.ErrAlreadySuperLiked
			}

			return errors.Wrap(err, "failed to create like")
		}

		mutual, err := likeRepo.HasLiked(ctx, input.RecipientID, senderID)
		if err != nil {
			return errors.Wrap(err, "failed to check reciprocal like")
		}
		if !mutual {
			return nil
		}

		a, b := entity.OrderedPair(senderID, input.RecipientID)
		candidate := &entity.Match{ID: uuid.New(), SubjectA: a, SubjectB: b, CreatedAt: s.now()}
		if err := likeRepo.CreateMatch(ctx, candidate); err != nil {
			if !errors.Is(err, repository.ErrDuplicateMatch) {
				return errors.Wrap(err, "failed to create match")
			}
			existing, findErr := likeRepo.FindMatch(ctx, a, b)
			if findErr != nil {
				return errors.Wrap(findErr, "failed to find match")
			}
			match = existing

			return nil
		}
		match = candidate

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadySuperLiked) {
			return nil, err
		}

		return nil, writeFailure(err, "failed to record super-like")
	}

	return match, nil
}
