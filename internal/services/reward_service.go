package services

import (
	"context"

	"blockday/internal/domain"
	"blockday/internal/errors"
	"blockday/internal/repository/sqlite"
	"blockday/internal/validation"
)

// rewardServiceImpl implements RewardService
type rewardServiceImpl struct {
	repo      sqlite.Repository
	scoring   ScoringService
	mapper    *domain.Mapper
	validator *validation.RewardValidator
}

// NewRewardService creates a new reward service instance
func NewRewardService(repo sqlite.Repository, scoring ScoringService) RewardService {
	return &rewardServiceImpl{
		repo:      repo,
		scoring:   scoring,
		mapper:    domain.NewMapper(),
		validator: validation.NewRewardValidator(),
	}
}

// CreateReward validates and persists a new reward
func (s *rewardServiceImpl) CreateReward(ctx context.Context, title string, cost int, icon string) (*domain.Reward, error) {
	reward := domain.Reward{
		Title: title,
		Cost:  cost,
		Icon:  icon,
	}
	if err := s.validator.ValidateRewardForCreation(reward); err != nil {
		return nil, err
	}

	dbReward := s.mapper.Reward.ToDatabase(reward)
	if err := s.repo.CreateReward(ctx, &dbReward); err != nil {
		return nil, err
	}

	created := s.mapper.Reward.FromDatabase(dbReward)
	return &created, nil
}

// ListRewards retrieves all rewards ordered by cost
func (s *rewardServiceImpl) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	dbRewards, err := s.repo.ListRewards(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Reward.FromDatabaseSlice(dbRewards), nil
}

// Redeem checks the live balance against the reward's cost, then charges
// the ledger and bumps the redemption count in one transaction. An
// unaffordable reward leaves every store untouched.
func (s *rewardServiceImpl) Redeem(ctx context.Context, rewardID int64) (*domain.Reward, error) {
	if err := s.validator.ValidateRewardID(rewardID); err != nil {
		return nil, err
	}

	dbReward, err := s.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}

	score, err := s.scoring.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	if score.Balance < dbReward.Cost {
		return nil, errors.NewInsufficientBalanceError(dbReward.Cost, score.Balance)
	}

	if err := s.repo.RedeemReward(ctx, rewardID, dbReward.Cost); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	reward := s.mapper.Reward.FromDatabase(*updated)
	return &reward, nil
}
