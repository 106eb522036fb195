package usecase

import (
	"context"
	"fmt"
	"math"

	"plantGame/internal/domain"
)

func (s *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *Service) ListOwnedItems(ctx context.Context, userID int) ([]domain.OwnedItem, error) {
	return s.repo.ListOwnedItems(ctx, userID)
}

// BuyItems charges p.TotalCost to the user and credits every purchased
// line. The cost is taken as sent by the client.
func (s *Service) BuyItems(ctx context.Context, p domain.Purchase) error {
	if len(p.Items) == 0 {
		return fmt.Errorf("%w: item list is empty", domain.ErrValidation)
	}
	if p.TotalCost.IsNegative() {
		return fmt.Errorf("%w: totalCost must not be negative", domain.ErrValidation)
	}
	lines, err := mergeLines(p.Items)
	if err != nil {
		return err
	}

	user, err := s.repo.GetUserByID(ctx, p.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: id=%d", domain.ErrUserNotFound, p.UserID)
	}
	if user.Balance.LessThan(p.TotalCost.Decimal) {
		return domain.ErrInsufficientBalance
	}

	return s.repo.BuyItemsTx(ctx, user.ID, lines, p.TotalCost.Decimal)
}

// maxQuantity is the largest value the quantitat column holds.
const maxQuantity = math.MaxInt32

// mergeLines folds repeated item ids into one line so a single upsert
// statement never touches the same row twice. First-seen order is kept.
// Every line and every merged total must lie in 1..maxQuantity.
func mergeLines(lines []domain.PurchaseLine) ([]domain.PurchaseLine, error) {
	idx := make(map[int]int, len(lines))
	out := make([]domain.PurchaseLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 || l.Quantity > maxQuantity {
			return nil, fmt.Errorf("%w: quantity for item %d must be between 1 and %d",
				domain.ErrValidation, l.ItemID, maxQuantity)
		}
		i, ok := idx[l.ItemID]
		if !ok {
			idx[l.ItemID] = len(out)
			out = append(out, l)
			continue
		}
		if int64(out[i].Quantity)+int64(l.Quantity) > maxQuantity {
			return nil, fmt.Errorf("%w: total quantity for item %d exceeds %d",
				domain.ErrValidation, l.ItemID, maxQuantity)
		}
		out[i].Quantity += l.Quantity
	}
	return out, nil
}
