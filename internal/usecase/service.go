package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"plantGame/internal/domain"
)

type Repository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id int) (*domain.User, error)
	CreateUser(ctx context.Context, u domain.User) (int, error)
	UpdateUser(ctx context.Context, id int, u domain.User) error
	DeleteUser(ctx context.Context, id int) error

	ListPlants(ctx context.Context) ([]domain.Plant, error)
	GetPlantByID(ctx context.Context, id int) (*domain.Plant, error)
	CreatePlant(ctx context.Context, p domain.Plant) (int, error)
	UpdatePlant(ctx context.Context, id int, p domain.Plant) error
	DeletePlant(ctx context.Context, id int) error

	ListItems(ctx context.Context) ([]domain.Item, error)
	ListOwnedItems(ctx context.Context, userID int) ([]domain.OwnedItem, error)

	BuyItemsTx(ctx context.Context, userID int, lines []domain.PurchaseLine, cost decimal.Decimal) error
}

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}
