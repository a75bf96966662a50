package workflow

import (
	"context"
	"log/slog"

	"gym_portal/internal/domain/entity"
	"gym_portal/pkg/logx"
)

type ProShop interface {
	List(ctx context.Context) ([]entity.Equipment, error)
	Purchase(ctx context.Context, fighterID, equipmentID, price int64) error
}

// Commerce sells equipment against the fighter's budget. The budget is read
// from the store at the start of every purchase, never carried between calls.
type Commerce struct {
	shop     ProShop
	fighters FighterAccounts
	term     Prompter
	log      *slog.Logger
}

func NewCommerce(shop ProShop, fighters FighterAccounts, term Prompter, log *slog.Logger) *Commerce {
	return &Commerce{
		shop:     shop,
		fighters: fighters,
		term:     term,
		log:      log,
	}
}

// BuyEquipment lists the catalog and commits the purchase when the budget
// covers the chosen item. It returns the remaining budget.
func (w *Commerce) BuyEquipment(ctx context.Context, fighterID int64) (int64, error) {
	budget, err := w.fighters.Budget(ctx, fighterID)
	if err != nil {
		w.log.Error("read budget", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return 0, err
	}

	items, err := w.shop.List(ctx)
	if err != nil {
		w.log.Error("list equipment", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return budget, err
	}

	if len(items) == 0 {
		w.term.Printf("No equipment available for purchase.\n\n")
		return budget, nil
	}

	w.term.Printf("\nAvailable Equipment (budget: $%d):\n", budget)
	for i, item := range items {
		w.term.Printf("%d. %-25s $%d\n", i+1, item.Type, item.Price)
	}
	w.term.Printf("%s\n", divider)

	n, err := promptChoice(ctx, w.term, "Select an item: ", len(items))
	if err != nil {
		return budget, err
	}
	item := items[n-1]

	if budget < item.Price {
		w.term.Printf("Insufficient budget: %s costs $%d but you have $%d.\n\n",
			item.Type, item.Price, budget)
		return budget, nil
	}

	if err := w.shop.Purchase(ctx, fighterID, item.ID, item.Price); err != nil {
		w.log.Error("purchase equipment", logx.Error(err))
		w.term.Printf("Database Error: %v\n\n", err)
		return budget, err
	}

	remaining := budget - item.Price
	w.term.Printf("Purchased %s. Remaining budget: $%d.\n\n", item.Type, remaining)

	return remaining, nil
}
