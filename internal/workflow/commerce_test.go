package workflow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"gym_portal/internal/domain/entity"
	"gym_portal/internal/workflow"
)

// fakeShop debits the shared fighters fake on purchase so repeated workflow
// runs observe the store-side budget.
type fakeShop struct {
	items     []entity.Equipment
	fighters  *fakeFighters
	purchases int
}

func (f *fakeShop) List(context.Context) ([]entity.Equipment, error) {
	return f.items, nil
}

func (f *fakeShop) Purchase(_ context.Context, _, _, price int64) error {
	f.purchases++
	f.fighters.budget -= price
	return nil
}

func TestBuyEquipmentAcceptedWhenBudgetCovers(t *testing.T) {
	rq := require.New(t)

	fighters := &fakeFighters{budget: 100}
	shop := &fakeShop{
		items:    []entity.Equipment{{ID: 1, Type: "Gloves", Price: 60}},
		fighters: fighters,
	}

	term, out := newTerm("1\n")
	w := workflow.NewCommerce(shop, fighters, term, discardLogger())

	remaining, err := w.BuyEquipment(context.Background(), 1)
	rq.NoError(err)
	rq.Equal(int64(40), remaining)
	rq.Equal(1, shop.purchases)
	rq.Contains(out.String(), "Purchased Gloves. Remaining budget: $40.")
}

func TestBuyEquipmentRejectedWhenInsufficient(t *testing.T) {
	rq := require.New(t)

	fighters := &fakeFighters{budget: 50}
	shop := &fakeShop{
		items:    []entity.Equipment{{ID: 1, Type: "Headgear", Price: 60}},
		fighters: fighters,
	}

	term, out := newTerm("1\n")
	w := workflow.NewCommerce(shop, fighters, term, discardLogger())

	remaining, err := w.BuyEquipment(context.Background(), 1)
	rq.NoError(err)
	rq.Equal(int64(50), remaining)
	rq.Zero(shop.purchases)
	rq.Contains(out.String(), "Insufficient budget: Headgear costs $60 but you have $50.")
}

func TestBuyEquipmentRefetchesBudgetEachRun(t *testing.T) {
	rq := require.New(t)

	fighters := &fakeFighters{budget: 100}
	shop := &fakeShop{
		items:    []entity.Equipment{{ID: 1, Type: "Gloves", Price: 60}},
		fighters: fighters,
	}

	term, _ := newTerm("1\n1\n")
	w := workflow.NewCommerce(shop, fighters, term, discardLogger())

	remaining, err := w.BuyEquipment(context.Background(), 1)
	rq.NoError(err)
	rq.Equal(int64(40), remaining)

	// second run sees the debited balance, so the same item is now rejected
	remaining, err = w.BuyEquipment(context.Background(), 1)
	rq.NoError(err)
	rq.Equal(int64(40), remaining)
	rq.Equal(1, shop.purchases)
}

func TestBuyEquipmentRepromptsOutOfRangeSelection(t *testing.T) {
	rq := require.New(t)

	fighters := &fakeFighters{budget: 100}
	shop := &fakeShop{
		items:    []entity.Equipment{{ID: 1, Type: "Gloves", Price: 60}},
		fighters: fighters,
	}

	term, out := newTerm("0\nx\n1\n")
	w := workflow.NewCommerce(shop, fighters, term, discardLogger())

	_, err := w.BuyEquipment(context.Background(), 1)
	rq.NoError(err)
	rq.Contains(out.String(), "Error: Please enter a number between 1 and 1.")
	rq.Equal(1, shop.purchases)
}
