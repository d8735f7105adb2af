package domain_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type composerTestContext struct {
	item     domain.Item
	composer *domain.Composer
	order    *domain.Order
}

func (c *composerTestContext) reset() {
	c.item = domain.Item{}
	c.composer = nil
	c.order = nil
}

func (c *composerTestContext) aFoodPricedWithAnExtraValued(price string, extraID int, value string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	v, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}

	c.item = domain.Item{
		ID:     1,
		Name:   "Veggie",
		Price:  p,
		Extras: []domain.Extra{{ID: extraID, Name: fmt.Sprintf("extra-%d", extraID), Value: v}},
	}
	c.composer = domain.NewComposer(c.item)
	return nil
}

func (c *composerTestContext) theFoodAlsoHasAnExtraValued(extraID int, value string) error {
	v, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}

	c.item.Extras = append(c.item.Extras, domain.Extra{ID: extraID, Name: fmt.Sprintf("extra-%d", extraID), Value: v})
	c.composer = domain.NewComposer(c.item)
	return nil
}

func (c *composerTestContext) iAddExtra(id int) error {
	c.composer.IncrementExtra(id)
	return nil
}

func (c *composerTestContext) iRemoveExtra(id int) error {
	c.composer.DecrementExtra(id)
	return nil
}

func (c *composerTestContext) iAddOneUnit() error {
	c.composer.IncrementQuantity()
	return nil
}

func (c *composerTestContext) iRemoveOneUnit() error {
	c.composer.DecrementQuantity()
	return nil
}

func (c *composerTestContext) iSubmitTheOrderWithID(id int64) error {
	order := c.composer.Order(id)
	c.order = &order
	return nil
}

func (c *composerTestContext) theTotalIs(expected string) error {
	if got := domain.BRL.Format(c.composer.Total()); got != expected {
		return fmt.Errorf("expected total %q, got %q", expected, got)
	}
	return nil
}

func (c *composerTestContext) theBaseQuantityIs(expected int) error {
	if got := c.composer.Quantity(); got != expected {
		return fmt.Errorf("expected base quantity %d, got %d", expected, got)
	}
	return nil
}

func (c *composerTestContext) extraHasQuantity(id, expected int) error {
	for _, extra := range c.composer.Extras() {
		if extra.ID == id {
			if extra.Quantity != expected {
				return fmt.Errorf("expected extra %d quantity %d, got %d", id, expected, extra.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("extra %d not found", id)
}

func (c *composerTestContext) theOrderHasExtras(expected int) error {
	if c.order == nil {
		return fmt.Errorf("no order submitted")
	}
	if len(c.order.Extras) != expected {
		return fmt.Errorf("expected %d extras, got %d", expected, len(c.order.Extras))
	}
	return nil
}

func (c *composerTestContext) theOrderContainsExtraWithQuantity(id, quantity int) error {
	for _, extra := range c.order.Extras {
		if extra.ID == id && extra.Quantity == quantity {
			return nil
		}
	}
	return fmt.Errorf("order has no extra %d with quantity %d", id, quantity)
}

func (c *composerTestContext) theOrderIDDiffersFromTheFoodID() error {
	if c.order.ID == int64(c.item.ID) {
		return fmt.Errorf("order id %d equals food id", c.order.ID)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &composerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^a food priced (\d+\.\d+) with an extra (\d+) valued (\d+\.\d+)$`, tc.aFoodPricedWithAnExtraValued)
	ctx.Step(`^the food also has an extra (\d+) valued (\d+\.\d+)$`, tc.theFoodAlsoHasAnExtraValued)

	ctx.Step(`^I add extra (\d+)$`, tc.iAddExtra)
	ctx.Step(`^I remove extra (\d+)$`, tc.iRemoveExtra)
	ctx.Step(`^I add one unit$`, tc.iAddOneUnit)
	ctx.Step(`^I remove one unit$`, tc.iRemoveOneUnit)
	ctx.Step(`^I submit the order with id (\d+)$`, tc.iSubmitTheOrderWithID)

	ctx.Step(`^the total is "([^"]*)"$`, tc.theTotalIs)
	ctx.Step(`^the base quantity is (\d+)$`, tc.theBaseQuantityIs)
	ctx.Step(`^extra (\d+) has quantity (\d+)$`, tc.extraHasQuantity)
	ctx.Step(`^the order has (\d+) extras?$`, tc.theOrderHasExtras)
	ctx.Step(`^the order contains extra (\d+) with quantity (\d+)$`, tc.theOrderContainsExtraWithQuantity)
	ctx.Step(`^the order id differs from the food id$`, tc.theOrderIDDiffersFromTheFoodID)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
