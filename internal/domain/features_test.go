package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type boxFeature struct {
	box     Box
	session Session
	started bool
	lastErr error
}

func (f *boxFeature) reset() {
	*f = boxFeature{}
}

func (f *boxFeature) current() Session {
	if !f.started {
		f.session = NewSession(f.box)
		f.started = true
	}
	return f.session
}

func (f *boxFeature) aBoxWithFlatFee(name, fee string) error {
	d, err := decimal.NewFromString(fee)
	if err != nil {
		return err
	}
	f.box = Box{Name: name, Fee: d}
	return nil
}

func (f *boxFeature) aCategoryRequiringBetween(id, name string, min, max int) error {
	f.box.Categories = append(f.box.Categories, Category{ID: id, Name: name, Min: min, Max: max, Optional: min == 0})
	return nil
}

func (f *boxFeature) anOptionalCategory(id, name string, max int) error {
	f.box.Categories = append(f.box.Categories, Category{ID: id, Name: name, Min: 0, Max: max, Optional: true})
	return nil
}

func (f *boxFeature) addProduct(categoryID, productID, title, priceText string, dup bool) error {
	d, err := decimal.NewFromString(priceText)
	if err != nil {
		return err
	}
	for i := range f.box.Categories {
		if f.box.Categories[i].ID == categoryID {
			f.box.Categories[i].Products = append(f.box.Categories[i].Products, Product{
				ID: productID, VariantID: productID, Title: title, Price: d, AllowDuplicates: dup,
			})
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", categoryID)
}

func (f *boxFeature) offersWithDuplicates(categoryID, productID, title, p string) error {
	return f.addProduct(categoryID, productID, title, p, true)
}

func (f *boxFeature) offersWithoutDuplicates(categoryID, productID, title, p string) error {
	return f.addProduct(categoryID, productID, title, p, false)
}

func (f *boxFeature) iAddTimes(productID, categoryID string, n int) error {
	s := f.current()
	for i := 0; i < n; i++ {
		next, err := s.Increase(categoryID, productID)
		f.lastErr = err
		s = next
	}
	f.session = s
	return nil
}

func (f *boxFeature) iRemove(productID, categoryID string) error {
	s, err := f.current().Decrease(categoryID, productID)
	f.session, f.lastErr = s, err
	return nil
}

func (f *boxFeature) categoryHolds(categoryID string, n int) error {
	if got := f.current().Ledger().Count(categoryID); got != n {
		return fmt.Errorf("expected %d items in %s, got %d", n, categoryID, got)
	}
	return nil
}

func (f *boxFeature) totalIs(want string) error {
	d, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if got := f.current().Quote().Total; !got.Equal(d) {
		return fmt.Errorf("expected total %s, got %s", d, got)
	}
	return nil
}

func (f *boxFeature) boxIsComplete() error {
	if !f.current().Complete() {
		return fmt.Errorf("expected box to be complete")
	}
	return nil
}

func (f *boxFeature) boxIsNotComplete() error {
	if f.current().Complete() {
		return fmt.Errorf("expected box to be incomplete")
	}
	return nil
}

func (f *boxFeature) lastChangeRejectedWith(msg string) error {
	if f.lastErr == nil {
		return fmt.Errorf("expected last change to be rejected")
	}
	if f.lastErr.Error() != msg {
		return fmt.Errorf("expected %q, got %q", msg, f.lastErr.Error())
	}
	return nil
}

func (f *boxFeature) noLongerSelected(productID, categoryID string) error {
	if _, ok := f.current().Ledger().Get(categoryID, productID); ok {
		return fmt.Errorf("expected %s to be removed from %s", productID, categoryID)
	}
	return nil
}

func InitializeBoxScenario(ctx *godog.ScenarioContext) {
	f := &boxFeature{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		f.reset()
		return ctx, nil
	})

	ctx.Step(`^a box "([^"]*)" with a flat fee of "([^"]*)"$`, f.aBoxWithFlatFee)
	ctx.Step(`^a category "([^"]*)" named "([^"]*)" requiring between (\d+) and (\d+) items$`, f.aCategoryRequiringBetween)
	ctx.Step(`^an optional category "([^"]*)" named "([^"]*)" allowing up to (\d+) items$`, f.anOptionalCategory)
	ctx.Step(`^the category "([^"]*)" offers product "([^"]*)" titled "([^"]*)" at "([^"]*)" allowing duplicates$`, f.offersWithDuplicates)
	ctx.Step(`^the category "([^"]*)" offers product "([^"]*)" titled "([^"]*)" at "([^"]*)" without duplicates$`, f.offersWithoutDuplicates)
	ctx.Step(`^I add "([^"]*)" from "([^"]*)" (\d+) times$`, f.iAddTimes)
	ctx.Step(`^I remove "([^"]*)" from "([^"]*)"$`, f.iRemove)
	ctx.Step(`^the category "([^"]*)" holds (\d+) items$`, f.categoryHolds)
	ctx.Step(`^the total is "([^"]*)"$`, f.totalIs)
	ctx.Step(`^the box is complete$`, f.boxIsComplete)
	ctx.Step(`^the box is not complete$`, f.boxIsNotComplete)
	ctx.Step(`^the last change is rejected with "([^"]*)"$`, f.lastChangeRejectedWith)
	ctx.Step(`^"([^"]*)" is no longer selected in "([^"]*)"$`, f.noLongerSelected)
}

func TestBoxBuilderFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeBoxScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/box_builder.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
