package usecase

import (
	"testing"

	"github.com/aalvaropc/byobox/internal/domain"
)

func TestParseSelection(t *testing.T) {
	cases := map[string]Selection{
		"treats/fudge":       {CategoryID: "treats", ProductID: "fudge", Quantity: 1},
		" treats/fudge=2 ":   {CategoryID: "treats", ProductID: "fudge", Quantity: 2},
		"card / thanks = 1 ": {CategoryID: "card", ProductID: "thanks", Quantity: 1},
	}
	for in, want := range cases {
		got, err := ParseSelection(in)
		if err != nil {
			t.Fatalf("ParseSelection(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSelection(%q)=%+v want %+v", in, got, want)
		}
	}

	for _, bad := range []string{"", "treats", "/fudge", "treats/", "treats/fudge=0", "treats/fudge=x"} {
		if _, err := ParseSelection(bad); !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Fatalf("ParseSelection(%q): expected invalid_config, got %v", bad, err)
		}
	}
}

func TestApplySelections_AppliesAll(t *testing.T) {
	s, err := ApplySelections(domain.NewSession(giftBox()), []Selection{
		{CategoryID: "treats", ProductID: "fudge", Quantity: 2},
		{CategoryID: "card", ProductID: "thanks"},
	})
	if err != nil {
		t.Fatalf("ApplySelections error: %v", err)
	}
	if s.Quantity("treats", "fudge") != 2 || s.Quantity("card", "thanks") != 1 {
		t.Fatalf("unexpected ledger: %+v", s.Ledger().Lines(s.Box()))
	}
	if !s.Complete() {
		t.Fatalf("expected complete box")
	}
	if got := s.Quote().Total.StringFixed(2); got != "17.25" {
		t.Fatalf("expected total 17.25, got %s", got)
	}
}

func TestApplySelections_StopsAtFirstRejection(t *testing.T) {
	s, err := ApplySelections(domain.NewSession(giftBox()), []Selection{
		{CategoryID: "treats", ProductID: "fudge", Quantity: 3},
		{CategoryID: "card", ProductID: "thanks"},
	})
	if !domain.IsConstraint(err, domain.ConstraintMaxReached) {
		t.Fatalf("expected max reached, got %v", err)
	}
	if err.Error() != "Cannot select more than 2 treats" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if s.Quantity("treats", "fudge") != 2 || s.Quantity("card", "thanks") != 0 {
		t.Fatalf("expected session after last accepted unit")
	}
}
