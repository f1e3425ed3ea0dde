package action_test

import (
	"testing"

	"github.com/ja-he/docnav/internal/control/action"
)

func TestSimpleInterface(t *testing.T) {

	t.Run("Do", func(t *testing.T) {
		becomesTrue := false
		a := func() { becomesTrue = true }

		s := action.NewSimple(func() string { return "sets flag to true" }, a)
		s.Do()

		if !becomesTrue {
			t.Error("action was not executed properly (flag unchanged)")
		}
	})

	t.Run("Explain", func(t *testing.T) {
		e := "does nothing"
		s := action.NewSimple(func() string { return e }, func() {})
		if s.Explain() != "does nothing" {
			t.Error("initial explanation wrong:", s.Explain())
		}
		e = "does nothing, very well"
		if s.Explain() != "does nothing, very well" {
			t.Error("changed explanation wrong:", s.Explain())
		}
	})

	t.Run("Named", func(t *testing.T) {
		count := 0
		s := action.Named("counts", func() { count++ })
		s.Do()
		s.Do()
		if count != 2 {
			t.Errorf("expected two executions, got %d", count)
		}
		if s.Explain() != "counts" {
			t.Error("wrong explanation:", s.Explain())
		}
	})

}
