package selector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStateCursor(t *testing.T) {
	t.Run("InitialState", func(t *testing.T) {
		s := newState(4, Multi)
		if s.cursor != 0 {
			t.Errorf("expected cursor=0, got %d", s.cursor)
		}
		if len(s.selected) != 0 {
			t.Errorf("expected empty selection, got %d entries", len(s.selected))
		}
	})

	t.Run("Down_MovesCursor", func(t *testing.T) {
		s := newState(4, Multi)
		s.apply(cmdDown)
		if s.cursor != 1 {
			t.Errorf("expected cursor=1, got %d", s.cursor)
		}
	})

	t.Run("Down_AtBottom_StaysAtBottom", func(t *testing.T) {
		s := newState(3, Multi)
		s.cursor = 2
		s.apply(cmdDown)
		if s.cursor != 2 {
			t.Errorf("expected cursor=2 (stayed at bottom), got %d", s.cursor)
		}
	})

	t.Run("Up_AtTop_StaysAtTop", func(t *testing.T) {
		s := newState(3, Multi)
		s.apply(cmdUp)
		if s.cursor != 0 {
			t.Errorf("expected cursor=0 (stayed at top), got %d", s.cursor)
		}
	})

	t.Run("AnyMoveSequence_StaysInBounds", func(t *testing.T) {
		// Pseudo-zufaellige Bewegungsfolge darf [0, n-1] nie verlassen
		for _, n := range []int{1, 2, 5, 17} {
			s := newState(n, Multi)
			seq := []command{cmdDown, cmdDown, cmdUp, cmdDown, cmdDown, cmdDown, cmdUp, cmdUp, cmdUp, cmdUp, cmdDown}
			for i := 0; i < 50; i++ {
				s.apply(seq[i%len(seq)])
				if s.cursor < 0 || s.cursor >= n {
					t.Fatalf("n=%d: cursor %d out of bounds after %d moves", n, s.cursor, i+1)
				}
			}
		}
	})
}

func TestStateMulti(t *testing.T) {
	t.Run("Toggle_SelectsAndDeselects", func(t *testing.T) {
		s := newState(3, Multi)
		s.apply(cmdToggle)
		if !s.selected[0] {
			t.Error("expected index 0 selected after toggle")
		}
		s.apply(cmdToggle)
		if s.selected[0] {
			t.Error("expected index 0 deselected after double toggle")
		}
	})

	t.Run("DoubleToggle_IsIdempotent", func(t *testing.T) {
		s := newState(5, Multi)
		s.apply(cmdDown)
		s.apply(cmdToggle)
		before := s.result()

		s.apply(cmdDown)
		s.apply(cmdToggle)
		s.apply(cmdToggle)
		s.apply(cmdUp)

		if diff := cmp.Diff(before, s.result()); diff != "" {
			t.Errorf("selection changed after double toggle (-want +got):\n%s", diff)
		}
	})

	t.Run("Toggle_NeverTerminates", func(t *testing.T) {
		s := newState(3, Multi)
		if done := s.apply(cmdToggle); done {
			t.Error("toggle in multi mode must not terminate the session")
		}
	})

	t.Run("Confirm_TerminatesWithSelection", func(t *testing.T) {
		s := newState(4, Multi)
		s.apply(cmdDown)
		s.apply(cmdToggle)
		s.apply(cmdDown)
		s.apply(cmdToggle)
		if done := s.apply(cmdConfirm); !done {
			t.Fatal("expected confirm to terminate")
		}

		want := Result{Indices: []int{1, 2}}
		if diff := cmp.Diff(want, s.result()); diff != "" {
			t.Errorf("unexpected result (-want +got):\n%s", diff)
		}
	})

	t.Run("Confirm_EmptySelection_NotCancelled", func(t *testing.T) {
		s := newState(4, Multi)
		s.apply(cmdConfirm)
		res := s.result()
		if res.Cancelled {
			t.Error("confirm must not mark the result cancelled")
		}
		if len(res.Indices) != 0 {
			t.Errorf("expected no indices, got %v", res.Indices)
		}
	})
}

func TestStateSingle(t *testing.T) {
	t.Run("Toggle_ChoosesAndTerminates", func(t *testing.T) {
		s := newState(4, Single)
		s.apply(cmdDown)
		s.apply(cmdDown)
		if done := s.apply(cmdToggle); !done {
			t.Fatal("space in single mode must terminate")
		}

		want := Result{Indices: []int{2}}
		if diff := cmp.Diff(want, s.result()); diff != "" {
			t.Errorf("unexpected result (-want +got):\n%s", diff)
		}
	})

	t.Run("Confirm_ChoosesHighlighted", func(t *testing.T) {
		s := newState(4, Single)
		s.apply(cmdDown)
		if done := s.apply(cmdConfirm); !done {
			t.Fatal("enter in single mode must terminate")
		}

		want := Result{Indices: []int{1}}
		if diff := cmp.Diff(want, s.result()); diff != "" {
			t.Errorf("unexpected result (-want +got):\n%s", diff)
		}
	})

	t.Run("AtMostOneSelected_Always", func(t *testing.T) {
		s := newState(6, Single)
		seq := []command{cmdDown, cmdToggle, cmdUp, cmdConfirm, cmdDown, cmdToggle}
		for _, cmd := range seq {
			s.apply(cmd)
			if len(s.selected) > 1 {
				t.Fatalf("single mode holds %d selections", len(s.selected))
			}
		}
	})
}

func TestStateQuit(t *testing.T) {
	t.Run("ClearsPriorSelections", func(t *testing.T) {
		s := newState(4, Multi)
		s.apply(cmdToggle)
		s.apply(cmdDown)
		s.apply(cmdToggle)
		if done := s.apply(cmdQuit); !done {
			t.Fatal("expected quit to terminate")
		}

		res := s.result()
		if !res.Cancelled {
			t.Error("expected cancelled result")
		}
		if len(res.Indices) != 0 {
			t.Errorf("expected empty indices after quit, got %v", res.Indices)
		}
	})
}
