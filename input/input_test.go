package input

import "testing"

func TestPressEdges(t *testing.T) {
	r := NewReader(false)

	ev := r.Poll(true, false, false)
	if !ev.LeftPress || ev.RightPress {
		t.Fatalf("first sample down: got %+v", ev)
	}

	// held: no repeat
	for i := 0; i < 3; i++ {
		if ev = r.Poll(true, false, false); ev.LeftPress {
			t.Fatalf("held button repeated on poll %d", i)
		}
	}

	// release then press again
	if ev = r.Poll(false, false, false); ev.LeftPress {
		t.Fatalf("release reported a press")
	}
	if ev = r.Poll(true, false, false); !ev.LeftPress {
		t.Fatalf("re-press not reported")
	}
}

func TestButtonsIndependent(t *testing.T) {
	r := NewReader(false)
	r.Poll(true, false, false)
	ev := r.Poll(true, true, false)
	if ev.LeftPress || !ev.RightPress {
		t.Fatalf("right press while left held: got %+v", ev)
	}
}

func TestSwitchMove(t *testing.T) {
	r := NewReader(false)

	ev := r.Poll(false, false, false)
	if ev.SwitchMoved {
		t.Fatal("phantom move on first poll")
	}

	ev = r.Poll(false, false, true)
	if !ev.SwitchMoved || !ev.SwitchRight {
		t.Fatalf("move to right not reported: %+v", ev)
	}
	if ev.LeftPress || ev.RightPress {
		t.Fatalf("switch move reported button presses: %+v", ev)
	}

	ev = r.Poll(false, false, true)
	if ev.SwitchMoved {
		t.Fatal("steady switch reported a move")
	}
	if !ev.SwitchRight {
		t.Fatal("level lost on steady poll")
	}
}
