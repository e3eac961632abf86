package window

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewHandle_ReturnsSingleAddedHandle(t *testing.T) {
	before := []Handle{0x10, 0x20}
	after := []Handle{0x20, 0x30, 0x10}

	h, ok := NewHandle(before, after)
	if !ok {
		t.Fatalf("expected a new handle")
	}
	if h != 0x30 {
		t.Fatalf("NewHandle=%v want 0x30", h)
	}
}

func TestNewHandle_FirstWindow(t *testing.T) {
	h, ok := NewHandle(nil, []Handle{0x42})
	if !ok || h != 0x42 {
		t.Fatalf("NewHandle(nil, [0x42])=%v,%v want 0x42,true", h, ok)
	}
}

func TestNewHandle_CountMismatch(t *testing.T) {
	cases := map[string][2][]Handle{
		"unchanged":   {{0x10}, {0x10}},
		"two new":     {{0x10}, {0x10, 0x20, 0x30}},
		"one closed":  {{0x10, 0x20}, {0x10}},
		"both empty":  {nil, nil},
		"replaced +1": {{0x10}, {0x20, 0x30}},
	}
	for name, c := range cases {
		h, ok := NewHandle(c[0], c[1])
		if name == "replaced +1" {
			// count differs by one, first unseen handle wins
			if !ok || h != 0x20 {
				t.Fatalf("%s: NewHandle=%v,%v want 0x20,true", name, h, ok)
			}
			continue
		}
		if ok {
			t.Fatalf("%s: expected no handle, got %v", name, h)
		}
	}
}

func TestMatcher_TitleAndClass(t *testing.T) {
	m, err := NewMatcher(`^Skype`, `^Chrome_WidgetWin_1`)
	if err != nil {
		t.Fatalf("NewMatcher: %v", err)
	}

	all := []Info{
		{Handle: 1, Title: "Skype", Class: "Chrome_WidgetWin_1"},
		{Handle: 2, Title: "Skype", Class: "CabinetWClass"},
		{Handle: 3, Title: "Notepad", Class: "Chrome_WidgetWin_1"},
		{Handle: 4, Title: "Skype Preview", Class: "Chrome_WidgetWin_1"},
	}
	got := m.Filter(all)
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("Filter=%v want [1 4]", got)
	}
}

func TestMatcher_BadPattern(t *testing.T) {
	if _, err := NewMatcher(`(`, ""); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestPoll_SucceedsBeforeLimit(t *testing.T) {
	calls := 0
	err := Poll(context.Background(), time.Millisecond, 5, func(context.Context) (bool, error) {
		calls++
		return calls == 3, nil
	})
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls=%d want 3", calls)
	}
}

func TestPoll_TimesOut(t *testing.T) {
	calls := 0
	err := Poll(context.Background(), time.Millisecond, 4, func(context.Context) (bool, error) {
		calls++
		return false, nil
	})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if calls != 4 {
		t.Fatalf("calls=%d want 4", calls)
	}
}

func TestPoll_CheckErrorStops(t *testing.T) {
	boom := errors.New("boom")
	err := Poll(context.Background(), time.Millisecond, 10, func(context.Context) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestPoll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Poll(ctx, time.Hour, 3, func(context.Context) (bool, error) {
		t.Fatalf("check must not run after cancel")
		return false, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
