package layout

import "testing"

func TestClassify_DefaultReference(t *testing.T) {
	ref := Default()
	cases := map[int]Kind{
		454: Login, // login layout keeps its width
		440: Login,
		394: Login, // exactly at tolerance
		393: Full,
		344: Full, // shrank all the way to compact
		0:   Full,
		960: Login,
	}
	for width, want := range cases {
		if got := ref.Classify(width); got != want {
			t.Fatalf("Classify(%d)=%v want %v", width, got, want)
		}
	}
}

func TestClassify_CustomTolerance(t *testing.T) {
	ref := Reference{LoginWidth: 500, Tolerance: 0}
	if got := ref.Classify(499); got != Full {
		t.Fatalf("Classify(499)=%v want full", got)
	}
	if got := ref.Classify(500); got != Login {
		t.Fatalf("Classify(500)=%v want login", got)
	}
}

func TestKindString(t *testing.T) {
	if Login.String() != "login" || Full.String() != "full" || Kind(7).String() != "unknown" {
		t.Fatalf("unexpected Kind strings")
	}
}
