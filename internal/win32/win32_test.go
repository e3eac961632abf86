package win32

import "testing"

func TestMakeLParam(t *testing.T) {
	cases := map[[2]int]uintptr{
		{0, 0}:      0,
		{227, 500}:  227 + 500*0x10000,
		{2250, 460}: 2250 + 460*0x10000,
		{80, 210}:   80 + 210*0x10000,
		{-1, 0}:     0xFFFF,
	}
	for in, want := range cases {
		if got := MakeLParam(in[0], in[1]); got != want {
			t.Fatalf("MakeLParam(%d,%d)=0x%X want 0x%X", in[0], in[1], got, want)
		}
	}
}
