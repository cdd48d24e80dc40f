package mvfield

import "testing"

func TestAllocGetSet(t *testing.T) {
	f := Alloc(2, 3)
	f.Set(Prev, Y, 0, 0, 5)
	f.Set(Next, X, 1, 2, -7)

	if got := f.Get(Prev, Y, 0, 0); got != 5 {
		t.Errorf("Get(Prev,Y,0,0) = %d, want 5", got)
	}
	if got := f.Get(Next, X, 1, 2); got != -7 {
		t.Errorf("Get(Next,X,1,2) = %d, want -7", got)
	}
	if got := f.Get(Prev, X, 0, 0); got != 0 {
		t.Errorf("unset component not zero: got %d", got)
	}
}

func TestZero(t *testing.T) {
	f := Alloc(2, 2)
	f.Set(Prev, Y, 0, 0, 9)
	f.Set(Next, X, 1, 1, -3)
	f.Zero()

	f.Each(func(v int) {
		if v != 0 {
			t.Fatalf("Zero left a nonzero component: %d", v)
		}
	})
}

func TestEachVisitsEveryComponent(t *testing.T) {
	f := Alloc(2, 2)
	count := 0
	f.Each(func(int) { count++ })

	want := 2 * 2 * 2 * 2 // dir * axis * by * bx
	if count != want {
		t.Fatalf("Each visited %d components, want %d", count, want)
	}
}
