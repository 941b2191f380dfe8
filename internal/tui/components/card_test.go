package components

import "testing"

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{55, 3},
		{7, 2},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d, want %d", c.total, c.n, sum, c.total)
		}
	}
}

func TestLayoutRowRemainderGoesFirst(t *testing.T) {
	widths := LayoutRow(10, 3)
	if widths[0] != 4 || widths[1] != 3 || widths[2] != 3 {
		t.Errorf("LayoutRow(10, 3) = %v, want [4 3 3]", widths)
	}
}

func TestLayoutRowZeroColumns(t *testing.T) {
	if widths := LayoutRow(100, 0); widths != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", widths)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('o'); idx != 0 {
		t.Errorf("TabIdxByKey('o') = %d, want 0", idx)
	}
	if idx := TabIdxByKey('a'); idx != 2 {
		t.Errorf("TabIdxByKey('a') = %d, want 2", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", idx)
	}
}

func TestCardInnerWidthFloor(t *testing.T) {
	if w := CardInnerWidth(8); w != 10 {
		t.Errorf("CardInnerWidth(8) = %d, want floor of 10", w)
	}
	if w := CardInnerWidth(40); w != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", w)
	}
}
