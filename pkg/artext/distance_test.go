package artext

import "testing"

func TestMaxEditDistance(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"اي", 0},
		{"حبه", 0},
		{"شاشه", 1},
		{"بطاريات", 2},
		{"تلفزيونات", 3},
	}
	for _, tt := range tests {
		if got := MaxEditDistance(tt.token); got != tt.want {
			t.Errorf("MaxEditDistance(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestEditDistanceWithin(t *testing.T) {
	tests := []struct {
		a, b string
		max  int
		dist int
		ok   bool
	}{
		{"شاشه", "شاشه", 0, 0, true},
		{"شاشه", "شاشت", 1, 1, true},
		{"شاشه", "شاشات", 2, 2, true},
		{"شاشه", "بطاريه", 1, 0, false},
		{"", "اب", 2, 2, true},
		{"اب", "", 1, 0, false},
		{"modem", "modam", 1, 1, true},
	}
	for _, tt := range tests {
		dist, ok := EditDistanceWithin(tt.a, tt.b, tt.max)
		if ok != tt.ok || (ok && dist != tt.dist) {
			t.Errorf("EditDistanceWithin(%q, %q, %d) = %d, %v, want %d, %v",
				tt.a, tt.b, tt.max, dist, ok, tt.dist, tt.ok)
		}
	}
}

func TestEditDistanceWithinLengthGap(t *testing.T) {
	// A length difference beyond the band fails without scanning.
	if _, ok := EditDistanceWithin("اب", "ابتثجحخد", 2); ok {
		t.Fatal("length gap of 6 accepted with max 2")
	}
}

func TestNgramSimilarity(t *testing.T) {
	if got := NgramSimilarity("شاشه", "شاشه", 2); got != 1 {
		t.Fatalf("identical strings = %v, want 1", got)
	}
	if got := NgramSimilarity("شاشه", "قلم", 2); got != 0 {
		t.Fatalf("unrelated strings = %v, want 0", got)
	}
	mid := NgramSimilarity("شاشه", "شاشات", 2)
	if mid <= 0 || mid >= 1 {
		t.Fatalf("related strings = %v, want strictly between 0 and 1", mid)
	}
	if got := NgramSimilarity("", "شاشه", 2); got != 0 {
		t.Fatalf("empty string = %v, want 0", got)
	}
}
