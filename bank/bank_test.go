package bank

import "testing"

func TestCatalogSize(t *testing.T) {
	if got := Programs(); got != 99 {
		t.Fatalf("Programs() = %d, want 99", got)
	}
	if got := Len(); got != 100 {
		t.Fatalf("Len() = %d, want 100", got)
	}
}

func TestSentinelLastAndUnmatched(t *testing.T) {
	last := uint8(Len() - 1)
	p := At(last)
	if p.Name != "Default" {
		t.Fatalf("last entry is %q, want Default", p.Name)
	}
	if p.Style != NoStyle || p.Category != NoCategory {
		t.Fatalf("sentinel carries %v/%v, must be NoStyle/NoCategory", p.Style, p.Category)
	}
	for s := Style(0); s < NumStyles; s++ {
		for c := Category(0); c < NumCategories; c++ {
			for _, idx := range Find(s, c) {
				if idx == last {
					t.Fatalf("Find(%s, %s) returned the sentinel", s, c)
				}
			}
		}
	}
}

// Querying with the sentinel's own tags must select nothing: the sentinel
// index is the "no program" value and may never reach the dispatcher.
func TestFindSentinelTags(t *testing.T) {
	if got := Find(NoStyle, NoCategory); len(got) != 0 {
		t.Fatalf("Find(NoStyle, NoCategory) = %v, want none", got)
	}
}

// Every pair must return only exact matches, in catalog order, complete,
// and within the 10-cell strip. Curation, not code, keeps the counts in
// range, so this doubles as the catalog's lint.
func TestFindAllPairs(t *testing.T) {
	total := 0
	for s := Style(0); s < NumStyles; s++ {
		for c := Category(0); c < NumCategories; c++ {
			got := Find(s, c)
			if len(got) == 0 {
				t.Errorf("Find(%s, %s): no matches, pair is unreachable", s, c)
			}
			if len(got) > 10 {
				t.Errorf("Find(%s, %s): %d matches, strip shows at most 10", s, c, len(got))
			}
			prev := -1
			for _, idx := range got {
				p := At(idx)
				if p.Style != s || p.Category != c {
					t.Errorf("Find(%s, %s) returned %d %q tagged %s/%s",
						s, c, idx, p.Name, p.Style, p.Category)
				}
				if int(idx) <= prev {
					t.Errorf("Find(%s, %s) out of catalog order at %d", s, c, idx)
				}
				prev = int(idx)
			}
			// completeness against a direct scan
			n := 0
			for i := range catalog {
				if catalog[i].Style == s && catalog[i].Category == c {
					n++
				}
			}
			if n != len(got) {
				t.Errorf("Find(%s, %s) returned %d of %d matches", s, c, len(got), n)
			}
			total += len(got)
		}
	}
	if total != Programs() {
		t.Errorf("pair counts sum to %d, want %d", total, Programs())
	}
}

func TestRetroKit(t *testing.T) {
	want := []uint8{0, 1, 2, 5, 8, 11, 14, 17}
	got := Find(Retro, Kit)
	if len(got) != len(want) {
		t.Fatalf("Find(retro, kit) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Find(retro, kit) = %v, want %v", got, want)
		}
	}
	for i, name := range []string{"Vince Gate", "Neophile", "Blue House"} {
		if Name(got[i]) != name {
			t.Errorf("program %d is %q, want %q", got[i], Name(got[i]), name)
		}
	}
}
