package collector

import "testing"

func TestOfferWithinCapacityKeepsAll(t *testing.T) {
	c := New(3)
	c.Offer(Candidate{ID: 1, Score: 500})
	c.Offer(Candidate{ID: 2, Score: 900})
	c.Offer(Candidate{ID: 3, Score: 100})

	out := c.Drain(10)
	if len(out) != 3 {
		t.Fatalf("Drain len = %d, want 3", len(out))
	}
	want := []uint32{2, 1, 3} // descending by score: 900, 500, 100
	for i, id := range want {
		if out[i].ID != id {
			t.Errorf("out[%d].ID = %d, want %d", i, out[i].ID, id)
		}
	}
}

func TestOfferEvictsWeakestWhenFull(t *testing.T) {
	c := New(2)
	c.Offer(Candidate{ID: 1, Score: 300})
	c.Offer(Candidate{ID: 2, Score: 700})
	c.Offer(Candidate{ID: 3, Score: 500}) // should evict id 1 (weakest, 300)

	out := c.Drain(10)
	if len(out) != 2 {
		t.Fatalf("Drain len = %d, want 2", len(out))
	}
	if out[0].ID != 2 || out[1].ID != 3 {
		t.Errorf("got ids [%d,%d], want [2,3]", out[0].ID, out[1].ID)
	}
}

func TestOfferDropsWhenNotBetterThanMinimum(t *testing.T) {
	c := New(1)
	c.Offer(Candidate{ID: 1, Score: 900})
	c.Offer(Candidate{ID: 2, Score: 100}) // worse than current min, dropped

	out := c.Drain(10)
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("expected only id 1 to survive, got %+v", out)
	}
}

func TestTiebreakByStartThenID(t *testing.T) {
	c := New(3)
	c.Offer(Candidate{ID: 5, Score: 500, Start: 10})
	c.Offer(Candidate{ID: 2, Score: 500, Start: 5})
	c.Offer(Candidate{ID: 1, Score: 500, Start: 5})

	out := c.Drain(10)
	// equal scores: tie-break start asc, then id asc
	if out[0].ID != 1 || out[1].ID != 2 || out[2].ID != 5 {
		t.Errorf("tiebreak order wrong: got ids [%d,%d,%d], want [1,2,5]",
			out[0].ID, out[1].ID, out[2].ID)
	}
}

func TestDrainTruncatesToMaxResults(t *testing.T) {
	c := New(5)
	for i := uint32(1); i <= 5; i++ {
		c.Offer(Candidate{ID: i, Score: int(i) * 100})
	}
	out := c.Drain(2)
	if len(out) != 2 {
		t.Fatalf("Drain(2) len = %d, want 2", len(out))
	}
	if out[0].ID != 5 || out[1].ID != 4 {
		t.Errorf("top 2 = [%d,%d], want [5,4]", out[0].ID, out[1].ID)
	}
}

func TestDrainResetsForReuse(t *testing.T) {
	c := New(2)
	c.Offer(Candidate{ID: 1, Score: 500})
	c.Drain(10)

	if c.Len() != 0 {
		t.Fatalf("Len() after Drain = %d, want 0", c.Len())
	}
	c.Offer(Candidate{ID: 2, Score: 700})
	out := c.Drain(10)
	if len(out) != 1 || out[0].ID != 2 {
		t.Errorf("collector not cleanly reset between queries: %+v", out)
	}
}

func TestEmptyDrain(t *testing.T) {
	c := New(4)
	out := c.Drain(10)
	if len(out) != 0 {
		t.Errorf("Drain on empty collector = %+v, want empty", out)
	}
}
