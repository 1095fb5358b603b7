package services

import (
	"math/rand"
	"testing"
	"time"
)

func randomRankedComment(r *rand.Rand, base time.Time) *RankedComment {
	return &RankedComment{
		IsPinned:        r.Intn(2) == 0,
		IsLikedByAuthor: r.Intn(2) == 0,
		LikesCount:      int64(r.Intn(4)),
		CreatedAt:       base.Add(time.Duration(r.Intn(3)) * time.Minute),
		viewerReplied:   r.Intn(2) == 0,
		authorFollowed:  r.Intn(2) == 0,
	}
}

// TestCommentLessTotalOrder checks the comparator is a strict weak
// ordering over randomized inputs: irreflexive, asymmetric, and
// transitive, including transitivity of incomparability.
func TestCommentLessTotalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	base := time.Now()

	equiv := func(a, b *RankedComment) bool {
		return !commentLess(a, b) && !commentLess(b, a)
	}

	for i := 0; i < 2000; i++ {
		a := randomRankedComment(r, base)
		b := randomRankedComment(r, base)
		c := randomRankedComment(r, base)

		if commentLess(a, a) {
			t.Fatal("Comparator is not irreflexive")
		}
		if commentLess(a, b) && commentLess(b, a) {
			t.Fatalf("Comparator is not asymmetric: %+v vs %+v", a, b)
		}
		if commentLess(a, b) && commentLess(b, c) && !commentLess(a, c) {
			t.Fatalf("Comparator is not transitive: %+v, %+v, %+v", a, b, c)
		}
		if equiv(a, b) && equiv(b, c) && !equiv(a, c) {
			t.Fatalf("Incomparability is not transitive: %+v, %+v, %+v", a, b, c)
		}
	}
}

// TestCommentLessPriority pins the key order: each higher-priority key
// dominates all lower ones.
func TestCommentLessPriority(t *testing.T) {
	now := time.Now()
	losing := &RankedComment{
		LikesCount:     100,
		CreatedAt:      now,
		viewerReplied:  true,
		authorFollowed: true,
	}
	winning := &RankedComment{
		IsPinned:  true,
		CreatedAt: now.Add(-time.Hour),
	}
	if !commentLess(winning, losing) {
		t.Error("Expected a pinned comment to outrank engagement and recency")
	}
	if commentLess(losing, winning) {
		t.Error("Expected the unpinned comment to rank lower")
	}

	liked := &RankedComment{IsLikedByAuthor: true, CreatedAt: now.Add(-time.Hour)}
	if !commentLess(liked, losing) {
		t.Error("Expected an author-liked comment to outrank like count")
	}
}
