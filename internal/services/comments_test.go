package services

import (
	"testing"
	"time"
)

func uintPtr(v uint) *uint {
	return &v
}

func row(id uint, parentID *uint) CommentRow {
	return CommentRow{
		ID:        id,
		UserID:    1,
		PostID:    5,
		ParentID:  parentID,
		Content:   "c",
		Username:  "alice",
		CreatedAt: time.Unix(int64(id), 0),
	}
}

func TestBuildCommentTreeNesting(t *testing.T) {
	// (1,nil) <- (2,1) <- (3,2); (4,99) is an orphan
	rows := []CommentRow{
		row(1, nil),
		row(2, uintPtr(1)),
		row(3, uintPtr(2)),
		row(4, uintPtr(99)),
	}

	roots := BuildCommentTree(rows)

	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].ID != 1 {
		t.Errorf("expected root id 1, got %d", roots[0].ID)
	}
	if len(roots[0].Replies) != 1 || roots[0].Replies[0].ID != 2 {
		t.Fatalf("expected reply 2 under root 1, got %+v", roots[0].Replies)
	}
	nested := roots[0].Replies[0]
	if len(nested.Replies) != 1 || nested.Replies[0].ID != 3 {
		t.Fatalf("expected reply 3 under comment 2, got %+v", nested.Replies)
	}
}

func TestBuildCommentTreeCompleteness(t *testing.T) {
	rows := []CommentRow{
		row(1, nil),
		row(2, nil),
		row(3, uintPtr(1)),
		row(4, uintPtr(1)),
		row(5, uintPtr(2)),
		row(6, uintPtr(4)),
	}

	roots := BuildCommentTree(rows)

	seen := map[uint]int{}
	var walk func(nodes []*CommentNode)
	walk = func(nodes []*CommentNode) {
		for _, n := range nodes {
			seen[n.ID]++
			walk(n.Replies)
		}
	}
	walk(roots)

	if len(seen) != len(rows) {
		t.Fatalf("expected %d distinct comments in tree, got %d", len(rows), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("comment %d appears %d times, expected once", id, count)
		}
	}
}

func TestBuildCommentTreeOrphanDrop(t *testing.T) {
	rows := []CommentRow{
		row(1, nil),
		row(2, uintPtr(42)), // parent absent
	}

	roots := BuildCommentTree(rows)

	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	var walk func(nodes []*CommentNode) bool
	walk = func(nodes []*CommentNode) bool {
		for _, n := range nodes {
			if n.ID == 2 {
				return true
			}
			if walk(n.Replies) {
				return true
			}
		}
		return false
	}
	if walk(roots) {
		t.Error("orphan comment 2 must not appear anywhere in the tree")
	}
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	roots := BuildCommentTree(nil)
	if roots == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(roots) != 0 {
		t.Fatalf("expected no roots, got %d", len(roots))
	}
}

func TestBuildCommentTreeRootOrder(t *testing.T) {
	rows := []CommentRow{
		row(1, nil),
		row(2, nil),
		row(3, nil),
	}

	roots := BuildCommentTree(rows)

	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}
	for i, want := range []uint{1, 2, 3} {
		if roots[i].ID != want {
			t.Errorf("root %d: expected id %d, got %d", i, want, roots[i].ID)
		}
	}
}

func descendant(id, rootID uint, parentID uint) CommentRow {
	r := row(id, uintPtr(parentID))
	r.RootID = rootID
	return r
}

func TestAttachFlatRepliesGrouping(t *testing.T) {
	roots := []CommentRow{
		row(1, nil),
		row(2, nil),
	}
	descendants := []CommentRow{
		descendant(3, 1, 1),
		descendant(4, 1, 3), // reply to a reply, still grouped under root 1
		descendant(5, 2, 2),
		descendant(6, 99, 99), // belongs to a root outside this page
	}

	nodes := AttachFlatReplies(roots, descendants)

	if len(nodes) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(nodes))
	}
	if len(nodes[0].Replies) != 2 {
		t.Fatalf("expected 2 replies under root 1, got %d", len(nodes[0].Replies))
	}
	if len(nodes[1].Replies) != 1 || nodes[1].Replies[0].ID != 5 {
		t.Fatalf("expected reply 5 under root 2, got %+v", nodes[1].Replies)
	}
}

func TestAttachFlatRepliesStaysFlat(t *testing.T) {
	roots := []CommentRow{row(1, nil)}
	descendants := []CommentRow{
		descendant(2, 1, 1),
		descendant(3, 1, 2),
	}

	nodes := AttachFlatReplies(roots, descendants)

	replies := nodes[0].Replies
	if len(replies) != 2 {
		t.Fatalf("expected flat list of 2 replies, got %d", len(replies))
	}
	// Depth stays at one level; original parent ids are preserved so a
	// client can re-nest.
	for _, reply := range replies {
		if len(reply.Replies) != 0 {
			t.Errorf("reply %d must not be re-nested", reply.ID)
		}
	}
	if replies[1].ParentID == nil || *replies[1].ParentID != 2 {
		t.Errorf("reply 3 must keep its original parent_id 2, got %v", replies[1].ParentID)
	}
}

func TestAttachFlatRepliesNoDescendants(t *testing.T) {
	roots := []CommentRow{row(1, nil)}

	nodes := AttachFlatReplies(roots, nil)

	if len(nodes) != 1 {
		t.Fatalf("expected 1 root, got %d", len(nodes))
	}
	if nodes[0].Replies == nil || len(nodes[0].Replies) != 0 {
		t.Fatalf("expected empty replies list, got %+v", nodes[0].Replies)
	}
}
