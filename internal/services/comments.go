package services

import (
	"time"

	"myblog/internal/db"
	"myblog/internal/models"
)

// CommentRow is one flat comment row as fetched from the store, with the
// author's username joined in. RootID is only populated by the recursive
// descendant query and names the root comment the row transitively
// belongs to.
type CommentRow struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
	ParentID  *uint     `json:"parent_id"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	RootID    uint      `json:"-"`
}

// CommentNode is a comment with its replies. Depending on the strategy
// that produced it, Replies is either fully nested (full materialize) or
// a flat list of all transitive descendants tagged with their original
// parent_id (paginated roots).
type CommentNode struct {
	ID        uint           `json:"id"`
	UserID    uint           `json:"user_id"`
	PostID    uint           `json:"post_id"`
	ParentID  *uint          `json:"parent_id"`
	Content   string         `json:"content"`
	Username  string         `json:"username"`
	CreatedAt time.Time      `json:"created_at"`
	Replies   []*CommentNode `json:"replies"`
}

func newCommentNode(row CommentRow) *CommentNode {
	return &CommentNode{
		ID:        row.ID,
		UserID:    row.UserID,
		PostID:    row.PostID,
		ParentID:  row.ParentID,
		Content:   row.Content,
		Username:  row.Username,
		CreatedAt: row.CreatedAt,
		Replies:   []*CommentNode{},
	}
}

// BuildCommentTree turns a flat, parent-referencing row set into a forest.
// Two linear passes: the first indexes every row by id, the second attaches
// each non-root node to its parent. A node whose parent is absent from rows
// (the parent was deleted after the reply was written) is an orphan and is
// dropped from the result, not promoted to a root. Root order follows the
// input order, so callers fetch rows already sorted.
func BuildCommentTree(rows []CommentRow) []*CommentNode {
	index := make(map[uint]*CommentNode, len(rows))
	for _, row := range rows {
		index[row.ID] = newCommentNode(row)
	}

	roots := make([]*CommentNode, 0)
	for _, row := range rows {
		node := index[row.ID]
		if row.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := index[*row.ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		}
		// orphan: parent not in the fetched set, drop
	}
	return roots
}

// AttachFlatReplies builds one node per root and hangs each root's
// transitive descendants off it as a single flat list, preserving every
// reply's own parent_id so a client can re-nest. Replies whose RootID is
// not among roots are ignored. The flat shape is deliberate: consumers
// only render one extra level of indentation.
func AttachFlatReplies(roots []CommentRow, descendants []CommentRow) []*CommentNode {
	byRoot := make(map[uint][]*CommentNode, len(roots))
	for _, row := range roots {
		byRoot[row.ID] = []*CommentNode{}
	}
	for _, row := range descendants {
		if _, ok := byRoot[row.RootID]; !ok {
			continue
		}
		byRoot[row.RootID] = append(byRoot[row.RootID], newCommentNode(row))
	}

	nodes := make([]*CommentNode, 0, len(roots))
	for _, row := range roots {
		node := newCommentNode(row)
		node.Replies = byRoot[row.ID]
		nodes = append(nodes, node)
	}
	return nodes
}

const commentSelect = `pc.id, pc.user_id, pc.post_id, pc.parent_id, pc.content, pc.created_at,
	COALESCE(u.username, '') AS username`

// ListCommentTree is the full-materialize strategy: every comment of the
// post in one query, nested to arbitrary depth. Zero comments is an empty
// forest, not an error.
func ListCommentTree(postID uint) ([]*CommentNode, error) {
	var rows []CommentRow
	err := db.DB.Table("post_comments AS pc").
		Select(commentSelect).
		Joins("LEFT JOIN users u ON u.id = pc.user_id").
		Where("pc.post_id = ?", postID).
		Order("pc.created_at ASC, pc.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(rows), nil
}

// ListCommentPage is the paginated strategy: root comments are the unit of
// pagination, and each returned root carries all of its transitive
// descendants as a flat reply list. Requesting a page past the end yields
// empty data with correct metadata.
func ListCommentPage(postID uint, page, pageSize int) ([]*CommentNode, Pagination, error) {
	page, pageSize = NormalizePage(page, pageSize)

	var totalCount int64
	err := db.DB.Model(&models.PostComment{}).
		Where("post_id = ? AND parent_id IS NULL", postID).
		Count(&totalCount).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	pagination := NewPagination(page, pageSize, totalCount)

	var roots []CommentRow
	err = db.DB.Table("post_comments AS pc").
		Select(commentSelect).
		Joins("LEFT JOIN users u ON u.id = pc.user_id").
		Where("pc.post_id = ? AND pc.parent_id IS NULL", postID).
		Order("pc.created_at ASC, pc.id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Scan(&roots).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	if len(roots) == 0 {
		return []*CommentNode{}, pagination, nil
	}

	rootIDs := make([]uint, len(roots))
	for i, r := range roots {
		rootIDs[i] = r.ID
	}

	var descendants []CommentRow
	err = db.DB.Raw(`
		WITH RECURSIVE thread AS (
			SELECT id, id AS root_id
			FROM post_comments
			WHERE post_id = ? AND parent_id IS NULL AND id IN ?
			UNION ALL
			SELECT pc.id, t.root_id
			FROM post_comments pc
			INNER JOIN thread t ON pc.parent_id = t.id
		)
		SELECT `+commentSelect+`, t.root_id
		FROM post_comments pc
		INNER JOIN thread t ON t.id = pc.id
		LEFT JOIN users u ON u.id = pc.user_id
		WHERE pc.parent_id IS NOT NULL
		ORDER BY pc.created_at ASC, pc.id ASC`,
		postID, rootIDs).
		Scan(&descendants).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return AttachFlatReplies(roots, descendants), pagination, nil
}
