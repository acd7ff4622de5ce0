package entity

// Relation is one directed edge of the undirected "related folders"
// graph. Reads always union both directions, so (A, B) and (B, A) are
// equivalent.
//
// A folder created without a parent gets a single row with a nil
// ChildID. That row marks graph membership only, it is not an edge.
type Relation struct {
	ID       int64  `gorm:"primaryKey"`
	ParentID int64  `gorm:"not null;index"` // References: folders(id)
	ChildID  *int64 `gorm:"index"`          // References: folders(id)
}

// IsPlaceholder reports whether the row only marks membership.
func (r *Relation) IsPlaceholder() bool {
	return r.ChildID == nil
}
