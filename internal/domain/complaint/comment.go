package complaint

import (
	"fmt"
	"time"
)

// Comment is a staff note on a complaint. Only the staff member currently
// assigned to the complaint may author one; that invariant is enforced
// transactionally at insert time, not here.
type Comment struct {
	id          uint
	complaintID uint
	staffID     uint
	content     string
	createdAt   time.Time
}

func NewComment(complaintID, staffID uint, content string) (*Comment, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if staffID == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("comment cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("comment exceeds maximum length of 5000 characters")
	}

	return &Comment{
		complaintID: complaintID,
		staffID:     staffID,
		content:     content,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructComment(
	id uint,
	complaintID uint,
	staffID uint,
	content string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if staffID == 0 {
		return nil, fmt.Errorf("staff ID is required")
	}

	return &Comment{
		id:          id,
		complaintID: complaintID,
		staffID:     staffID,
		content:     content,
		createdAt:   createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) ComplaintID() uint {
	return c.complaintID
}

func (c *Comment) StaffID() uint {
	return c.staffID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
