package complaint

import (
	"fmt"
	"time"

	vo "redress/internal/domain/complaint/valueobjects"
	"redress/internal/shared/authorization"
)

// Complaint is a grievance filed by a submitter. It starts Pending and
// unassigned; an admin later routes it to a staff member.
type Complaint struct {
	id          uint
	userID      uint
	category    string
	description string
	status      vo.Status
	assignedTo  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewComplaint(userID uint, category, description string) (*Complaint, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(category) == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if len(category) > 100 {
		return nil, fmt.Errorf("category exceeds maximum length of 100 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	now := time.Now()
	return &Complaint{
		userID:      userID,
		category:    category,
		description: description,
		status:      vo.StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	userID uint,
	category string,
	description string,
	status vo.Status,
	assignedTo *uint,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Complaint{
		id:          id,
		userID:      userID,
		category:    category,
		description: description,
		status:      status,
		assignedTo:  assignedTo,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Complaint) ID() uint {
	return c.id
}

func (c *Complaint) UserID() uint {
	return c.userID
}

func (c *Complaint) Category() string {
	return c.category
}

func (c *Complaint) Description() string {
	return c.description
}

func (c *Complaint) Status() vo.Status {
	return c.status
}

func (c *Complaint) AssignedTo() *uint {
	return c.assignedTo
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// AssignTo routes the complaint to a staff member. Assignment is one-way;
// there is no unassign operation, only reassignment.
func (c *Complaint) AssignTo(staffID uint) error {
	if staffID == 0 {
		return fmt.Errorf("staff ID cannot be zero")
	}
	c.assignedTo = &staffID
	c.updatedAt = time.Now()
	return nil
}

func (c *Complaint) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if c.status == newStatus {
		return nil
	}
	if !c.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", c.status, newStatus)
	}
	c.status = newStatus
	c.updatedAt = time.Now()
	return nil
}

// IsAssignedTo reports whether staffID is the current assignee.
func (c *Complaint) IsAssignedTo(staffID uint) bool {
	return c.assignedTo != nil && *c.assignedTo == staffID
}

// CanBeViewedBy implements the visibility rule: admins see everything,
// staff see what is assigned to them, submitters see their own rows.
func (c *Complaint) CanBeViewedBy(userID uint, role authorization.UserRole) bool {
	switch role {
	case authorization.RoleAdmin:
		return true
	case authorization.RoleStaff:
		return c.IsAssignedTo(userID)
	default:
		return c.userID == userID
	}
}
