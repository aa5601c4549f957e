package models

// ComplaintModel declares real foreign keys: deleting a user removes their
// complaints, deleting an assignee nulls the assignment, deleting a
// complaint removes its comments.
type ComplaintModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Category    string `gorm:"size:100;not null;index"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"type:enum('Pending','In Progress','Resolved');not null;default:'Pending';index"`
	AssignedTo  *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	User     *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Assignee *UserModel `gorm:"foreignKey:AssignedTo;constraint:OnDelete:SET NULL"`
}

func (ComplaintModel) TableName() string {
	return "complaints"
}

type CommentModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	StaffID     uint   `gorm:"not null;index"`
	Comment     string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`

	Complaint *ComplaintModel `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
	Staff     *UserModel      `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

func (CommentModel) TableName() string {
	return "complaint_comments"
}
