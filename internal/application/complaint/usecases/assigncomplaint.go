package usecases

import (
	"context"

	"redress/internal/domain/complaint"
	"redress/internal/domain/user"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type AssignComplaintCommand struct {
	ComplaintID uint
	StaffEmail  string
}

type AssignComplaintResult struct {
	ComplaintID uint
	StaffID     uint
	StaffName   string
}

// AssignComplaintUseCase routes a complaint to a staff member identified
// by email. The admin route guard has already run; this validates that the
// target exists and actually holds the staff role.
type AssignComplaintUseCase struct {
	complaintRepo complaint.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewAssignComplaintUseCase(
	complaintRepo complaint.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *AssignComplaintUseCase) Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error) {
	uc.logger.Infow("executing assign complaint use case",
		"complaint_id", cmd.ComplaintID, "staff_email", cmd.StaffEmail)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	if len(cmd.StaffEmail) == 0 {
		return nil, errors.NewValidationError("staff email is required")
	}

	staff, err := uc.userRepo.GetByEmail(ctx, cmd.StaffEmail)
	if err != nil {
		uc.logger.Errorw("failed to look up staff member", "email", cmd.StaffEmail, "error", err)
		return nil, errors.NewInternalError("failed to assign complaint")
	}
	if staff == nil || !staff.Role().IsStaff() {
		// A missing account and a non-staff account report identically.
		return nil, errors.NewNotFoundError("staff member not found")
	}

	affected, err := uc.complaintRepo.Assign(ctx, cmd.ComplaintID, staff.ID())
	if err != nil {
		uc.logger.Errorw("failed to assign complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, errors.NewInternalError("failed to assign complaint")
	}
	if affected == 0 {
		return nil, errors.NewNotFoundError("complaint not found")
	}

	uc.logger.Infow("complaint assigned", "complaint_id", cmd.ComplaintID, "staff_id", staff.ID())

	return &AssignComplaintResult{
		ComplaintID: cmd.ComplaintID,
		StaffID:     staff.ID(),
		StaffName:   staff.Name(),
	}, nil
}
