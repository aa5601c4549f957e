package usecases

import (
	"context"
	"io"

	"redress/internal/domain/complaint"
	"redress/internal/infrastructure/export"
	"redress/internal/shared/authorization"
	"redress/internal/shared/errors"
	"redress/internal/shared/logger"
)

type ExportComplaintsCommand struct {
	ActorID   uint
	ActorRole authorization.UserRole
	Writer    io.Writer
}

// ExportComplaintsUseCase streams the role-scoped complaint set as CSV.
// Admins export everything, staff their assignments, submitters their own
// rows. Pagination is disabled for the export query.
type ExportComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewExportComplaintsUseCase(complaintRepo complaint.Repository, logger logger.Interface) *ExportComplaintsUseCase {
	return &ExportComplaintsUseCase{complaintRepo: complaintRepo, logger: logger}
}

func (uc *ExportComplaintsUseCase) Execute(ctx context.Context, cmd ExportComplaintsCommand) error {
	uc.logger.Infow("executing export complaints use case", "actor_id", cmd.ActorID, "actor_role", cmd.ActorRole)

	if cmd.Writer == nil {
		return errors.NewValidationError("export writer is required")
	}

	filter := complaint.Filter{}
	actorID := cmd.ActorID
	switch cmd.ActorRole {
	case authorization.RoleAdmin:
		// unscoped
	case authorization.RoleStaff:
		filter.AssignedTo = &actorID
	default:
		filter.UserID = &actorID
	}

	complaints, _, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load complaints for export", "error", err)
		return errors.NewInternalError("failed to export complaints")
	}

	if err := export.WriteComplaintsCSV(cmd.Writer, complaints); err != nil {
		uc.logger.Errorw("failed to write CSV export", "error", err)
		return errors.NewInternalError("failed to export complaints")
	}

	uc.logger.Infow("complaints exported", "count", len(complaints))
	return nil
}
