package contracts

import (
	"context"

	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

type ReminderUsecase interface {
	// SendReminder runs the dispatch pipeline: provider config preflight,
	// bearer token verification, conditional appointment ownership check,
	// input validation, message composition, one provider call and a
	// best-effort reminder-sent flag update.
	SendReminder(ctx context.Context, authorizationHeader string, request *requests.SendReminder) (*responses.SendReminder, error)
}
