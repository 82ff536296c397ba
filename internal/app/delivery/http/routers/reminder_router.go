package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/r-weda/my-afya-link/internal/app/delivery/http/controllers"
)

// The reminder endpoint authenticates inside its own pipeline so that a
// missing token, a bad payload, and a provider failure each surface in
// the dispatcher's wire format. It therefore does not sit behind the
// Authenticate middleware.
func attachReminderRoutes(router chi.Router, reminderController *controllers.ReminderController) {
	router.Post("/", reminderController.SendReminder)
}
