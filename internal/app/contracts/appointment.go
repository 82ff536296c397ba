package contracts

import (
	"context"

	"github.com/r-weda/my-afya-link/internal/app/models"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/requests"
	"github.com/r-weda/my-afya-link/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, userID, bearerToken string, request *requests.CreateAppointment) (*responses.CreateAppointment, error)
	FindAllByUser(ctx context.Context, userID string) ([]responses.Appointment, error)
	CancelAppointment(ctx context.Context, userID, appointmentID string) error
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAppointmentsByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID, status string) error
	MarkReminderSent(ctx context.Context, appointmentID string) error
}
