package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/pg-hostel-api/internal/application/analytics"
	"github.com/jhoicas/pg-hostel-api/internal/application/auth"
	"github.com/jhoicas/pg-hostel-api/internal/application/residents"
	"github.com/jhoicas/pg-hostel-api/internal/application/usecase"
	"github.com/jhoicas/pg-hostel-api/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ResidentUC  *residents.ResidentUseCase
	ReportUC    *residents.ReportUseCase
	ComplaintUC *usecase.ComplaintUseCase
	NoticeUC    *usecase.NoticeUseCase
	AssistantUC *usecase.AssistantUseCase
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/me", RequireCapability(access.CapViewProfile), authHandler.Me)

	// Residentes (Admin)
	residentHandler := NewResidentHandler(deps.ResidentUC)
	res := protected.Group("/residents")
	res.Get("/", RequireCapability(access.CapViewResidents), residentHandler.List)
	res.Post("/", RequireCapability(access.CapAddResident), residentHandler.Create)
	res.Put("/:id/room", RequireCapability(access.CapAllocateRoom), residentHandler.AllocateRoom)
	res.Put("/:id/rent", RequireCapability(access.CapSetRentPaid), residentHandler.SetRent)
	res.Put("/:id/entry", RequireCapability(access.CapRecordResidency), residentHandler.RecordEntry)
	res.Put("/:id/exit", RequireCapability(access.CapRecordResidency), residentHandler.RecordExit)

	// Habitaciones (Admin)
	rooms := protected.Group("/rooms")
	rooms.Get("/available", RequireCapability(access.CapAllocateRoom), residentHandler.AvailableRooms)
	rooms.Get("/occupancy", RequireCapability(access.CapViewResidents), residentHandler.Occupancy)

	// Quejas: el caso de uso decide el alcance del listado según el rol
	complaintHandler := NewComplaintHandler(deps.ComplaintUC)
	complaints := protected.Group("/complaints")
	complaints.Get("/", RequireCapability(access.CapViewComplaints), complaintHandler.List)
	complaints.Post("/", RequireCapability(access.CapFileComplaint), complaintHandler.File)
	complaints.Patch("/:id/status", RequireCapability(access.CapUpdateComplaintStatus), complaintHandler.UpdateStatus)

	// Anuncios
	noticeHandler := NewNoticeHandler(deps.NoticeUC)
	notices := protected.Group("/notices")
	notices.Get("/", RequireCapability(access.CapViewNotices), noticeHandler.List)
	notices.Post("/", RequireCapability(access.CapPostNotice), noticeHandler.Post)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", RequireCapability(access.CapViewDashboard), dashboardHandler.GetSummary)

	// Asistente (opcional)
	if deps.AssistantUC != nil {
		assistantHandler := NewAssistantHandler(deps.AssistantUC)
		protected.Post("/assistant/ask", RequireCapability(access.CapAskAssistant), assistantHandler.Ask)
	}

	// Reportes (opcional)
	if deps.ReportUC != nil {
		reportHandler := NewReportHandler(deps.ReportUC)
		protected.Get("/reports/residents.pdf", RequireCapability(access.CapExportReport), reportHandler.ResidentsPDF)
	}
}
