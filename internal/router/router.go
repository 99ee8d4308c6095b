package router

import (
	"hrm/backend/foundation/web"
	"hrm/backend/internal/auth"
	"hrm/backend/internal/middleware"
	"hrm/backend/internal/pkg/config"
	"hrm/backend/internal/pkg/repository/postgresql"
	"hrm/backend/internal/repository/postgres/attendance"
	"hrm/backend/internal/repository/postgres/leave"
	"hrm/backend/internal/repository/postgres/schedule"
	"hrm/backend/internal/repository/postgres/shift"
	"hrm/backend/internal/repository/postgres/user"

	"github.com/redis/go-redis/v9"

	attendance_controller "hrm/backend/internal/controller/http/v1/attendance"
	auth_controller "hrm/backend/internal/controller/http/v1/auth"
	leave_controller "hrm/backend/internal/controller/http/v1/leave"
	schedule_controller "hrm/backend/internal/controller/http/v1/schedule"
	shift_controller "hrm/backend/internal/controller/http/v1/shift"
	user_controller "hrm/backend/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	cfg        *config.Config
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	cfg *config.Config,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		cfg,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CORSMiddleware(nil))

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	shiftPostgres := shift.NewRepository(r.postgresDB)
	schedulePostgres := schedule.NewRepository(r.postgresDB)
	leavePostgres := leave.NewRepository(r.postgresDB, leave.Policy{HalfDayMaxHours: r.cfg.HalfDayMaxHours})
	attendancePostgres := attendance.NewRepository(r.postgresDB, r.cfg.LateGraceMinutes)

	// controller
	authController := auth_controller.NewController(userPostgres, r.auth)
	userController := user_controller.NewController(userPostgres, r.cfg.BaseUrl)
	shiftController := shift_controller.NewController(shiftPostgres)
	scheduleController := schedule_controller.NewController(schedulePostgres)
	leaveController := leave_controller.NewController(leavePostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres, r.redisDB)

	// #auth
	r.Post("/api/auth/login", authController.SignIn)
	r.Post("/api/auth/refresh", authController.RefreshToken)

	// uploaded files (profile images, leave attachments, clock-in photos)
	r.Static("/uploads", "./uploads")

	// #user
	r.Get("/api/admin/users", userController.GetUserList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/admin/users/export", userController.ExportEmployees, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/admin/users/badges", userController.GetBadgeSheet, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/admin/users/:id", userController.GetUserDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/admin/users", userController.CreateUser, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/admin/users/:id", userController.UpdateUserColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/admin/users/:id", userController.DeleteUser, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #stats
	r.Get("/api/admin/stats", attendanceController.GetStats, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Post("/api/attendance/clock-in", attendanceController.ClockIn, middleware.Authenticate(r.auth))
	r.Post("/api/attendance/clock-out", attendanceController.ClockOut, middleware.Authenticate(r.auth))
	r.Get("/api/attendance/history", attendanceController.GetHistory, middleware.Authenticate(r.auth))
	r.Get("/api/admin/attendance/report", attendanceController.ExportMonthlyReport, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #shift
	r.Get("/api/admin/shifts", shiftController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/admin/shifts/:id", shiftController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/admin/shifts", shiftController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/admin/shifts/:id", shiftController.UpdateAll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/admin/shifts/:id", shiftController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #schedule
	r.Get("/api/schedule/my-schedule", scheduleController.GetMySchedule, middleware.Authenticate(r.auth))
	r.Get("/api/admin/schedule/schedules", scheduleController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/admin/schedule/assign", scheduleController.Assign, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #holiday
	r.Get("/api/admin/schedule/holidays", scheduleController.GetHolidayList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/admin/schedule/holidays", scheduleController.CreateHoliday, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/admin/schedule/holidays/:id", scheduleController.UpdateHoliday, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/admin/schedule/holidays/:id", scheduleController.DeleteHoliday, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #leave
	r.Get("/api/leaves/summary", leaveController.GetSummary, middleware.Authenticate(r.auth))
	r.Get("/api/leaves/history", leaveController.GetHistory, middleware.Authenticate(r.auth))
	r.Post("/api/leaves", leaveController.Create, middleware.Authenticate(r.auth))
	r.Put("/api/leaves/:id/cancel", leaveController.Cancel, middleware.Authenticate(r.auth))
	r.Get("/api/leaves/admin/requests", leaveController.GetAdminList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/leaves/admin/requests/:id/status", leaveController.Decide, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
