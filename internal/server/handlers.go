package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Babismam/gym-frontend/internal/api"
	"github.com/Babismam/gym-frontend/internal/auth"
	"github.com/Babismam/gym-frontend/internal/booking"
	"github.com/Babismam/gym-frontend/internal/gymapi"
	"github.com/Babismam/gym-frontend/internal/notify"
	"github.com/Babismam/gym-frontend/internal/schedule"
)

type bookingRequest struct {
	ScheduleID int `json:"scheduleId" binding:"required" validate:"required,gt=0"`
}

// WeeklySchedule godoc
// @Summary      Weekly schedule grid
// @Description  Rebuilds the member's schedule view from fresh gym API data.
// @Tags         schedule
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  booking.Snapshot
// @Failure      502  {object}  api.ErrorResponse
// @Router       /schedule/weekly [get]
func WeeklySchedule(manager *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := auth.GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			return
		}

		coordinator := manager.Coordinator(session)
		if err := coordinator.Refresh(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Unable to load the schedule."})
			return
		}

		snapshot, err := coordinator.Snapshot()
		if err != nil {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Unable to load the schedule."})
			return
		}

		c.JSON(http.StatusOK, snapshot)
	}
}

// BookClass godoc
// @Summary      Book a class
// @Description  Books the member into the class, optimistically updating the
// @Description  schedule view before the gym API confirms.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      bookingRequest  true  "Schedule ID"
// @Success      200      {object}  api.MessageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /bookings [post]
func BookClass(manager *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mutateBooking(c, manager, func(coordinator *booking.Coordinator, scheduleID int) error {
			return coordinator.Book(c.Request.Context(), scheduleID)
		}, "Booked successfully!")
	}
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      bookingRequest  true  "Schedule ID"
// @Success      200      {object}  api.MessageResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      502      {object}  api.ErrorResponse
// @Router       /bookings [delete]
func CancelBooking(manager *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		mutateBooking(c, manager, func(coordinator *booking.Coordinator, scheduleID int) error {
			return coordinator.Cancel(c.Request.Context(), scheduleID)
		}, "Cancelled successfully!")
	}
}

func mutateBooking(c *gin.Context, manager *booking.Manager, action func(*booking.Coordinator, int) error, successMessage string) {
	session, ok := auth.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if errs := ValidateStruct(req); len(errs) > 0 {
		RespondWithValidationErrors(c, errs)
		return
	}

	err := action(manager.Coordinator(session), req.ScheduleID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, api.MessageResponse{Message: successMessage})
	case errors.Is(err, booking.ErrNotLoaded):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Load the schedule before booking"})
	case errors.Is(err, booking.ErrSessionUnknown):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class session not found"})
	case gymapi.IsDomainRejection(err):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: gymapi.RejectionMessage(err, "Booking failed.")})
	default:
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Gym service is unavailable"})
	}
}

// AttendanceHistory godoc
// @Summary      Attendance history
// @Description  Returns the member's raw attendance records for the history view.
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   member.AttendanceRecord
// @Failure      502  {object}  api.ErrorResponse
// @Router       /attendance [get]
func AttendanceHistory(apiClient *gymapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := auth.GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			return
		}

		records, err := apiClient.Authenticated(session.Token).MemberAttendance(c.Request.Context(), session.UserID)
		if err != nil {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Unable to load your attendance."})
			return
		}

		c.JSON(http.StatusOK, records)
	}
}

// Notifications godoc
// @Summary      Pending notifications
// @Description  Drains and returns the member's queued feedback messages.
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   notify.Notification
// @Router       /notifications [get]
func Notifications(notifyService *notify.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := auth.GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			return
		}

		notifications, err := notifyService.Drain(c.Request.Context(), session.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch notifications"})
			return
		}
		if notifications == nil {
			notifications = []notify.Notification{}
		}

		c.JSON(http.StatusOK, notifications)
	}
}

// Logout godoc
// @Summary      Logout
// @Description  Drops the member's in-memory schedule view.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Router       /logout [post]
func Logout(manager *booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := auth.GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			return
		}

		manager.Drop(session.UserID)
		c.JSON(http.StatusOK, api.MessageResponse{Message: "Logged out"})
	}
}

type trainerCellView struct {
	schedule.TrainerCell
	Day  schedule.Weekday `json:"day"`
	Time string           `json:"time"`
}

type trainerScheduleView struct {
	TimeSlots []string           `json:"timeSlots"`
	Days      []schedule.Weekday `json:"days"`
	Cells     []trainerCellView  `json:"cells"`
}

// TrainerSchedule godoc
// @Summary      Trainer's own weekly schedule
// @Description  Read-only capacity view of the trainer's classes.
// @Tags         schedule
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  trainerScheduleView
// @Failure      502  {object}  api.ErrorResponse
// @Router       /my-schedule [get]
func TrainerSchedule(apiClient *gymapi.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := auth.GetSession(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
			return
		}

		sessions, err := apiClient.Authenticated(session.Token).TrainerSchedule(c.Request.Context(), session.UserID)
		if err != nil {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Unable to load your schedule."})
			return
		}

		grid := schedule.BuildTrainerGrid(sessions)

		view := trainerScheduleView{
			TimeSlots: grid.TimeSlots,
			Days:      schedule.Days,
			Cells:     []trainerCellView{},
		}
		for _, day := range schedule.Days {
			for _, time := range grid.TimeSlots {
				if cell, ok := grid.Cell(day, time); ok {
					view.Cells = append(view.Cells, trainerCellView{
						TrainerCell: cell,
						Day:         day,
						Time:        time,
					})
				}
			}
		}

		c.JSON(http.StatusOK, view)
	}
}
