package router

import (
	"event_manager/handler"
	"event_manager/middleware"
	"event_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	auth := app.Group("/auth", logger.New())
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)

	api := app.Group("/api", logger.New(), middleware.Protected())

	user := api.Group("/users")
	user.Get("/", handler.GetUsers)
	user.Get("/:userId", validate.GetById("userId"), handler.GetUserById)
	user.Delete("/:userId", validate.GetById("userId"), handler.DeleteUser)

	customer := api.Group("/customers")
	customer.Get("/", handler.GetCustomers)
	customer.Post("/", validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:custId", validate.EditCustomer("custId"), handler.EditCustomer)
	customer.Delete("/:custId", validate.GetById("custId"), handler.DeleteCustomer)

	attendee := api.Group("/attendees")
	attendee.Get("/", handler.GetAttendees)
	attendee.Post("/", validate.CreateAttendee(), handler.CreateAttendee)
	attendee.Put("/:attendeeId", validate.EditAttendee("attendeeId"), handler.EditAttendee)
	attendee.Delete("/:attendeeId", validate.GetById("attendeeId"), handler.DeleteAttendee)

	employee := api.Group("/employees")
	employee.Get("/", handler.GetEmployees)
	employee.Post("/", validate.CreateEmployee(), handler.CreateEmployee)
	employee.Put("/:empId", validate.EditEmployee("empId"), handler.EditEmployee)
	employee.Delete("/:empId", validate.GetById("empId"), handler.DeleteEmployee)

	role := api.Group("/roles")
	role.Get("/", handler.GetRoles)
	role.Get("/:roleId", validate.GetById("roleId"), handler.GetRoleById)
	role.Post("/", validate.CreateRole(), handler.CreateRole)
	role.Put("/:roleId", validate.EditRole("roleId"), handler.EditRole)
	role.Delete("/:roleId", validate.GetById("roleId"), handler.DeleteRole)

	venue := api.Group("/venues")
	venue.Get("/", handler.GetVenues)
	venue.Get("/slug/:slug", handler.GetVenueBySlug)
	venue.Post("/", validate.CreateVenue(), handler.CreateVenue)
	venue.Put("/:venueId", validate.EditVenue("venueId"), handler.EditVenue)
	venue.Delete("/:venueId", validate.GetById("venueId"), handler.DeleteVenue)

	catering := api.Group("/caterings")
	catering.Get("/", handler.GetCaterings)
	catering.Post("/", validate.CreateCatering(), handler.CreateCatering)
	catering.Put("/:cateringId", validate.EditCatering("cateringId"), handler.EditCatering)
	catering.Delete("/:cateringId", validate.GetById("cateringId"), handler.DeleteCatering)

	api.Get("/event-types", handler.GetEventTypes)

	event := api.Group("/events")
	event.Get("/", validate.FilterEvents(), handler.GetEvents)
	event.Get("/:eventId", validate.GetById("eventId"), handler.GetEventById)
	event.Post("/", validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:eventId", validate.EditEvent("eventId"), handler.EditEvent)
	event.Delete("/:eventId", validate.GetById("eventId"), handler.DeleteEvent)

	event.Post("/:eventId/employees/:empId", handler.AssignEmployee)
	event.Delete("/:eventId/employees/:empId", handler.UnassignEmployee)
	event.Post("/:eventId/caterings", handler.BookCatering)
	event.Delete("/:eventId/caterings/:cateringId", handler.CancelCatering)

	event.Get("/:eventId/tickets", validate.GetById("eventId"), handler.GetEventTickets)
	event.Post("/:eventId/tickets", validate.CreateTicket("eventId"), handler.CreateTicket)
	event.Get("/:eventId/payments", validate.GetById("eventId"), handler.GetEventPayments)
	event.Post("/:eventId/payments", validate.CreateEventPayment("eventId"), handler.CreateEventPayment)

	soldTicket := api.Group("/sold-tickets")
	soldTicket.Get("/", handler.GetSoldTickets)
	soldTicket.Post("/", validate.PurchaseTicket(), handler.PurchaseTicket)
	soldTicket.Get("/:soldTicketId/qr", validate.GetById("soldTicketId"), handler.GetSoldTicketQR)
}
