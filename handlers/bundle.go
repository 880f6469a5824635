package handlers

import (
	"hostnhome/services/booking"
	"hostnhome/services/quotation"
	"hostnhome/services/resort"
	"hostnhome/services/user"
)

// Services are the dependencies the HTTP layer talks to.
type Services struct {
	Users      user.UserService
	Wizard     quotation.WizardSessionService
	Quotations quotation.QuotationService
	Bookings   booking.BookingService
	Resorts    resort.ResortService
}

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserHandler      *UserHandler
	WizardHandler    *WizardHandler
	QuotationHandler *QuotationHandler
	BookingHandler   *BookingHandler
	ResortHandler    *ResortHandler
	AdminHandler     *AdminHandler
}

func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		UserHandler:      &UserHandler{UserService: s.Users},
		WizardHandler:    &WizardHandler{Sessions: s.Wizard},
		QuotationHandler: &QuotationHandler{Quotations: s.Quotations},
		BookingHandler:   &BookingHandler{Bookings: s.Bookings},
		ResortHandler:    &ResortHandler{Resorts: s.Resorts},
		AdminHandler:     NewAdminHandler(s.Quotations),
	}
}
