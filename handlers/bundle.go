package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Booking   *BookingHandler
	Dashboard *DashboardHandler
	Tutorial  *TutorialHandler
	Help      *HelpHandler
	Auth      *AuthHandler
	Fixers    *FixerHandler
}
