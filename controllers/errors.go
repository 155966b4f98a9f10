package controllers

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrOrderNotFound = &CustomError{"Order not found"}
	ErrFoodNotFound  = &CustomError{"Food item not found"}
	ErrAgentNotFound = &CustomError{"Delivery agent not found"}
)
