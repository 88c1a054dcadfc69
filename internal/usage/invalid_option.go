package usage

import "fmt"

// InvalidOption is returned when an option is not valid for the command.
func InvalidOption(flag string) *Error {
	return newError(ErrInvalidOption, fmt.Sprintf("The %q option does not exist.", flag), nil)
}

// OptionRequiresValue is returned when a value option is given without one.
func OptionRequiresValue(flag string) *Error {
	return newError(ErrInvalidOption, fmt.Sprintf("The %q option requires a value.", flag), nil)
}

// OptionTakesNoValue is returned when a value is attached to a switch.
func OptionTakesNoValue(flag string) *Error {
	return newError(ErrInvalidOption, fmt.Sprintf("The %q option does not accept a value.", flag), nil)
}
