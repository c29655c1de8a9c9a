package util

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/napalu/heifopt/types"
)

var (
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
	ErrPointerExpected           = errors.New("expected a pointer")
	ErrParseInt                  = errors.New("value is not a valid integer")
	ErrParseBool                 = errors.New("value is not a valid boolean")
	ErrParseOverflow             = errors.New("value overflows the bound variable")
)

// ConvertString stores value in the variable data points to. flag is only used for error reporting.
func ConvertString(value string, data any, flag string) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %q for flag '%s'", ErrParseBool, value, flag)
		}
		*t = b
	case *int:
		i, err := parseSigned(value, strconv.IntSize, flag)
		if err != nil {
			return err
		}
		*t = int(i)
	case *int8:
		i, err := parseSigned(value, 8, flag)
		if err != nil {
			return err
		}
		*t = int8(i)
	case *int16:
		i, err := parseSigned(value, 16, flag)
		if err != nil {
			return err
		}
		*t = int16(i)
	case *int32:
		i, err := parseSigned(value, 32, flag)
		if err != nil {
			return err
		}
		*t = int32(i)
	case *int64:
		i, err := parseSigned(value, 64, flag)
		if err != nil {
			return err
		}
		*t = i
	case *uint:
		u, err := parseUnsigned(value, strconv.IntSize, flag)
		if err != nil {
			return err
		}
		*t = uint(u)
	case *uint8:
		u, err := parseUnsigned(value, 8, flag)
		if err != nil {
			return err
		}
		*t = uint8(u)
	case *uint16:
		u, err := parseUnsigned(value, 16, flag)
		if err != nil {
			return err
		}
		*t = uint16(u)
	case *uint32:
		u, err := parseUnsigned(value, 32, flag)
		if err != nil {
			return err
		}
		*t = uint32(u)
	case *uint64:
		u, err := parseUnsigned(value, 64, flag)
		if err != nil {
			return err
		}
		*t = u
	default:
		return fmt.Errorf("%w: %T for flag '%s'", ErrUnsupportedTypeConversion, t, flag)
	}

	return nil
}

// Zero resets the variable data points to to its zero value
func Zero(data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("%w: %T", ErrPointerExpected, data)
	}
	v.Elem().SetZero()

	return nil
}

// CanConvert checks that data is a pointer to a type ConvertString supports for the given option type.
// Standalone flags bind to *bool only; Counter flags bind to integer pointers only.
func CanConvert(data any, optionType types.OptionType) (bool, error) {
	if data == nil || reflect.TypeOf(data).Kind() != reflect.Ptr {
		return false, fmt.Errorf("%w: %s", ErrPointerExpected, optionType)
	}

	switch optionType {
	case types.Standalone:
		if _, ok := data.(*bool); ok {
			return true, nil
		}
		return false, fmt.Errorf("%w: %s flags bind to *bool, got %T", ErrUnsupportedTypeConversion, optionType, data)
	case types.Counter:
		if isInteger(data) {
			return true, nil
		}
		return false, fmt.Errorf("%w: %s flags bind to integers, got %T", ErrUnsupportedTypeConversion, optionType, data)
	}

	switch data.(type) {
	case *string, *bool:
		return true, nil
	}
	if isInteger(data) {
		return true, nil
	}

	return false, fmt.Errorf("%w: %T", ErrUnsupportedTypeConversion, data)
}

func isInteger(data any) bool {
	switch data.(type) {
	case *int, *int8, *int16, *int32, *int64, *uint, *uint8, *uint16, *uint32, *uint64:
		return true
	}

	return false
}

func parseSigned(value string, bitSize int, flag string) (int64, error) {
	i, err := strconv.ParseInt(value, 10, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q for flag '%s'", ErrParseOverflow, value, flag)
		}
		return 0, fmt.Errorf("%w: %q for flag '%s'", ErrParseInt, value, flag)
	}

	return i, nil
}

func parseUnsigned(value string, bitSize int, flag string) (uint64, error) {
	u, err := strconv.ParseUint(value, 10, bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q for flag '%s'", ErrParseOverflow, value, flag)
		}
		return 0, fmt.Errorf("%w: %q for flag '%s'", ErrParseInt, value, flag)
	}

	return u, nil
}
