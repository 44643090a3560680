package data

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"reflect"
)

var (
	ErrInvalidDigit = errors.New("value is not a binary digit")
	ErrOverflow     = errors.New("binary value overflows int")
)

// numeric converts any integer or floating point kind, named types included.
func numeric(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func binaryDigit(value any) (int, bool) {
	f, ok := numeric(value)
	if !ok {
		return 0, false
	}
	switch f {
	case 0:
		return 0, true
	case 1:
		return 1, true
	default:
		return 0, false
	}
}

func decodeBinary[T any](digits iter.Seq[T]) (int, error) {
	result := 0
	idx := 0
	for value := range digits {
		digit, ok := binaryDigit(value)
		if !ok {
			return 0, fmt.Errorf("%w: %v at index %d", ErrInvalidDigit, value, idx)
		}
		if result > (math.MaxInt-digit)/2 {
			return 0, fmt.Errorf("%w: at index %d", ErrOverflow, idx)
		}
		result = result*2 + digit
		idx += 1
	}
	return result, nil
}
