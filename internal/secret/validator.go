package env

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

var (
	ErrInvalidPath  = errors.New("invalid file path")
	ErrEmptyKey     = errors.New("empty key not allowed")
	ErrInvalidKey   = errors.New("invalid key")
	ErrInvalidValue = errors.New("invalid value")
)

const maxValueLength = 100000

func validateFilePath(path string) error {
	if strings.Contains(path, "..") {
		return ErrInvalidPath
	}
	cleanPath := filepath.Clean(path)
	if filepath.IsAbs(cleanPath) || !strings.HasPrefix(cleanPath, "..") {
		return nil
	}
	return ErrInvalidPath
}

func validateKeyValue(key, value string) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	for i, char := range key {
		if i == 0 && !unicode.IsLetter(char) && char != '_' {
			return fmt.Errorf("%w: must start with letter or underscore", ErrInvalidKey)
		}
		if !unicode.IsLetter(char) && !unicode.IsNumber(char) && char != '_' {
			return fmt.Errorf("%w: invalid character %q", ErrInvalidKey, char)
		}
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("%w: maximum length is %d", ErrInvalidValue, maxValueLength)
	}
	return nil
}
