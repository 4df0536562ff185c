// Error codes shared by every package in the module. Each code maps to a fixed
// message and a process exit status for the command-line tool.

package errors

import (
	"fmt"
)

type Code int

var errorMessagesByCode map[Code]string

const (
	OK Code = iota
	EmptyInput
	UnsupportedContainer
	UnsupportedKind
	MissingCode
	CodeTooLong
	InvalidArgument
	IOFailed
)

func init() {
	errorMessagesByCode = make(map[Code]string, 8)
	errorMessagesByCode[OK] = "Success"
	errorMessagesByCode[EmptyInput] = "Input contains no symbols"
	errorMessagesByCode[UnsupportedContainer] = "Container could not be decoded"
	errorMessagesByCode[UnsupportedKind] = "File type not supported"
	errorMessagesByCode[MissingCode] = "Symbol has no code in the code table"
	errorMessagesByCode[CodeTooLong] = "Huffman code exceeds 64 bits"
	errorMessagesByCode[InvalidArgument] = "Invalid argument"
	errorMessagesByCode[IOFailed] = "Input/output error"
}

// StrError returns the default message for an error code.
func StrError(code Code) string {
	message, ok := errorMessagesByCode[code]
	if ok {
		return message
	}
	return fmt.Sprintf("error %d not recognized.", int(code))
}

// ExitStatus gives the process exit status the command-line tool uses for an
// error code. Usage errors get 2, everything else 1.
func (code Code) ExitStatus() int {
	switch code {
	case OK:
		return 0
	case InvalidArgument, UnsupportedKind:
		return 2
	default:
		return 1
	}
}
