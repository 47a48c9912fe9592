/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// Entries without an explicit Status answer with 400 Bad Request.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Province and Message Business Logic Errors
	ErrRoomNameInvalid:     {Code: ErrRoomNameInvalid, Message: "Invalid province name."},
	ErrRoomNameExists:      {Code: ErrRoomNameExists, Message: "Province name already taken.", Status: http.StatusConflict},
	ErrRoomNotFound:        {Code: ErrRoomNotFound, Message: "Province not found.", Status: http.StatusNotFound},
	ErrRoomLocked:          {Code: ErrRoomLocked, Message: "This province is locked.", Status: http.StatusForbidden},
	ErrNotRoomMember:       {Code: ErrNotRoomMember, Message: "You are not a member of this province.", Status: http.StatusForbidden},
	ErrMessageContentEmpty: {Code: ErrMessageContentEmpty, Message: "Message cannot be empty."},
	ErrAuthorNotFound:      {Code: ErrAuthorNotFound, Message: "Message author not found.", Status: http.StatusNotFound},

	// 3xxx: User, Session, and Security Errors
	ErrInvalidUsername:    {Code: ErrInvalidUsername, Message: "Invalid name."},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Invalid password."},
	ErrUserAlreadyExists:  {Code: ErrUserAlreadyExists, Message: "Name taken.", Status: http.StatusConflict},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect username or password.", Status: http.StatusUnauthorized},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "User not found.", Status: http.StatusNotFound},
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrForbidden:          {Code: ErrForbidden, Message: "You are not allowed to do this.", Status: http.StatusForbidden},
	ErrUserMuted:          {Code: ErrUserMuted, Message: "You have been muted.", Status: http.StatusForbidden},

	// 5xxx: Internal System Errors
	ErrUnknown:       {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrHashingFailed: {Code: ErrHashingFailed, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
