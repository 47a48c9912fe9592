/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1007
)

// 2xxx: Province and Message Business Logic Errors
const (
	// ErrRoomNameInvalid indicates that a province name is empty or too long.
	ErrRoomNameInvalid = 2101

	// ErrRoomNameExists indicates that a province with the same name already exists.
	ErrRoomNameExists = 2102

	// ErrRoomNotFound indicates that the referenced province does not exist.
	ErrRoomNotFound = 2103

	// ErrRoomLocked indicates that the province is locked and the caller may not join it.
	ErrRoomLocked = 2104

	// ErrNotRoomMember indicates that the caller does not belong to the province.
	ErrNotRoomMember = 2105

	// ErrMessageContentEmpty indicates that the message content is blank.
	ErrMessageContentEmpty = 2201

	// ErrAuthorNotFound indicates that the message author does not exist at write time.
	ErrAuthorNotFound = 2202
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrInvalidUsername indicates that the username does not satisfy the naming rules.
	ErrInvalidUsername = 3001

	// ErrInvalidPassword indicates that the password does not satisfy the length rules.
	ErrInvalidPassword = 3002

	// ErrUserAlreadyExists indicates that the username is already registered.
	ErrUserAlreadyExists = 3003

	// ErrInvalidCredentials indicates that the username/password pair was rejected.
	ErrInvalidCredentials = 3004

	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = 3005

	// ErrUnauthorized indicates a missing, invalid, expired or revoked credential.
	ErrUnauthorized = 3006

	// ErrForbidden indicates that the caller is authenticated but lacks the capability.
	ErrForbidden = 3007

	// ErrUserMuted indicates that the caller has been muted and may not post.
	ErrUserMuted = 3008
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrHashingFailed indicates that password hashing failed for resource reasons.
	ErrHashingFailed = 5001
)
