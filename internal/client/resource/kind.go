package resource

// Kind classifies why an operation failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindTimeout
	KindTLS
	KindCanceled
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindClient
	KindServer
	KindEmptyBody
	KindPrecondition
	KindNotSupported
	KindStorage
	KindValidation
)

var kindNames = map[Kind]string{
	KindUnknown:      "unknown",
	KindNetwork:      "network",
	KindTimeout:      "timeout",
	KindTLS:          "tls",
	KindCanceled:     "canceled",
	KindUnauthorized: "unauthorized",
	KindForbidden:    "forbidden",
	KindNotFound:     "not_found",
	KindConflict:     "conflict",
	KindClient:       "client",
	KindServer:       "server",
	KindEmptyBody:    "empty_body",
	KindPrecondition: "precondition",
	KindNotSupported: "not_supported",
	KindStorage:      "storage",
	KindValidation:   "validation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// UserMessage возвращает текст для показа пользователю вместо сырого сообщения
func UserMessage(k Kind) string {
	switch k {
	case KindNetwork:
		return "Cannot reach the server. Check your internet connection and try again."
	case KindTimeout:
		return "The server took too long to respond. Please try again."
	case KindTLS:
		return "A secure connection to the server could not be established."
	case KindCanceled:
		return "The operation was cancelled."
	case KindUnauthorized:
		return "Your session is not valid. Please sign in again."
	case KindForbidden:
		return "You are not allowed to do this."
	case KindNotFound, KindEmptyBody:
		return "Nothing was found."
	case KindConflict:
		return "This already exists."
	case KindClient, KindValidation:
		return "The request was rejected. Please check the entered data."
	case KindServer:
		return "The server encountered an error. Please try again later."
	case KindPrecondition:
		return "You need to sign in first."
	case KindNotSupported:
		return "This feature is not available yet."
	case KindStorage:
		return "Local data could not be read or written."
	default:
		return "Something went wrong."
	}
}
