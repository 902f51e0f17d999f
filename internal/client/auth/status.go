package auth

// Status - состояние аутентификации устройства
type Status int

const (
	StatusUnknown Status = iota
	StatusUnauthenticated
	StatusAuthenticated
	StatusExpired // аутентифицирован, но access token просрочен
)

func (s Status) String() string {
	switch s {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}
