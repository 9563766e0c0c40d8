package oauth_authorize

// AuthURLBuilder строит ссылку на экран согласия Google
type AuthURLBuilder interface {
	AuthCodeURL(redirectURL, state string) (string, error)
}

// Logger логгер handler'а
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
