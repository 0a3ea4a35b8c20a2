package model

type DiagnosticsReport struct {
	ServerVersion string
	Tables        []string
	UserCount     int64
}
