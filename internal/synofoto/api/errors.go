package api

import "fmt"

// AuthError reports a rejected login. It carries the raw server response so
// the user can see exactly what the NAS said.
type AuthError struct {
	Response string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login rejected by server: %s", e.Response)
}

// QueryError reports a failure envelope from the web API for a non-auth
// request. Code is the Synology error code from the response.
type QueryError struct {
	API  string
	Code int
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s request failed with error code %d", e.API, e.Code)
}
