package synofoto

import "context"

// ClientDiagnostics holds the information from the call to [Diagnostics].
type ClientDiagnostics struct {
	SessionConfigured    bool
	Authenticated        bool
	RemoteConnectedError error
}

// Diagnostics reports how the client is configured and checks if the remote
// server is reachable. The reachability check does not require a login.
func (c *Client) Diagnostics(ctx context.Context) ClientDiagnostics {
	diagnostics := ClientDiagnostics{}
	diagnostics.SessionConfigured = (c.session != nil)
	if c.session != nil {
		diagnostics.Authenticated = (c.session.Token() != "")
	}
	diagnostics.RemoteConnectedError = c.remote.Ping(ctx)
	return diagnostics
}
