package network

// ErrConnectionClosedByServer is returned when the server ends the connection
type ErrConnectionClosedByServer struct{}

func (e *ErrConnectionClosedByServer) Error() string {
	return "connection closed by server"
}

// ErrConnectionClosedByClient is returned when the client ends the connection
type ErrConnectionClosedByClient struct{}

func (e *ErrConnectionClosedByClient) Error() string {
	return "connection closed by client"
}

// ErrNotConnected is returned when sending before a connection exists
type ErrNotConnected struct{}

func (e *ErrNotConnected) Error() string {
	return "not connected"
}

// IsConnectionClosed reports whether err means the connection has ended,
// on either side.
func IsConnectionClosed(err error) bool {
	switch err.(type) {
	case *ErrConnectionClosedByServer, *ErrConnectionClosedByClient:
		return true
	default:
		return false
	}
}
