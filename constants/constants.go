package constants

const (
	// Name is the name of the command.
	Name = "beyond-urlconn"

	// Version is the version of BeyondURLConn.
	Version = "0.1.0"
)
