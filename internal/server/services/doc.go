// Package services holds the server's business operations: secure
// messaging, sponsored campaigns, location lookups, role checks and
// listing media. Services read and write through a RepositoryManager and
// leave transport concerns to the gRPC layer.
package services
