package acl

import "context"

// Name identifies the remote store in readiness reports.
func (c *NotesClient) Name() string {
	return "notes-api"
}

// HealthCheck reports the remote notes API's availability from the circuit
// breaker state. No network call is made.
func (c *NotesClient) HealthCheck(_ context.Context) error {
	return c.client.Check()
}
