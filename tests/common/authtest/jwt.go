//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"miyzapis/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueCustomerToken mints a bearer token accepted by a server running
// with the test config secret.
func IssueCustomerToken(t *testing.T, secret string, customerID uuid.UUID) string {
	t.Helper()

	svc := jwt.NewService(secret, time.Hour)
	token, err := svc.GenerateToken(customerID, "customer")
	require.NoError(t, err)
	return token
}
