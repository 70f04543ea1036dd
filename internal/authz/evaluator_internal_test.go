package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A panic anywhere inside the checks must deny the request, never fail open.
func TestEvaluate_PanicDeniesRequest(t *testing.T) {
	orig := runChecks
	runChecks = func(Identity, Requirement) Decision { panic("corrupt claims") }
	defer func() { runChecks = orig }()

	decision := Evaluate(Identity{Authenticated: true, UserID: "user-123"}, RequireJWT())

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonInternalError, decision.Reason)
}
