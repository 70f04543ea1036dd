package authz

// Identity is the authenticated caller as seen by the evaluator, flattened
// out of token claims.
type Identity struct {
	Authenticated       bool
	UserID              string
	Username            string
	Role                string
	MFASatisfied        bool
	RefreshTokenPresent bool
}

type Reason string

const (
	ReasonNone                Reason = ""
	ReasonUnauthenticated     Reason = "unauthenticated"
	ReasonMissingAccessClaim  Reason = "missing access token claim"
	ReasonMissingRefreshClaim Reason = "missing refresh token claim"
	ReasonMfaRequired         Reason = "multi-factor authentication required"
	ReasonInsufficientRole    Reason = "insufficient role"
	ReasonInternalError       Reason = "authorization error"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision        { return Decision{Allowed: true} }
func deny(r Reason) Decision { return Decision{Reason: r} }

// runChecks is indirected so the recovery path stays reachable from tests.
var runChecks = checkRequirement

// Evaluate runs the requirement's checks in order, short-circuiting on the
// first failure. It never panics past this boundary: an unexpected panic
// denies the request.
func Evaluate(identity Identity, requirement Requirement) (decision Decision) {
	defer func() {
		if r := recover(); r != nil {
			decision = deny(ReasonInternalError)
		}
	}()

	return runChecks(identity, requirement)
}

func checkRequirement(identity Identity, requirement Requirement) Decision {
	if !identity.Authenticated {
		return deny(ReasonUnauthenticated)
	}
	if requirement.RequireAccessToken && identity.UserID == "" {
		return deny(ReasonMissingAccessClaim)
	}
	if requirement.RequireRefreshToken && !identity.RefreshTokenPresent {
		return deny(ReasonMissingRefreshClaim)
	}
	if requirement.RequireMultiFactor && !identity.MFASatisfied {
		return deny(ReasonMfaRequired)
	}
	if len(requirement.Roles) > 0 && !hasAnyRole(identity.Role, requirement.Roles) {
		return deny(ReasonInsufficientRole)
	}
	return allow()
}

func hasAnyRole(role string, required []string) bool {
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}
