package authz

// Requirement is a declarative, per-endpoint authorization demand. The zero
// value allows any authenticated identity. Construct via the factory
// functions below rather than struct literals so call sites read as policy.
type Requirement struct {
	Roles               []string
	RequireAccessToken  bool
	RequireRefreshToken bool
	RequireMultiFactor  bool
}

// RequireRoles demands a JWT-backed identity holding one of the given roles.
func RequireRoles(roles ...string) Requirement {
	return Requirement{Roles: roles, RequireAccessToken: true}
}

// RequireJWT demands an identity carrying a subject claim, any role.
func RequireJWT() Requirement {
	return Requirement{RequireAccessToken: true}
}

// RequireRefreshToken demands an identity backed by a validated refresh token.
func RequireRefreshToken() Requirement {
	return Requirement{RequireRefreshToken: true}
}

// RequireMFA demands an identity whose token attests a satisfied second factor.
func RequireMFA() Requirement {
	return Requirement{RequireAccessToken: true, RequireMultiFactor: true}
}
