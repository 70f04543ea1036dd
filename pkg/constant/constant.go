package constant

const (
	DefaultTokenType = "Bearer"

	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleSales   = "Sales"
	RoleUser    = "User"

	DefaultUserRole = RoleUser
)
