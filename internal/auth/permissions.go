package auth

// Permission is a named capability.
type Permission string

// Permission constants.
const (
	PermDeviceRead  Permission = "device:read"
	PermDeviceWrite Permission = "device:write"
)

// rolePermissions is the single source of truth for the authorisation model.
var rolePermissions = map[Role][]Permission{
	RoleViewer:   {PermDeviceRead},
	RoleOperator: {PermDeviceRead, PermDeviceWrite},
}

// HasPermission returns true if role grants perm.
func HasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
