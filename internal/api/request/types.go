package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateLobbyRequest is the request body for creating a lobby
type CreateLobbyRequest struct {
	HostColor string `json:"host_color,omitempty"`
}

// UpdateConfigRequest is the request body for updating lobby config
type UpdateConfigRequest struct {
	HostColor string `json:"host_color"`
}

// SetRoleRequest is the request body for setting a member's role
type SetRoleRequest struct {
	Role string `json:"role"`
}

// TransferHostRequest is the request body for transferring host
type TransferHostRequest struct {
	NewHostID string `json:"new_host_id"`
}

// MoveRequest is the request body for playing a move
type MoveRequest struct {
	Move string `json:"move"`
}
