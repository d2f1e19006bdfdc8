package request

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=customer restaurant_manager admin"`
}
