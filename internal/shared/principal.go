package shared

// Role enumerates staff roles. The engine records roles, it never enforces
// them; view gating is the presentation layer's job.
type Role string

const (
	RoleManager  Role = "manager"
	RoleSales    Role = "sales"
	RolePurchase Role = "purchase"
)

// Principal is the authenticated identity stamped onto sales and purchase
// orders.
type Principal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
