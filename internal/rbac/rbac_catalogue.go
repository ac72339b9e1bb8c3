package rbac

// Catalogue is the full permission set seeded at startup.
var Catalogue = []Permission{
	{Resource: "company", Action: "read", Label: "View company profile", Category: "Company"},
	{Resource: "company", Action: "update", Label: "Edit company profile", Category: "Company"},

	{Resource: "role", Action: "read", Label: "View roles", Category: "Access"},
	{Resource: "role", Action: "manage", Label: "Manage roles", Category: "Access"},
	{Resource: "user", Action: "read", Label: "View users", Category: "Access"},
	{Resource: "user", Action: "create", Label: "Create users", Category: "Access"},
	{Resource: "user", Action: "update", Label: "Update users", Category: "Access"},

	{Resource: "department", Action: "read", Label: "View departments", Category: "Organization"},
	{Resource: "department", Action: "create", Label: "Create departments", Category: "Organization"},
	{Resource: "department", Action: "update", Label: "Update departments", Category: "Organization"},
	{Resource: "department", Action: "delete", Label: "Delete departments", Category: "Organization"},

	{Resource: "employee", Action: "read", Label: "View employees", Category: "Employees"},
	{Resource: "employee", Action: "create", Label: "Create employees", Category: "Employees"},
	{Resource: "employee", Action: "update", Label: "Update employees", Category: "Employees"},
	{Resource: "employee", Action: "delete", Label: "Delete employees", Category: "Employees"},

	{Resource: "salary", Action: "read", Label: "View salaries", Category: "Payroll"},
	{Resource: "salary", Action: "create", Label: "Create salaries", Category: "Payroll"},
	{Resource: "salary", Action: "delete", Label: "Delete salaries", Category: "Payroll"},
	{Resource: "payroll", Action: "read", Label: "View own payslips", Category: "Payroll"},
	{Resource: "payroll", Action: "read_all", Label: "View all payrolls", Category: "Payroll"},
	{Resource: "payroll", Action: "create", Label: "Generate payroll", Category: "Payroll"},
	{Resource: "payroll", Action: "approve", Label: "Approve payroll", Category: "Payroll"},
	{Resource: "payroll", Action: "pay", Label: "Mark payroll paid", Category: "Payroll"},

	{Resource: "attendance", Action: "read", Label: "View own attendance", Category: "Attendance"},
	{Resource: "attendance", Action: "create", Label: "Clock in and out", Category: "Attendance"},
	{Resource: "attendance", Action: "read_all", Label: "View all attendance", Category: "Attendance"},
	{Resource: "attendance", Action: "update", Label: "Correct attendance", Category: "Attendance"},

	{Resource: "leave", Action: "read", Label: "View own leave", Category: "Leave"},
	{Resource: "leave", Action: "create", Label: "Request leave", Category: "Leave"},
	{Resource: "leave", Action: "read_all", Label: "View all leave", Category: "Leave"},
	{Resource: "leave", Action: "approve", Label: "Approve leave", Category: "Leave"},

	{Resource: "sop", Action: "read", Label: "Read SOPs", Category: "Compliance"},
	{Resource: "sop", Action: "manage", Label: "Manage SOPs", Category: "Compliance"},
	{Resource: "assessment", Action: "read", Label: "View assessments", Category: "Compliance"},
	{Resource: "assessment", Action: "take", Label: "Take assessments", Category: "Compliance"},
	{Resource: "assessment", Action: "manage", Label: "Manage assessments", Category: "Compliance"},
}

// DefaultRoles maps each seeded role to its permission keys. A nil slice means every permission.
var DefaultRoles = map[string][]string{
	RoleAdmin: nil,
	RoleEmployee: {
		"company:read",
		"attendance:read",
		"attendance:create",
		"leave:read",
		"leave:create",
		"payroll:read",
		"sop:read",
		"assessment:read",
		"assessment:take",
	},
}

func catalogueKeys() []string {
	keys := make([]string, 0, len(Catalogue))
	for _, p := range Catalogue {
		keys = append(keys, p.Key())
	}
	return keys
}
