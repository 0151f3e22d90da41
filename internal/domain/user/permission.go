package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"
	PermissionEmployeeDelete Permission = "employee.delete"

	// Department Management
	PermissionDepartmentView   Permission = "department.view"
	PermissionDepartmentManage Permission = "department.manage"

	// Attendance Management
	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceCreate Permission = "attendance.create"
	PermissionAttendanceManage Permission = "attendance.manage"

	// Leave Management
	PermissionLeaveView    Permission = "leave.view"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveApprove Permission = "leave.approve"

	// Performance Management
	PermissionPerformanceView   Permission = "performance.view"
	PermissionPerformanceManage Permission = "performance.manage"

	// Analytics & Reports
	PermissionAnalyticsView Permission = "analytics.view"
	PermissionReportsExport Permission = "reports.export"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions. The matrix is the
// boundary-layer capability check; core validators never consult it.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionEmployeeDelete,
		PermissionDepartmentView,
		PermissionDepartmentManage,
		PermissionAttendanceView,
		PermissionAttendanceCreate,
		PermissionAttendanceManage,
		PermissionLeaveView,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionPerformanceView,
		PermissionPerformanceManage,
		PermissionAnalyticsView,
		PermissionReportsExport,
		PermissionUserManage,
	},
	RoleHR: {
		// HR manages records but cannot delete employees or manage users
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionDepartmentView,
		PermissionAttendanceView,
		PermissionAttendanceCreate,
		PermissionAttendanceManage,
		PermissionLeaveView,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionPerformanceView,
		PermissionPerformanceManage,
		PermissionAnalyticsView,
		PermissionReportsExport,
	},
	RoleManager: {
		// Manager views team data and approves leave
		PermissionEmployeeView,
		PermissionDepartmentView,
		PermissionAttendanceView,
		PermissionLeaveView,
		PermissionLeaveApprove,
		PermissionPerformanceView,
		PermissionAnalyticsView,
	},
	RoleEmployee: {
		// Employee has basic access
		PermissionEmployeeView,
		PermissionDepartmentView,
		PermissionAttendanceView,
		PermissionAttendanceCreate,
		PermissionLeaveView,
		PermissionLeaveCreate,
	},
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
