package rbac

import (
	"errors"
	"testing"

	"go-manpower/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	rolesErr error
}

func (m *mockRepo) GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error) {
	if m.rolesErr != nil {
		return nil, m.rolesErr
	}
	return []EmployeeRoleRow{
		{EmployeeID: "emp-admin", RoleID: "role-scheduler"},
	}, nil
}

func (m *mockRepo) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	return []RolePermissionRow{
		{RoleID: "role-scheduler", Resource: "manpower", Action: "read"},
		{RoleID: "role-scheduler", Resource: "manpower", Action: "assign"},
	}, nil
}

func (m *mockRepo) ListRoles(companyID string) ([]RoleRow, error) {
	return []RoleRow{{ID: "role-scheduler", CompanyID: companyID, Name: "Scheduler"}}, nil
}

func TestRBACService_Enforce(t *testing.T) {
	enforcer, err := NewEnforcer()
	require.NoError(t, err)
	service := NewService(&mockRepo{}, enforcer)

	allowed, err := service.Enforce(domain.EnforceRequest{
		EmployeeID: "emp-admin",
		CompanyID:  "company-1",
		Resource:   "manpower",
		Action:     "assign",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := service.Enforce(domain.EnforceRequest{
		EmployeeID: "emp-admin",
		CompanyID:  "company-1",
		Resource:   "employee",
		Action:     "bulk",
	})
	assert.NoError(t, err)
	assert.False(t, denied)

	otherCompany, err := service.Enforce(domain.EnforceRequest{
		EmployeeID: "emp-other",
		CompanyID:  "company-1",
		Resource:   "manpower",
		Action:     "read",
	})
	assert.NoError(t, err)
	assert.False(t, otherCompany)
}

func TestRBACService_EnforceRepoError(t *testing.T) {
	enforcer, err := NewEnforcer()
	require.NoError(t, err)
	service := NewService(&mockRepo{rolesErr: errors.New("db down")}, enforcer)

	allowed, err := service.Enforce(domain.EnforceRequest{EmployeeID: "emp-admin", CompanyID: "company-1"})
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestRBACService_ListRoles(t *testing.T) {
	enforcer, err := NewEnforcer()
	require.NoError(t, err)
	service := NewService(&mockRepo{}, enforcer)

	roles, err := service.ListRoles("company-1")
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Scheduler", roles[0].Name)
	assert.Equal(t, []string{"manpower:assign", "manpower:read"}, roles[0].Permissions)
}
