package services

import "github.com/clovehq/momtrack/internal/model"

// DirectoryService serves the fixed user and department directories the
// normalization pipeline and the UI pickers draw from.
type DirectoryService struct {
	users       []model.User
	departments []model.Department
}

func NewDirectoryService(users []model.User, departments []model.Department) *DirectoryService {
	return &DirectoryService{users: users, departments: departments}
}

// Users returns the directory in its fixed order.
func (svc *DirectoryService) Users() []model.User {
	out := make([]model.User, len(svc.users))
	copy(out, svc.users)
	return out
}

// Departments returns the known departments in their fixed order.
func (svc *DirectoryService) Departments() []model.Department {
	out := make([]model.Department, len(svc.departments))
	copy(out, svc.departments)
	return out
}
