package services

import (
	"fmt"

	"jspark.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in authored order
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByTitle returns a specific project by its title
func (s *ProjectService) GetByTitle(title string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].Title == title {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", title)
}
