package services

import (
	"errors"
	"fmt"

	"github.com/vickhardth/site-pulse-api/internal/models"
	"github.com/vickhardth/site-pulse-api/internal/repository"
)

// ErrNotSupervisory is returned when a directory listing is requested by a caller
// whose role has no visibility over other users.
var ErrNotSupervisory = errors.New("requester role is not supervisory")

// DirectoryService exposes the employee roster and reporting hierarchy, gated by the
// same role classification the activity feed uses.
type DirectoryService struct {
	userRepo repository.UserRepository
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(userRepo repository.UserRepository) *DirectoryService {
	return &DirectoryService{
		userRepo: userRepo,
	}
}

// ListAll returns the full roster, ordered by role descending then username ascending.
func (s *DirectoryService) ListAll(requesterRole string) ([]models.User, error) {
	if !models.ClassifyRole(requesterRole).IsSupervisory() {
		return nil, ErrNotSupervisory
	}

	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return users, nil
}

// ListSubordinates returns the requester's direct reports, ordered by username.
func (s *DirectoryService) ListSubordinates(requesterID uint64, requesterRole string) ([]models.User, error) {
	if !models.ClassifyRole(requesterRole).IsSupervisory() {
		return nil, ErrNotSupervisory
	}

	users, err := s.userRepo.ListByManagerID(requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subordinates: %w", err)
	}
	return users, nil
}
