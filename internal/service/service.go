// Package service provides the implementation of store-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abgdnv/storehub/internal/domain"
	storeerrors "github.com/abgdnv/storehub/internal/errors"
	"github.com/abgdnv/storehub/internal/store"
)

// StoreService defines the methods for managing stores.
// It abstracts the underlying business logic and data access.
type StoreService interface {
	// GetStore retrieves a single store by its unique identifier.
	// Returns an error wrapping ErrStoreNotFound if no store exists with the given ID.
	GetStore(ctx context.Context, id int64) (*StoreDto, error)

	// ListStores returns stores matching the filters, ordered by the sort keys.
	// Filtering and sorting pass through to the repository unmodified.
	ListStores(ctx context.Context, filters map[string]any, sort []store.SortKey) ([]StoreDto, error)

	// CreateStore validates the full payload, constructs a fresh store and persists it.
	CreateStore(ctx context.Context, dto StoreCreateDto) (*StoreDto, error)

	// UpdateStore loads an existing store, validates the full payload and
	// overwrites every field (full replace semantics).
	UpdateStore(ctx context.Context, id int64, dto StoreUpdateDto) (*StoreDto, error)

	// PatchStore loads an existing store, validates only the supplied fields
	// and applies only the supplied fields.
	PatchStore(ctx context.Context, id int64, patch StorePatchDto) (*StoreDto, error)

	// DeleteStore removes a store by ID. Fails with ErrStoreNotFound before
	// touching the repository delete when the ID is absent.
	DeleteStore(ctx context.Context, id int64) error
}

// Service implements StoreService and provides methods to manage stores.
type Service struct {
	repository store.StoreRepository
	validator  *StoreValidator
}

// NewService creates a new instance of StoreService with the provided repository and validator.
func NewService(repo store.StoreRepository, validator *StoreValidator) *Service {
	return &Service{
		repository: repo,
		validator:  validator,
	}
}

// StoreCreateDto represents the data transfer object for creating a new store.
// A missing is_active defaults to true.
type StoreCreateDto struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsActive   *bool  `json:"is_active"`
}

// StoreUpdateDto represents the data transfer object for a full store replace.
type StoreUpdateDto struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsActive   *bool  `json:"is_active"`
}

// StorePatchDto represents a partial update. Nil fields were absent from the
// request body and are neither validated nor changed.
type StorePatchDto struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	IsActive   *bool   `json:"is_active"`
}

// StoreDto represents the data transfer object for a store.
type StoreDto struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postalCode"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	IsActive   bool    `json:"isActive"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  *string `json:"updatedAt"`
}

// GetStore retrieves a store by its ID and returns it as a StoreDto.
func (s *Service) GetStore(ctx context.Context, id int64) (*StoreDto, error) {
	entity, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storeerrors.ErrStoreNotFound) {
			return nil, fmt.Errorf("store with ID %d not found: %w", id, storeerrors.ErrStoreNotFound)
		}
		return nil, fmt.Errorf("failed to fetch store by ID %d: %w", id, err)
	}
	return toDto(entity), nil
}

// ListStores retrieves stores and returns them as StoreDtos.
// Returns an empty slice if no stores match.
func (s *Service) ListStores(ctx context.Context, filters map[string]any, sort []store.SortKey) ([]StoreDto, error) {
	stores, err := s.repository.FindAll(ctx, filters, sort)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stores: %w", err)
	}
	storeDTOs := make([]StoreDto, len(stores))
	for i, item := range stores {
		storeDTOs[i] = *toDto(item)
	}
	return storeDTOs, nil
}

// CreateStore validates the full payload, constructs a fresh entity and persists it.
func (s *Service) CreateStore(ctx context.Context, dto StoreCreateDto) (*StoreDto, error) {
	if err := s.validator.ValidateStore(dto.Name, dto.Address, dto.City, dto.Country, dto.PostalCode, dto.Phone, dto.Email); err != nil {
		return nil, err
	}

	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}
	entity := domain.NewStore(dto.Name, dto.Address, dto.City, dto.Country, dto.PostalCode, dto.Phone, dto.Email, isActive)

	saved, err := s.repository.Save(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return toDto(saved), nil
}

// UpdateStore loads the existing store, validates the full payload and
// overwrites every field, even unchanged ones.
func (s *Service) UpdateStore(ctx context.Context, id int64, dto StoreUpdateDto) (*StoreDto, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateStore(dto.Name, dto.Address, dto.City, dto.Country, dto.PostalCode, dto.Phone, dto.Email); err != nil {
		return nil, err
	}

	entity.SetName(dto.Name)
	entity.SetAddress(dto.Address)
	entity.SetCity(dto.City)
	entity.SetCountry(dto.Country)
	entity.SetPostalCode(dto.PostalCode)
	entity.SetPhone(dto.Phone)
	entity.SetEmail(dto.Email)
	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}
	entity.SetIsActive(isActive)

	saved, err := s.repository.Save(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to update store with ID %d: %w", id, err)
	}
	return toDto(saved), nil
}

// PatchStore loads the existing store, validates only the supplied fields and
// applies only the supplied fields.
func (s *Service) PatchStore(ctx context.Context, id int64, patch StorePatchDto) (*StoreDto, error) {
	entity, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidatePartial(patch); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		entity.SetName(*patch.Name)
	}
	if patch.Address != nil {
		entity.SetAddress(*patch.Address)
	}
	if patch.City != nil {
		entity.SetCity(*patch.City)
	}
	if patch.Country != nil {
		entity.SetCountry(*patch.Country)
	}
	if patch.PostalCode != nil {
		entity.SetPostalCode(*patch.PostalCode)
	}
	if patch.Phone != nil {
		entity.SetPhone(*patch.Phone)
	}
	if patch.Email != nil {
		entity.SetEmail(*patch.Email)
	}
	if patch.IsActive != nil {
		entity.SetIsActive(*patch.IsActive)
	}

	saved, err := s.repository.Save(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to patch store with ID %d: %w", id, err)
	}
	return toDto(saved), nil
}

// DeleteStore checks existence first, so deleting an absent ID fails at the
// service boundary even though the repository delete itself is idempotent.
func (s *Service) DeleteStore(ctx context.Context, id int64) error {
	exists, err := s.repository.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check store existence for ID %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("store with ID %d not found: %w", id, storeerrors.ErrStoreNotFound)
	}
	if _, err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete store with ID %d: %w", id, err)
	}
	return nil
}

// load fetches the entity for mutation, mapping absence to ErrStoreNotFound.
func (s *Service) load(ctx context.Context, id int64) (*domain.Store, error) {
	entity, err := s.repository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storeerrors.ErrStoreNotFound) {
			return nil, fmt.Errorf("store with ID %d not found: %w", id, storeerrors.ErrStoreNotFound)
		}
		return nil, fmt.Errorf("failed to fetch store by ID %d: %w", id, err)
	}
	return entity, nil
}

// toDto converts a domain.Store to a StoreDto.
func toDto(entity *domain.Store) *StoreDto {
	var updatedAt *string
	if ts := entity.UpdatedAt(); ts != nil {
		formatted := ts.Format(time.RFC3339)
		updatedAt = &formatted
	}
	return &StoreDto{
		ID:         entity.ID(),
		Name:       entity.Name(),
		Address:    entity.Address(),
		City:       entity.City(),
		Country:    entity.Country(),
		PostalCode: entity.PostalCode(),
		Phone:      entity.Phone(),
		Email:      entity.Email(),
		IsActive:   entity.IsActive(),
		CreatedAt:  entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  updatedAt,
	}
}
