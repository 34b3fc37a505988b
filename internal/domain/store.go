// Package domain holds the Store entity and its mutation rules.
package domain

import "time"

// Store represents a retail outlet record. ID is zero until the entity is
// persisted and immutable once assigned. Fields are mutated through the Set
// methods only, so UpdatedAt always advances past CreatedAt after any change.
type Store struct {
	id         int64
	name       string
	address    string
	city       string
	country    string
	postalCode string
	phone      string
	email      string
	isActive   bool
	createdAt  time.Time
	updatedAt  *time.Time
}

// NewStore creates a fresh, unpersisted store. CreatedAt is set once here;
// UpdatedAt stays nil until the first mutation.
func NewStore(name, address, city, country, postalCode, phone, email string, isActive bool) *Store {
	return &Store{
		name:       name,
		address:    address,
		city:       city,
		country:    country,
		postalCode: postalCode,
		phone:      phone,
		email:      email,
		isActive:   isActive,
		createdAt:  time.Now().UTC(),
	}
}

// Restore rebuilds a store from its persisted state. Only the repository
// should call this.
func Restore(id int64, name, address, city, country, postalCode, phone, email string,
	isActive bool, createdAt time.Time, updatedAt *time.Time) *Store {
	return &Store{
		id:         id,
		name:       name,
		address:    address,
		city:       city,
		country:    country,
		postalCode: postalCode,
		phone:      phone,
		email:      email,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (s *Store) ID() int64             { return s.id }
func (s *Store) Name() string          { return s.name }
func (s *Store) Address() string       { return s.address }
func (s *Store) City() string          { return s.city }
func (s *Store) Country() string       { return s.country }
func (s *Store) PostalCode() string    { return s.postalCode }
func (s *Store) Phone() string         { return s.phone }
func (s *Store) Email() string         { return s.email }
func (s *Store) IsActive() bool        { return s.isActive }
func (s *Store) CreatedAt() time.Time  { return s.createdAt }
func (s *Store) UpdatedAt() *time.Time { return s.updatedAt }

// Persisted reports whether storage has assigned an identity to this store.
func (s *Store) Persisted() bool { return s.id > 0 }

func (s *Store) SetName(name string) {
	s.name = name
	s.touch()
}

func (s *Store) SetAddress(address string) {
	s.address = address
	s.touch()
}

func (s *Store) SetCity(city string) {
	s.city = city
	s.touch()
}

func (s *Store) SetCountry(country string) {
	s.country = country
	s.touch()
}

func (s *Store) SetPostalCode(postalCode string) {
	s.postalCode = postalCode
	s.touch()
}

func (s *Store) SetPhone(phone string) {
	s.phone = phone
	s.touch()
}

func (s *Store) SetEmail(email string) {
	s.email = email
	s.touch()
}

func (s *Store) SetIsActive(isActive bool) {
	s.isActive = isActive
	s.touch()
}

func (s *Store) touch() {
	now := time.Now().UTC()
	s.updatedAt = &now
}
