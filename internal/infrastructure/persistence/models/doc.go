// Package models holds the GORM models behind the storefront tables.
// Domain entities carry no ORM tags; each model converts to and from its
// entity with ToDomain and a FromDomain constructor.
package models
