// Package models contains GORM persistence models that map to database tables.
// They are kept apart from the domain entities so the domain layer carries no
// ORM tags, and repositories convert between the two with ToDomain/FromDomain.
package models
